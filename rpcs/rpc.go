package rpcs

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/eaugeas/linkedbst/logs"
	"github.com/pkg/errors"
)

// Handler handles a decoded request and returns the value
// that is encoded as the response
type Handler interface {
	Handle(ctx context.Context, v interface{}) (interface{}, error)
}

// HandlerFunc allows functions to implement the Handler interface
type HandlerFunc func(ctx context.Context, v interface{}) (interface{}, error)

// Handle is the implementation of Handler for HandlerFunc
func (f HandlerFunc) Handle(ctx context.Context, v interface{}) (interface{}, error) {
	return f(ctx, v)
}

// EntityFactory creates the instances into which request
// bodies are decoded
type EntityFactory interface {
	Create() interface{}
}

// EntityFactoryFunc allows functions to implement EntityFactory
type EntityFactoryFunc func() interface{}

// Create is the implementation of EntityFactory for EntityFactoryFunc
func (f EntityFactoryFunc) Create() interface{} {
	return f()
}

// NoBodyFactory is the EntityFactory of handlers that do not
// expect a request body
var NoBodyFactory = EntityFactoryFunc(func() interface{} { return nil })

// Encoder writes a value to a writer
type Encoder interface {
	Encode(w io.Writer, v interface{}) error
}

// JsonEncoder encodes values as JSON
type JsonEncoder struct{}

// Encode is the implementation of Encoder for JsonEncoder
func (e JsonEncoder) Encode(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}

// JsonDecoder decodes JSON values
type JsonDecoder struct{}

// DecodeWithLimit decodes a JSON value reading at most limit bytes
// from the reader. Trailing data after the value is an error
func (d JsonDecoder) DecodeWithLimit(r io.Reader, v interface{}, limit int64) error {
	lr := &io.LimitedReader{R: r, N: limit + 1}
	dec := json.NewDecoder(lr)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.Wrap(err, "failed to decode json body")
	}

	if lr.N <= 0 {
		return errors.Errorf("body exceeds limit of %d bytes", limit)
	}

	if dec.More() {
		return errors.New("unexpected data after json body")
	}

	return nil
}

// ParseTraceID parses the trace id sent by a client. A new
// trace id is generated if the value is missing or invalid
func ParseTraceID(s string) int64 {
	traceID, err := strconv.ParseInt(s, 10, 64)
	if err != nil || traceID <= 0 {
		return logs.NewTraceID()
	}

	return traceID
}
