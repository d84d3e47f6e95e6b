package rpcs

import (
	"fmt"
	"net/http"

	errs "github.com/eaugeas/linkedbst/errors"
	"github.com/eaugeas/linkedbst/logs"
)

// HttpError is a failure to serve a request together with the
// status code sent back to the client. When the cause is an
// *errs.Error it is written as the body of the response
type HttpError struct {
	Status int
	Cause  error
}

// NewHttpError creates an HttpError. cause may be nil, in which
// case the response has no body
func NewHttpError(status int, cause error) *HttpError {
	return &HttpError{Status: status, Cause: cause}
}

// BadRequest is the HttpError for requests that cannot be parsed
// or that fail validation
func BadRequest(cause error) *HttpError {
	return NewHttpError(http.StatusBadRequest, cause)
}

// NotFound is the HttpError for requests on missing entities
func NotFound(cause error) *HttpError {
	return NewHttpError(http.StatusNotFound, cause)
}

// MethodNotAllowed is the HttpError for requests with a method
// that the path does not handle
func MethodNotAllowed(cause error) *HttpError {
	return NewHttpError(http.StatusMethodNotAllowed, cause)
}

// Conflict is the HttpError for requests that the current state
// of the server cannot satisfy
func Conflict(cause error) *HttpError {
	return NewHttpError(http.StatusConflict, cause)
}

// InternalError is the HttpError for unexpected failures
func InternalError(cause error) *HttpError {
	return NewHttpError(http.StatusInternalServerError, cause)
}

func (e *HttpError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("http %d %s", e.Status, http.StatusText(e.Status))
	}

	return fmt.Sprintf("http %d: %s", e.Status, e.Cause.Error())
}

func (e *HttpError) Unwrap() error {
	return e.Cause
}

// Log is the implementation of logs.Loggable for HttpError
func (e *HttpError) Log(fields logs.Fields) {
	fields.Add("status", e.Status)

	switch cause := e.Cause.(type) {
	case nil:
	case logs.Loggable:
		cause.Log(fields)
	default:
		fields.Add("cause", cause.Error())
	}
}

// body returns the entity written for the error. Causes that are
// not an *errs.Error are hidden from the client
func (e *HttpError) body() *errs.Error {
	switch cause := e.Cause.(type) {
	case nil:
		return nil
	case *errs.Error:
		return cause
	default:
		return errs.New(errs.ErrCodeUnknown, http.StatusText(e.Status))
	}
}
