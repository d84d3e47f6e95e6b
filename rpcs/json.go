package rpcs

import (
	"net/http"

	errs "github.com/eaugeas/linkedbst/errors"
	"github.com/eaugeas/linkedbst/logs"
)

// DefaultBodyLimit is the maximum size in bytes of a request body
// when no limit is configured
const DefaultBodyLimit = 1 << 14

var (
	ErrContentLengthMissing = errs.New(errs.ErrCodeInvalidItem, "request has no content-length")
	ErrBodyTooLarge         = errs.New(errs.ErrCodeInvalidItem, "request body exceeds the size limit")
	ErrContentTypeNotJSON   = errs.New(errs.ErrCodeInvalidItem, "request content-type is not application/json")
	ErrUnexpectedBody       = errs.New(errs.ErrCodeInvalidItem, "request does not accept a body")
	ErrInvalidJSON          = errs.New(errs.ErrCodeInvalidItem, "request body is not valid json")
)

// JsonMiddleware decodes the JSON body of a request into the entity
// created by its factory and passes it to its handler
type JsonMiddleware struct {
	limit   int64
	decoder JsonDecoder
	handler Handler
	factory EntityFactory
	logger  logs.Logger
}

// JsonMiddlewareProps are the properties of a JsonMiddleware
type JsonMiddlewareProps struct {
	// Limit is the maximum size in bytes of a body. DefaultBodyLimit
	// is used when it is 0
	Limit   uint
	Handler Handler
	Factory EntityFactory
	Logger  logs.Logger
}

// NewJsonMiddleware creates a JsonMiddleware. It panics if the
// handler, the factory or the logger are missing
func NewJsonMiddleware(props JsonMiddlewareProps) *JsonMiddleware {
	switch {
	case props.Handler == nil:
		panic("handler must be set")
	case props.Factory == nil:
		panic("factory must be set")
	case props.Logger == nil:
		panic("logger must be set")
	}

	limit := int64(props.Limit)
	if limit == 0 {
		limit = DefaultBodyLimit
	}

	return &JsonMiddleware{
		limit:   limit,
		handler: props.Handler,
		factory: props.Factory,
		logger:  props.Logger.ForClass("rpcs", "JsonMiddleware"),
	}
}

func (m *JsonMiddleware) ServeHTTP(req *http.Request) (interface{}, error) {
	size := req.ContentLength
	switch {
	case size < 0:
		return nil, BadRequest(ErrContentLengthMissing)
	case size > m.limit:
		return nil, BadRequest(ErrBodyTooLarge)
	case size > 0 && req.Header.Get("Content-Type") != "application/json":
		return nil, BadRequest(ErrContentTypeNotJSON)
	}

	entity := m.factory.Create()
	if size > 0 {
		if entity == nil {
			return nil, BadRequest(ErrUnexpectedBody)
		}

		if err := m.decoder.DecodeWithLimit(req.Body, entity, size); err != nil {
			m.logger.Debug(req.Context(), "invalid request body", logs.MapFields{
				"path":           req.URL.EscapedPath(),
				"content_length": size,
				"err":            err.Error(),
			})
			return nil, BadRequest(ErrInvalidJSON)
		}
	}

	return m.handler.Handle(req.Context(), entity)
}
