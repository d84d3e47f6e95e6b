package rpcs

import (
	"net/http"

	"github.com/eaugeas/linkedbst/logs"
	"github.com/pkg/errors"
)

// PreProcessorResult is the outcome of a PreProcessor
type PreProcessorResult struct {
	// Request is the request handed to the next stage. A PreProcessor
	// may return a different request than the one it received
	Request *http.Request

	// Continue is false when the PreProcessor already wrote the
	// response and the request must not be handled further
	Continue bool
}

// PreProcessor runs before the Middleware of a route and may answer
// a request on its own
type PreProcessor interface {
	ServeHTTP(w http.ResponseWriter, req *http.Request) (PreProcessorResult, error)
}

// Middleware serves a request and returns the entity that is
// encoded as the response. A nil entity is answered with
// 204 No Content
type Middleware interface {
	ServeHTTP(req *http.Request) (interface{}, error)
}

// MiddlewareFunc allows functions to act as Middleware
type MiddlewareFunc func(req *http.Request) (interface{}, error)

func (f MiddlewareFunc) ServeHTTP(req *http.Request) (interface{}, error) {
	return f(req)
}

// Methods maps http methods to the Middleware serving them
type Methods map[string]Middleware

// Route serves the requests for a single path
type Route struct {
	logger        logs.Logger
	encoder       Encoder
	methods       Methods
	preProcessors []PreProcessor
}

// RouteProps are the properties of a Route
type RouteProps struct {
	Logger        logs.Logger
	Encoder       Encoder
	Methods       Methods
	PreProcessors []PreProcessor
}

// NewRoute creates a Route
func NewRoute(props RouteProps) *Route {
	methods := props.Methods
	if methods == nil {
		methods = make(Methods)
	}

	return &Route{
		logger:        props.Logger,
		encoder:       props.Encoder,
		methods:       methods,
		preProcessors: props.PreProcessors,
	}
}

// Handles reports whether the route serves the method
func (r *Route) Handles(method string) bool {
	_, ok := r.methods[method]
	return ok
}

func (r *Route) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	fields := logs.MapFields{
		"path":   req.URL.Path,
		"method": req.Method,
	}

	for _, p := range r.preProcessors {
		result, err := p.ServeHTTP(w, req)
		if err != nil {
			r.logger.Warn(ctx, "pre processor failed", fields, logs.MapFields{"err": err.Error()})
			return
		}

		if !result.Continue {
			r.logger.Debug(ctx, "request answered by pre processor", fields)
			return
		}

		req = result.Request
	}

	status, err := r.serve(w, req)
	outcome := logs.MapFields{"status": status}
	if err != nil {
		outcome["err"] = err.Error()
	}

	if status < http.StatusBadRequest {
		r.logger.Info(ctx, "request served", fields, outcome)
	} else {
		r.logger.Warn(ctx, "request failed", fields, outcome)
	}
}

func (r *Route) serve(w http.ResponseWriter, req *http.Request) (int, error) {
	m, ok := r.methods[req.Method]
	if !ok {
		return writeError(w, r.encoder, MethodNotAllowed(nil))
	}

	v, err := m.ServeHTTP(req)
	if err != nil {
		return writeError(w, r.encoder, err)
	}

	return writeEntity(w, r.encoder, v)
}

func writeEntity(w http.ResponseWriter, encoder Encoder, v interface{}) (int, error) {
	if v == nil {
		w.WriteHeader(http.StatusNoContent)
		return http.StatusNoContent, nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := encoder.Encode(w, v); err != nil {
		return http.StatusOK, errors.Wrap(err, "failed to encode response")
	}

	return http.StatusOK, nil
}

// writeError writes the response for err. Errors that are not an
// *HttpError are answered as internal errors
func writeError(w http.ResponseWriter, encoder Encoder, err error) (int, error) {
	var httpErr *HttpError
	if !errors.As(err, &httpErr) {
		httpErr = InternalError(err)
	}

	body := httpErr.body()
	if body == nil {
		w.WriteHeader(httpErr.Status)
		return httpErr.Status, httpErr
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Status)
	if encErr := encoder.Encode(w, body); encErr != nil {
		return httpErr.Status, errors.Wrap(encErr, "failed to encode error response")
	}

	return httpErr.Status, httpErr
}
