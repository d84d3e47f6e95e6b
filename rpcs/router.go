package rpcs

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/eaugeas/linkedbst/logs"
)

// TraceIDHeader carries the trace id of a request. It is set on
// every response, with a new trace id if the request had none
const TraceIDHeader = "X-TRACE-ID"

// Router dispatches requests to the Route registered for their
// path. A Router is built by a Binder and cannot be changed
// afterwards
type Router struct {
	routes  map[string]*Route
	encoder Encoder
	logger  logs.Logger
}

// HasRoute reports whether there is a route for the path
func (r *Router) HasRoute(path string) bool {
	_, ok := r.routes[path]
	return ok
}

// Handles reports whether there is a route for the path
// that serves the method
func (r *Router) Handles(path, method string) bool {
	route, ok := r.routes[path]
	return ok && route.Handles(method)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	traceID := ParseTraceID(req.Header.Get(TraceIDHeader))
	req = req.WithContext(logs.WithTraceID(req.Context(), traceID))
	w.Header().Set(TraceIDHeader, strconv.FormatInt(traceID, 10))

	defer r.recover(w, req)

	route, ok := r.routes[req.URL.EscapedPath()]
	if !ok {
		r.logger.Debug(req.Context(), "no route for path", logs.MapFields{
			"path":   req.URL.EscapedPath(),
			"method": req.Method,
		})
		_, _ = writeError(w, r.encoder, NotFound(nil))
		return
	}

	route.ServeHTTP(w, req)
}

// recover answers with an internal error when serving the request
// panics. The panic value is logged and not sent to the client
func (r *Router) recover(w http.ResponseWriter, req *http.Request) {
	v := recover()
	if v == nil {
		return
	}

	r.logger.Error(req.Context(), "panic serving request", logs.MapFields{
		"path":       req.URL.EscapedPath(),
		"method":     req.Method,
		"panic":      fmt.Sprint(v),
		"stacktrace": string(debug.Stack()),
	})

	_, _ = writeError(w, r.encoder, InternalError(fmt.Errorf("panic: %v", v)))
}
