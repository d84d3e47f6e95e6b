package rpcs

import (
	"github.com/eaugeas/linkedbst/logs"
)

// MiddlewareFactory adapts a Handler into the Middleware that
// serves it over http
type MiddlewareFactory func(handler Handler, factory EntityFactory) Middleware

// JsonMiddlewareFactory creates JsonMiddleware with the body limit
func JsonMiddlewareFactory(logger logs.Logger, limit uint) MiddlewareFactory {
	return func(handler Handler, factory EntityFactory) Middleware {
		return NewJsonMiddleware(JsonMiddlewareProps{
			Limit:   limit,
			Handler: handler,
			Factory: factory,
			Logger:  logger,
		})
	}
}

// Binder collects the handlers of a server and builds the Router
// that serves them
type Binder struct {
	paths         map[string]Methods
	preProcessors []PreProcessor
	encoder       Encoder
	logger        logs.Logger
	middleware    MiddlewareFactory
}

// BinderProps are the properties of a Binder
type BinderProps struct {
	Encoder    Encoder
	Logger     logs.Logger
	Middleware MiddlewareFactory
}

// NewBinder creates a Binder. It panics if any of the
// properties is missing
func NewBinder(props BinderProps) *Binder {
	switch {
	case props.Encoder == nil:
		panic("encoder must be set")
	case props.Logger == nil:
		panic("logger must be set")
	case props.Middleware == nil:
		panic("middleware factory must be set")
	}

	return &Binder{
		paths:      make(map[string]Methods),
		encoder:    props.Encoder,
		logger:     props.Logger,
		middleware: props.Middleware,
	}
}

// Bind registers the handler for requests with the method on
// the path. Request bodies are decoded into entities created
// by the factory
func (b *Binder) Bind(method, path string, handler Handler, factory EntityFactory) {
	methods, ok := b.paths[path]
	if !ok {
		methods = make(Methods)
		b.paths[path] = methods
	}

	methods[method] = b.middleware(handler, factory)
}

// Use adds a PreProcessor that runs on every route
func (b *Binder) Use(p PreProcessor) {
	b.preProcessors = append(b.preProcessors, p)
}

// Router builds a Router with the handlers bound so far. The binder
// is emptied, later bindings only apply to the next Router built
func (b *Binder) Router() *Router {
	routes := make(map[string]*Route, len(b.paths))
	for path, methods := range b.paths {
		routes[path] = NewRoute(RouteProps{
			Logger:        b.logger.ForClass("rpcs", "Route"),
			Encoder:       b.encoder,
			Methods:       methods,
			PreProcessors: b.preProcessors,
		})
	}

	b.paths = make(map[string]Methods)

	return &Router{
		routes:  routes,
		encoder: b.encoder,
		logger:  b.logger.ForClass("rpcs", "Router"),
	}
}
