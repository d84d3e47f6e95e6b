package rpcs

import (
	"net/http"

	"github.com/rs/cors"
)

// CorsProps configure the CORS checks of a CorsPreProcessor
type CorsProps struct {
	// Enabled turns the checks on. A disabled CorsPreProcessor
	// lets every request through untouched
	Enabled bool

	// AllowedOrigins may contain "*" to allow any origin
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string

	// MaxAge is the number of seconds a preflight response can be cached
	MaxAge int
}

// CorsPreProcessor answers preflight requests and sets the CORS
// headers of the other requests
type CorsPreProcessor struct {
	enabled bool
	cors    *cors.Cors
}

// NewCorsPreProcessor creates a CorsPreProcessor
func NewCorsPreProcessor(props CorsProps) *CorsPreProcessor {
	return &CorsPreProcessor{
		enabled: props.Enabled,
		cors: cors.New(cors.Options{
			AllowedOrigins: props.AllowedOrigins,
			AllowedMethods: props.AllowedMethods,
			AllowedHeaders: props.AllowedHeaders,
			ExposedHeaders: []string{TraceIDHeader},
			MaxAge:         props.MaxAge,
		}),
	}
}

func (p *CorsPreProcessor) ServeHTTP(w http.ResponseWriter, req *http.Request) (PreProcessorResult, error) {
	result := PreProcessorResult{Request: req, Continue: !p.enabled}
	if !p.enabled {
		return result, nil
	}

	// preflight requests are answered by cors without calling next
	p.cors.ServeHTTP(w, req, func(_ http.ResponseWriter, next *http.Request) {
		result.Request = next
		result.Continue = true
	})

	return result, nil
}
