package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps next with the configured cross-origin policy. An empty origin
// list allows any origin.
func (m Middleware) CORS(next http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: m.cors.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID},
		MaxAge:         600,
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return cors.New(opts).Handler(next)
}
