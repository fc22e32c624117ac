package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware that applies the gateway's allowed origin policy.
// Origins come from config so each environment can whitelist its frontends.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-RM-Token", "X-Requested-With"},
		ExposedHeaders:   []string{"X-RM-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
