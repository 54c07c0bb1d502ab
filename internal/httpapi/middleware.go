package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// RequestIDHeader is read from inbound requests and always set on responses.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds inbound request IDs; longer ones are replaced.
const maxRequestIDLen = 128

// RequestID wraps chi's middleware.RequestID. An inbound X-Request-Id is kept when
// present; otherwise a UUIDv4 is supplied before chi reads the header. The ID chi
// stores in the context is echoed on the response.
func RequestID(next http.Handler) http.Handler {
	tagged := middleware.RequestID(echoRequestID(next))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(middleware.RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		r.Header.Set(middleware.RequestIDHeader, id)
		tagged.ServeHTTP(w, r)
	})
}

func echoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}

// DefaultMaxBodyBytes caps form bodies at 1MB.
const DefaultMaxBodyBytes = 1 << 20

// LimitRequestBody returns middleware that limits request body size; handlers map the
// resulting read error to 413.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// CORS lets a landing page on another origin post the subscription form.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}
