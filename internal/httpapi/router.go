package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/swaggo/http-swagger"

	"github.com/kenfang/zero2prod/internal/httpapi/handler"

	_ "github.com/kenfang/zero2prod/docs" // swag-generated docs
)

// NewRouter builds the root HTTP router with the health check and subscription routes.
//
// @title            zero2prod API
// @version          1.0
// @description      Newsletter service skeleton: liveness probe and subscription form.
// @BasePath         /
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS())

	r.Get("/health_check", handler.HealthCheck)
	r.With(LimitRequestBody(DefaultMaxBodyBytes)).Post("/subscriptions", handler.Subscribe)

	// Swagger UI and generated spec (from swag comments)
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	return r
}
