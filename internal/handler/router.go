package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mockres/mockres/internal/middleware"
)

// Deps bundles the handlers and cross-cutting settings the router needs.
type Deps struct {
	Base      *Handler
	Users     *UserHandler
	Resources *ResourceHandler
	Auth      *AuthHandler
	Status    *StatusHandler
	Metrics   *MetricsHandler

	Logger             *slog.Logger
	CORSOrigins        []string
	MaxRequestBodySize int64
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recoverer(deps.Logger))

	secCfg := middleware.DefaultSecurityConfig()
	if deps.MaxRequestBodySize > 0 {
		secCfg.MaxRequestBodySize = deps.MaxRequestBodySize
	}
	r.Use(middleware.Security(secCfg))

	if len(deps.CORSOrigins) > 0 {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowedOrigins = deps.CORSOrigins
		r.Use(middleware.CORS(corsCfg))
	}

	r.Get("/", deps.Base.Hello)
	r.Get("/healthz", deps.Status.Healthz)
	r.Get("/status", deps.Status.Status)
	r.Get("/metrics", deps.Metrics.Metrics)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", deps.Users.List)
			r.Post("/", deps.Users.Create)
			r.Get("/{id}", deps.Users.Get)
			r.Put("/{id}", deps.Users.Update)
			r.Patch("/{id}", deps.Users.Update)
			r.Delete("/{id}", deps.Users.Delete)
		})

		resourceRoutes := func(r chi.Router) {
			r.Get("/", deps.Resources.List)
			r.Post("/", deps.Resources.Create)
			r.Get("/{id}", deps.Resources.Get)
			r.Put("/{id}", deps.Resources.Update)
			r.Patch("/{id}", deps.Resources.Update)
			r.Delete("/{id}", deps.Resources.Delete)
		}
		r.Route("/resources", resourceRoutes)
		// The public reqres API serves the color entity under /unknown.
		r.Route("/unknown", resourceRoutes)

		r.Post("/register", deps.Auth.Register)
		r.Post("/login", deps.Auth.Login)
	})

	r.NotFound(deps.Base.NotFound)
	r.MethodNotAllowed(deps.Base.MethodNotAllowed)

	return r
}
