// Package router sets up all HTTP routes and middleware chains for the
// PropLib catalog API. It organizes routes into public, analytics, and
// admin groups with appropriate middleware stacks.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"proplib/internal/handlers"
	"proplib/internal/middleware"
)

// Config carries the secrets the route groups need.
type Config struct {
	AdminAPIKey string
	CronSecret  string
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(cfg Config, public *handlers.Public, analytics *handlers.Analytics, admin *handlers.Admin) chi.Router {
	r := chi.NewRouter()

	// Global middleware applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check, no auth.
	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		// Public read path.
		r.Get("/components", public.List)
		r.Get("/components/{id}", public.Get)
		r.Get("/components/{id}/card", public.Card)
		r.Get("/previews", public.Previews)

		// Analytics. Track accepts anonymous writes, so it gets a per-IP
		// rate limit.
		r.Route("/analytics", func(r chi.Router) {
			trackLimiter := middleware.NewRateLimiter(60, time.Minute)
			r.With(trackLimiter.Middleware).Post("/track", analytics.Track)
			r.Get("/popular", analytics.Popular)
		})

		// Administrative write path, bearer token required.
		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(cfg.AdminAPIKey))
				r.Post("/components", admin.Create)
				r.Put("/components/{id}", admin.Update)
				r.Delete("/components/{id}", admin.Delete)
			})

			// Refresh is also called by the scheduler with a shared secret.
			r.With(middleware.AdminOrCronSecret(cfg.AdminAPIKey, cfg.CronSecret)).
				Post("/refresh-analytics", admin.RefreshAnalytics)
		})
	})

	return r
}
