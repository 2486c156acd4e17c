package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/greenapi-console/internal/infra/http/middleware"
)

// NewRouter mounts the page, the action API, health and metrics.
// actionsPerMinute caps action calls per client IP; 0 disables the cap.
func NewRouter(console *ConsoleHandler, health *HealthHandler, allowedOrigins []string, actionsPerMinute int) http.Handler {
	limiter := middleware.NewRateLimiter(actionsPerMinute, time.Minute)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	// cors treats an empty origin list as "*", so it is only mounted when
	// origins are configured.
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))
	}

	r.Get("/", console.HandlePage)
	r.Get("/health", health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/connection", console.HandleStatus)
		r.With(limiter.Handler).Post("/actions/{action}", console.HandleAction)
	})

	return r
}
