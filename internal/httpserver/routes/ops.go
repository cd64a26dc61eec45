package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/insights/internal/httpserver/deps"
	"github.com/MrSnakeDoc/insights/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/insights/internal/httpserver/mw"
)

func init() {
	Register("ops", func(r chi.Router, d deps.Deps) {
		r.Group(func(r chi.Router) {
			r.Use(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))

			r.Get("/healthz", handlers.Healthz(d))
			r.Get("/readyz", handlers.Readyz(d))
			r.Get("/infra", handlers.Infra(d))
			if d.Metrics != nil {
				r.Method("GET", "/metrics", d.Metrics.Handler())
			}
		})
	})
}
