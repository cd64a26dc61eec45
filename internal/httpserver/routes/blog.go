package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/insights/internal/httpserver/deps"
	"github.com/MrSnakeDoc/insights/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/insights/internal/httpserver/mw"
)

func init() {
	Register("blog", func(r chi.Router, d deps.Deps) {
		r.Group(func(r chi.Router) {
			r.Use(mw.EnforceHost(d.AllowedHosts, d.TrustProxy, d.Logger))

			r.Get("/", handlers.Home(d))
			r.Route("/blog", func(r chi.Router) {
				r.Get("/", handlers.Listing(d))
				r.Get("/{id}", handlers.Post(d))
				r.With(d.ShareLimiter).Post("/{id}/share/{platform}", handlers.Share(d))
			})
		})
	})
}
