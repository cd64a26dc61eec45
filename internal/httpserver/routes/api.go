package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/insights/internal/httpserver/deps"
	"github.com/MrSnakeDoc/insights/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/insights/internal/httpserver/mw"
)

func init() {
	Register("api", func(r chi.Router, d deps.Deps) {
		r.Route("/api", func(r chi.Router) {
			r.Use(mw.EnforceHost(d.AllowedHosts, d.TrustProxy, d.Logger))

			r.Get("/posts", handlers.APIPosts(d))
			r.Get("/posts/{id}", handlers.APIPost(d))
			r.With(d.ShareLimiter, middleware.AllowContentType("application/json")).
				Post("/posts/{id}/share", handlers.APIShare(d))
			r.Get("/categories", handlers.APICategories(d))
		})
	}, middleware.NoCache)
}
