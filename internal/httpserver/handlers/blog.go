package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/insights/internal/domain"
	"github.com/MrSnakeDoc/insights/internal/httpserver/deps"
	"github.com/MrSnakeDoc/insights/internal/logger"
	"github.com/MrSnakeDoc/insights/internal/metrics"
	"github.com/MrSnakeDoc/insights/internal/utils"
	"github.com/MrSnakeDoc/insights/internal/view"
)

// Home sends visitors to the listing.
func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, view.ListingPath, http.StatusFound)
	}
}

// Listing renders the filtered post grid.
func Listing(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := d.Catalog.Listing(filterState(r), d.ListingOptions)
		observeListing(d, formatHTML, l)

		if err := d.Renderer.Render(w, http.StatusOK, view.PageListing, d.Renderer.Listing(l)); err != nil {
			renderFailed(d, w, r, err)
		}
	}
}

// Post renders a single post, or the "Post Not Found" page.
func Post(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		p, ok := d.Catalog.Lookup(id)
		if !ok {
			notFound(d, w, r, id)
			return
		}

		// A bogus notice is ignored rather than rejected: it only drives a banner.
		notice, _ := domain.ParsePlatform(r.URL.Query().Get("notice"))

		d.Metrics.ObserveView(metrics.ViewPost, formatHTML)
		page := d.Renderer.Post(p, permalink(d, r, p.ID), notice)
		if err := d.Renderer.Render(w, http.StatusOK, view.PagePost, page); err != nil {
			renderFailed(d, w, r, err)
		}
	}
}

// Share records a simulated share action and sends the reader back to the
// post with a notice.
func Share(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		platform, err := domain.ParsePlatform(chi.URLParam(r, "platform"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if _, ok := d.Catalog.Lookup(id); !ok {
			notFound(d, w, r, id)
			return
		}

		recordShare(d, r, id, platform)
		http.Redirect(w, r, view.PostURL(id)+"?notice="+string(platform), http.StatusSeeOther)
	}
}

func recordShare(d deps.Deps, r *http.Request, id string, platform domain.Platform) {
	d.Metrics.ObserveShare(string(platform))

	fields := []logger.Field{
		logger.String("post", id),
		logger.String("platform", string(platform)),
	}
	if d.ShareLogRequests {
		fields = append(fields, logger.String("client_ip", utils.ClientIP(r, d.TrustProxy)))
	}
	d.Logger.Info("post shared", fields...)
}

func notFound(d deps.Deps, w http.ResponseWriter, r *http.Request, id string) {
	d.Metrics.ObserveView(metrics.ViewNotFound, formatHTML)
	if err := d.Renderer.Render(w, http.StatusNotFound, view.PageNotFound, d.Renderer.NotFound(id)); err != nil {
		renderFailed(d, w, r, err)
	}
}

func renderFailed(d deps.Deps, w http.ResponseWriter, r *http.Request, err error) {
	d.Logger.Error("render failed",
		logger.String("path", r.URL.Path),
		logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
