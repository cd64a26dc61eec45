package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/insights/internal/domain"
	"github.com/MrSnakeDoc/insights/internal/httpserver/deps"
	"github.com/MrSnakeDoc/insights/internal/metrics"
)

// maxShareBody bounds the JSON body of a share request.
const maxShareBody = 1 << 10

type listingResponse struct {
	Category   string        `json:"category"`
	Query      string        `json:"q"`
	Count      int           `json:"count"`
	Categories []string      `json:"categories"`
	Featured   *domain.Post  `json:"featured"`
	Posts      []domain.Post `json:"posts"`
}

type shareRequest struct {
	Platform string `json:"platform"`
}

type shareResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// APIPosts returns the filtered listing. Posts are summaries without content.
func APIPosts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := d.Catalog.Listing(filterState(r), d.ListingOptions)
		observeListing(d, formatJSON, l)

		resp := listingResponse{
			Category:   l.State.Category,
			Query:      l.State.Search,
			Count:      len(l.Posts),
			Categories: l.Categories,
			Posts:      make([]domain.Post, 0, len(l.Posts)),
		}
		if l.Featured != nil {
			f := l.Featured.Summary()
			resp.Featured = &f
		}
		for _, p := range l.Posts {
			resp.Posts = append(resp.Posts, p.Summary())
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// APIPost returns one post with its content.
func APIPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		p, ok := d.Catalog.Lookup(id)
		if !ok {
			d.Metrics.ObserveView(metrics.ViewNotFound, formatJSON)
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "post not found", ID: id})
			return
		}

		d.Metrics.ObserveView(metrics.ViewPost, formatJSON)
		writeJSON(w, http.StatusOK, p)
	}
}

// APICategories returns the category enumeration, "All" first.
func APICategories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Catalog.Categories())
	}
}

// APIShare is the JSON form of the share action.
func APIShare(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req shareRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxShareBody)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		platform, err := domain.ParsePlatform(req.Platform)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if _, ok := d.Catalog.Lookup(id); !ok {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "post not found", ID: id})
			return
		}

		recordShare(d, r, id, platform)
		writeJSON(w, http.StatusOK, shareResponse{
			OK:      true,
			Message: domain.ShareNotice(platform),
			URL:     permalink(d, r, id),
		})
	}
}
