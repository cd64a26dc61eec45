package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/insights/internal/domain"
	"github.com/MrSnakeDoc/insights/internal/httpserver/deps"
	"github.com/MrSnakeDoc/insights/internal/metrics"
	"github.com/MrSnakeDoc/insights/internal/utils"
	"github.com/MrSnakeDoc/insights/internal/view"
)

// Response formats, used as metrics labels.
const (
	formatHTML = "html"
	formatJSON = "json"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
	ID    string `json:"id,omitempty"`
}

// filterState reads the listing filter from the query string.
// An absent category means "All"; the search term is trimmed.
func filterState(r *http.Request) domain.FilterState {
	q := r.URL.Query()
	return domain.FilterState{
		Category: q.Get("category"),
		Search:   strings.TrimSpace(q.Get("q")),
	}.Normalize()
}

// permalink is the absolute address of a post as shown to readers.
func permalink(d deps.Deps, r *http.Request, id string) string {
	origin := d.BaseURL
	if origin == "" {
		origin = utils.RequestOrigin(r, d.TrustProxy, d.AllowedHosts)
	}
	return origin + view.PostURL(id)
}

func observeListing(d deps.Deps, format string, l domain.Listing) {
	d.Metrics.ObserveView(metrics.ViewListing, format)
	d.Metrics.ObserveQuery(l.State.Category != domain.AllCategories, l.State.Search != "", len(l.Posts))
}
