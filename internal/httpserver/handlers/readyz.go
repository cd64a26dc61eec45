package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/insights/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
	Posts int  `json:"posts"`
}

// Readyz reports ready once a catalog is loaded. An empty catalog is still
// servable: the listing simply shows its empty state.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Catalog == nil {
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{})
			return
		}
		writeJSON(w, http.StatusOK, readyzResponse{Ready: true, Posts: d.Catalog.Len()})
	}
}
