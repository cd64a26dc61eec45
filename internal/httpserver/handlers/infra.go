package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/insights/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	PostsLoaded *int   `json:"posts_loaded,omitempty"`
	Categories  *int   `json:"categories,omitempty"`
	Source      string `json:"source,omitempty"`
	LoadedAt    string `json:"loaded_at,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra gives operators a per-component view of the service.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"catalog": catalogStatus(d),
			"metrics": metricsStatus(d),
			"listing": listingStatus(d),
		}

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func overallStatus(components map[string]componentStatus) string {
	if c, ok := components["catalog"]; ok && !c.OK {
		return "degraded" // nothing to read, pages still render their empty state
	}
	return "ok"
}

func catalogStatus(d deps.Deps) componentStatus {
	if d.Catalog == nil {
		return componentStatus{OK: false, Impact: "no-content"}
	}
	posts := d.Catalog.Len()
	categories := len(d.Catalog.Categories()) - 1 // without "All"
	return componentStatus{
		OK:          posts > 0,
		PostsLoaded: &posts,
		Categories:  &categories,
		Source:      d.Catalog.Source(),
		LoadedAt:    d.Catalog.LoadedAt().Format(time.RFC3339),
	}
}

func metricsStatus(d deps.Deps) componentStatus {
	if d.Metrics == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}
	return componentStatus{OK: true, Mode: "prometheus"}
}

func listingStatus(d deps.Deps) componentStatus {
	mode := "featured-in-grid"
	if d.ListingOptions.ExcludeFeatured {
		mode = "featured-excluded"
	}
	return componentStatus{OK: true, Mode: mode}
}
