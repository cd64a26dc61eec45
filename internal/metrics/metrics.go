// Package metrics exposes Prometheus counters for page views, searches and
// share actions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// View labels.
const (
	ViewListing  = "listing"
	ViewPost     = "post"
	ViewNotFound = "not_found"
)

// Metrics holds the collectors registered for the blog.
type Metrics struct {
	registry *prometheus.Registry

	pageViews    *prometheus.CounterVec
	searches     *prometheus.CounterVec
	shareActions *prometheus.CounterVec
	catalogPosts prometheus.Gauge
}

// New creates the metrics and registers them on a fresh registry together
// with the Go runtime and process collectors.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.pageViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insights",
			Name:      "page_views_total",
			Help:      "Total number of rendered views",
		},
		[]string{"view", "format"}, // format: html, json
	)
	m.searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insights",
			Name:      "listing_queries_total",
			Help:      "Total number of filtered listing requests",
		},
		[]string{"filter", "result"}, // filter: category, search, both; result: hit, empty
	)
	m.shareActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insights",
			Name:      "share_actions_total",
			Help:      "Total number of simulated share actions",
		},
		[]string{"platform"},
	)
	m.catalogPosts = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "insights",
		Name:      "catalog_posts",
		Help:      "Number of posts in the loaded catalog",
	})

	for _, c := range []prometheus.Collector{
		m.pageViews,
		m.searches,
		m.shareActions,
		m.catalogPosts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveView counts a rendered page or API response.
func (m *Metrics) ObserveView(view, format string) {
	if m == nil {
		return
	}
	m.pageViews.WithLabelValues(view, format).Inc()
}

// ObserveQuery counts a non-default listing request.
func (m *Metrics) ObserveQuery(hasCategory, hasSearch bool, results int) {
	if m == nil || (!hasCategory && !hasSearch) {
		return
	}
	filter := "both"
	switch {
	case !hasSearch:
		filter = "category"
	case !hasCategory:
		filter = "search"
	}
	result := "hit"
	if results == 0 {
		result = "empty"
	}
	m.searches.WithLabelValues(filter, result).Inc()
}

// ObserveShare counts a share action.
func (m *Metrics) ObserveShare(platform string) {
	if m == nil {
		return
	}
	m.shareActions.WithLabelValues(platform).Inc()
}

// SetCatalogSize records the number of loaded posts.
func (m *Metrics) SetCatalogSize(n int) {
	if m == nil {
		return
	}
	m.catalogPosts.Set(float64(n))
}
