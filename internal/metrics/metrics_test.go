package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveQuery(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveQuery(false, false, 4) // default listing is not counted
	m.ObserveQuery(true, false, 1)
	m.ObserveQuery(false, true, 0)
	m.ObserveQuery(true, true, 0)
	m.ObserveQuery(true, true, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("category", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("search", "empty")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues("both", "empty")))
}

func TestObserveViewAndShare(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveView(ViewPost, "html")
	m.ObserveView(ViewPost, "html")
	m.ObserveShare("twitter")
	m.SetCatalogSize(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.pageViews.WithLabelValues(ViewPost, "html")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shareActions.WithLabelValues("twitter")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.catalogPosts))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveView(ViewListing, "html")
		m.ObserveQuery(true, true, 0)
		m.ObserveShare("copy")
		m.SetCatalogSize(1)
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	m.ObserveShare("linkedin")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `insights_share_actions_total{platform="linkedin"} 1`))
}
