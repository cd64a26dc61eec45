package deps

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/insights/internal/catalog"
	"github.com/MrSnakeDoc/insights/internal/domain"
	"github.com/MrSnakeDoc/insights/internal/httpserver/mw"
	"github.com/MrSnakeDoc/insights/internal/logger"
	"github.com/MrSnakeDoc/insights/internal/metrics"
	"github.com/MrSnakeDoc/insights/internal/view"
)

type Deps struct {
	Logger           logger.Logger
	StartTime        time.Time
	Version          string
	Commit           string
	BuildDate        string
	GoVersion        string
	Catalog          *catalog.Catalog      // immutable post catalog
	Renderer         *view.Renderer        // html pages
	Metrics          *metrics.Metrics      // nil when metrics are disabled
	ListingOptions   domain.ListingOptions // presentation rules of the listing
	BaseURL          string                // canonical origin for permalinks, empty => from request
	AllowedCIDRS     []string              // IPs allowed to access ops endpoints
	AllowedHosts     []string              // hosts the blog and api answer for, empty => any
	TrustProxy       bool                  // true if running behind a trusted reverse proxy
	ShareLogRequests bool                  // log client IPs of share actions

	ShareRateLimit mw.RateLimitConfig              // per-client limit of share actions
	ShareLimiter   func(http.Handler) http.Handler // built once by NewRouter, shared by html and api
}
