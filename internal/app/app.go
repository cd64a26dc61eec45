package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/insights/internal/catalog"
	"github.com/MrSnakeDoc/insights/internal/config"
	"github.com/MrSnakeDoc/insights/internal/domain"
	"github.com/MrSnakeDoc/insights/internal/httpserver"
	"github.com/MrSnakeDoc/insights/internal/httpserver/deps"
	"github.com/MrSnakeDoc/insights/internal/httpserver/mw"
	"github.com/MrSnakeDoc/insights/internal/logger"
	"github.com/MrSnakeDoc/insights/internal/metrics"
	"github.com/MrSnakeDoc/insights/internal/version"
	"github.com/MrSnakeDoc/insights/internal/view"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	catalog *catalog.Catalog
}

// LoadCatalog reads the catalog from the configured source: file, content
// directory, or the embedded default.
func LoadCatalog(cfg *config.Config, loggerClient logger.Logger) (*catalog.Catalog, error) {
	loader := catalog.NewLoader(catalog.Options{
		File:     cfg.CatalogFile,
		Dir:      cfg.ContentDir,
		Sanitize: cfg.SanitizeContent,
	}, loggerClient)
	return loader.Load()
}

// New wires the catalog, renderer and metrics into the HTTP server.
// Any load error is fatal: the service never starts on a partial catalog.
func New(cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	c, err := LoadCatalog(cfg, loggerClient)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	renderer, err := view.NewRenderer(cfg.SiteTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m, err = metrics.New()
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		m.SetCatalogSize(c.Len())
	} else {
		loggerClient.Info("metrics disabled")
	}

	// Dependencies passed to routes.
	d := deps.Deps{
		Logger:           loggerClient,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		Catalog:          c,
		Renderer:         renderer,
		Metrics:          m,
		ListingOptions:   domain.ListingOptions{ExcludeFeatured: cfg.ExcludeFeatured},
		BaseURL:          cfg.BaseURL,
		AllowedCIDRS:     cfg.AllowedCIDRS,
		AllowedHosts:     cfg.AllowedHosts,
		TrustProxy:       cfg.TrustProxy,
		ShareLogRequests: cfg.ShareLogRequests,
		ShareRateLimit: mw.RateLimitConfig{
			Burst:             cfg.ShareRateBurst,
			RefillPerIPPerMin: cfg.ShareRatePerMin,
		},
	}
	if cfg.BaseURL == "" && len(cfg.AllowedHosts) == 0 {
		loggerClient.Warn("INSIGHTS_BASE_URL and INSIGHTS_ALLOWED_HOSTS unset, permalinks use the request Host")
	}

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		server:  httpserver.New(cfg, loggerClient, d),
		catalog: c,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Insights v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Insights %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)
	a.logger.Info("serving catalog",
		logger.String("source", a.catalog.Source()),
		logger.Int("posts", a.catalog.Len()),
		logger.Strings("categories", a.catalog.Categories()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ Insights stopped cleanly")
	return nil
}
