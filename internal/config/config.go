package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request deadline applied by chi

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Catalog source. Both empty => the embedded catalog is served.
	CatalogFile string // YAML file with a top-level "posts" list
	ContentDir  string // directory of markdown files with front matter

	SanitizeContent  bool // run post HTML through a sanitizing policy at load time
	ExcludeFeatured  bool // drop the featured post from the unfiltered grid
	SiteTitle        string
	BaseURL          string // canonical origin for permalinks, derived per request when empty
	MetricsEnabled   bool
	AllowedCIDRS     []string // optional, restrict ops endpoints (healthz, infra, metrics)
	AllowedHosts     []string // optional, hosts the blog answers for; "*.example.com" wildcards
	TrustProxy       bool     // true => trust X-Forwarded-* headers
	ShareLogRequests bool     // log the client IP of share actions

	ShareRateBurst  int // share actions a client may fire at once, 0 disables the limit
	ShareRatePerMin int // share actions refilled per client per minute
}

// Load reads the configuration from the environment. Every key has a default
// so the service starts with an empty environment.
func Load() *Config {
	cfg := &Config{
		ListenPort:      getenv("INSIGHTS_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("INSIGHTS_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("INSIGHTS_REQUEST_TIMEOUT", 2*time.Second),

		LogLevel:  getenv("INSIGHTS_LOG_LEVEL", "info"),
		PrettyLog: mustBool("INSIGHTS_PRETTY_LOG", true),

		CatalogFile: getenv("INSIGHTS_CATALOG_FILE", ""),
		ContentDir:  getenv("INSIGHTS_CONTENT_DIR", ""),

		SanitizeContent:  mustBool("INSIGHTS_SANITIZE_CONTENT", false),
		ExcludeFeatured:  mustBool("INSIGHTS_EXCLUDE_FEATURED", false),
		SiteTitle:        getenv("INSIGHTS_SITE_TITLE", "Insights & Thoughts"),
		BaseURL:          strings.TrimSuffix(getenv("INSIGHTS_BASE_URL", ""), "/"),
		MetricsEnabled:   mustBool("INSIGHTS_METRICS_ENABLED", true),
		AllowedCIDRS:     splitAndTrim(getenv("INSIGHTS_ALLOWED_CIDRS", "")),
		AllowedHosts:     splitAndTrim(getenv("INSIGHTS_ALLOWED_HOSTS", "")),
		TrustProxy:       mustBool("INSIGHTS_TRUST_PROXY", true),
		ShareLogRequests: mustBool("INSIGHTS_SHARE_LOG_REQUESTS", true),

		ShareRateBurst:  getenvInt("INSIGHTS_SHARE_RATE_BURST", 10),
		ShareRatePerMin: getenvInt("INSIGHTS_SHARE_RATE_PER_MIN", 30),
	}

	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", *cfg)
	}

	return cfg
}

// Validate reports configuration combinations that cannot be served.
func (c *Config) Validate() error {
	if c.CatalogFile != "" && c.ContentDir != "" {
		return errors.New("INSIGHTS_CATALOG_FILE and INSIGHTS_CONTENT_DIR are mutually exclusive")
	}
	if c.ListenPort == "" {
		return errors.New("INSIGHTS_LISTEN_PORT must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("INSIGHTS_REQUEST_TIMEOUT must be > 0")
	}
	if c.ShareRateBurst < 0 || c.ShareRatePerMin < 0 {
		return errors.New("INSIGHTS_SHARE_RATE_BURST and INSIGHTS_SHARE_RATE_PER_MIN must be >= 0")
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
