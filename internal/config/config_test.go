package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"INSIGHTS_LISTEN_PORT", "INSIGHTS_CATALOG_FILE", "INSIGHTS_CONTENT_DIR",
		"INSIGHTS_EXCLUDE_FEATURED", "INSIGHTS_BASE_URL", "INSIGHTS_ALLOWED_CIDRS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
	if cfg.ExcludeFeatured {
		t.Error("ExcludeFeatured should default to false")
	}
	if cfg.CatalogFile != "" || cfg.ContentDir != "" {
		t.Errorf("catalog source should default to embedded, got file=%q dir=%q", cfg.CatalogFile, cfg.ContentDir)
	}
	if cfg.AllowedCIDRS != nil {
		t.Errorf("AllowedCIDRS = %v, want nil", cfg.AllowedCIDRS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INSIGHTS_LISTEN_PORT", ":9090")
	t.Setenv("INSIGHTS_EXCLUDE_FEATURED", "true")
	t.Setenv("INSIGHTS_BASE_URL", "https://blog.example.com/")
	t.Setenv("INSIGHTS_ALLOWED_CIDRS", "10.0.0.0/8, '127.0.0.1'")
	t.Setenv("INSIGHTS_REQUEST_TIMEOUT", "750ms")

	cfg := Load()

	if cfg.ListenPort != ":9090" {
		t.Errorf("ListenPort = %q, want :9090", cfg.ListenPort)
	}
	if !cfg.ExcludeFeatured {
		t.Error("ExcludeFeatured = false, want true")
	}
	if cfg.BaseURL != "https://blog.example.com" {
		t.Errorf("BaseURL = %q, trailing slash should be trimmed", cfg.BaseURL)
	}
	want := []string{"10.0.0.0/8", "127.0.0.1"}
	if !reflect.DeepEqual(cfg.AllowedCIDRS, want) {
		t.Errorf("AllowedCIDRS = %v, want %v", cfg.AllowedCIDRS, want)
	}
	if cfg.RequestTimeout != 750*time.Millisecond {
		t.Errorf("RequestTimeout = %v, want 750ms", cfg.RequestTimeout)
	}
}

func TestValidateRejectsTwoSources(t *testing.T) {
	cfg := &Config{
		ListenPort:     ":8080",
		RequestTimeout: time.Second,
		CatalogFile:    "posts.yaml",
		ContentDir:     "content",
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject catalog file and content dir together")
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", value: "10s", def: time.Second, expected: 10 * time.Second},
		{name: "invalid duration falls back", value: "soon", def: time.Second, expected: time.Second},
		{name: "unset uses default", value: "", def: 3 * time.Second, expected: 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			if got := mustDuration("TEST_DURATION", tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{name: "true", value: "true", def: false, expected: true},
		{name: "numeric false", value: "0", def: true, expected: false},
		{name: "garbage falls back", value: "maybe", def: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			if got := mustBool("TEST_BOOL", tt.def); got != tt.expected {
				t.Errorf("mustBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(` a , "b",, 'c' `)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitAndTrim() = %v, want %v", got, want)
	}
	if splitAndTrim("") != nil {
		t.Error("splitAndTrim(\"\") should be nil")
	}
}

func TestLoadHostsAndShareRate(t *testing.T) {
	t.Setenv("INSIGHTS_ALLOWED_HOSTS", "blog.example.com, *.example.org")
	t.Setenv("INSIGHTS_SHARE_RATE_BURST", "3")
	t.Setenv("INSIGHTS_SHARE_RATE_PER_MIN", "not-a-number")

	cfg := Load()

	want := []string{"blog.example.com", "*.example.org"}
	if !reflect.DeepEqual(cfg.AllowedHosts, want) {
		t.Errorf("AllowedHosts = %v, want %v", cfg.AllowedHosts, want)
	}
	if cfg.ShareRateBurst != 3 {
		t.Errorf("ShareRateBurst = %d, want 3", cfg.ShareRateBurst)
	}
	if cfg.ShareRatePerMin != 30 {
		t.Errorf("ShareRatePerMin = %d, invalid value should fall back to 30", cfg.ShareRatePerMin)
	}

	cfg.ShareRateBurst = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a negative share burst")
	}
}
