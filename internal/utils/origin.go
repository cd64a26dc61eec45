package utils

import (
	"net/http"
	"strings"
)

// RequestOrigin returns "scheme://host" of the request as seen by the client.
// With trustProxy, X-Forwarded-Proto is honored; X-Forwarded-Host only when it
// matches allowedHosts, so a forged header never ends up in a permalink.
func RequestOrigin(r *http.Request, trustProxy bool, allowedHosts []string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if trustProxy {
		if v := strings.ToLower(firstHeaderValue(r.Header.Get("X-Forwarded-Proto"))); v == "http" || v == "https" {
			scheme = v
		}
		if v := firstHeaderValue(r.Header.Get("X-Forwarded-Host")); v != "" && HostAllowed(v, allowedHosts) {
			host = v
		}
	}

	return scheme + "://" + host
}

func firstHeaderValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
