package utils

import "strings"

// MatchHost reports whether host (port ignored) matches pattern. A pattern
// like "*.example.com" matches any subdomain of example.com, not the apex.
func MatchHost(host, pattern string) bool {
	host = strings.ToLower(ParseHostNoPort(host))
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if host == "" || pattern == "" {
		return false
	}

	if host == pattern {
		return true
	}
	if strings.HasPrefix(pattern, "*.") {
		return strings.HasSuffix(host, pattern[1:])
	}
	return false
}

// HostAllowed reports whether host matches one of patterns.
func HostAllowed(host string, patterns []string) bool {
	for _, p := range patterns {
		if MatchHost(host, p) {
			return true
		}
	}
	return false
}

// EffectiveHost is the host the client addressed: X-Forwarded-Host behind a
// trusted proxy, r.Host otherwise.
func EffectiveHost(host, forwardedHost string, trustProxy bool) string {
	if trustProxy {
		if v := firstHeaderValue(forwardedHost); v != "" {
			return v
		}
	}
	return host
}
