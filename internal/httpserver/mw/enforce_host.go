package mw

import (
	"net/http"

	"github.com/MrSnakeDoc/insights/internal/logger"
	"github.com/MrSnakeDoc/insights/internal/utils"
)

// EnforceHost answers only for the allowed hosts. Behind a trusted proxy the
// forwarded host is checked, since that is the one permalinks are built from.
// Supports wildcard patterns like "*.example.com". An empty list is a passthrough.
func EnforceHost(allowedHosts []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	if len(allowedHosts) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	log.Debug("host enforcement enabled", logger.Strings("hosts", allowedHosts))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := utils.EffectiveHost(r.Host, r.Header.Get("X-Forwarded-Host"), trustProxy)
			if !utils.HostAllowed(host, allowedHosts) {
				log.Debug("host rejected",
					logger.String("host", host),
					logger.String("path", r.URL.Path))
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
