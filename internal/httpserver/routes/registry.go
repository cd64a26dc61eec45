package routes

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/insights/internal/httpserver/deps"
	"github.com/MrSnakeDoc/insights/internal/logger"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

type group struct {
	name string
	reg  Registrar
	mws  []Middleware
}

var registry []group

// Register adds a named route group with optional middlewares applied to
// every route of the group. Called from init functions.
func Register(name string, reg Registrar, mws ...Middleware) {
	registry = append(registry, group{name: name, reg: reg, mws: mws})
}

// Groups returns the registered group names, sorted.
func Groups() []string {
	names := make([]string, 0, len(registry))
	for _, g := range registry {
		names = append(names, g.name)
	}
	sort.Strings(names)
	return names
}

// RegisterAll mounts every registered group. Called once from NewRouter.
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, g := range registry {
		target := r
		if len(g.mws) > 0 {
			target = r.With(g.mws...)
		}
		g.reg(target, d)
		d.Logger.Debug("routes mounted",
			logger.String("group", g.name),
			logger.Int("middlewares", len(g.mws)))
	}
}
