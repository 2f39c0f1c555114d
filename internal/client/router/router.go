package router

import (
	"context"
	"log/slog"

	"github.com/JackeyLee233/BlogProject/internal/logging"
)

// Router tracks the active view and applies the guard on every transition.
// It satisfies the Navigator interfaces of the transport and the session
// service. Not safe for concurrent use; the console drives it from a single
// goroutine.
type Router struct {
	routes  map[string]Route
	guard   *Guard
	log     logging.Logger
	current Route
	title   string
}

func New(guard *Guard, routes []Route, log logging.Logger) *Router {
	if log == nil {
		log = logging.NewSlogLogger(slog.Default())
	}
	byPath := make(map[string]Route, len(routes))
	for _, r := range routes {
		byPath[r.Path] = r
	}
	return &Router{routes: byPath, guard: guard, log: log}
}

// Navigate requests a transition to path. It is fire-and-forget: redirects
// and guard denials are resolved internally and nothing is reported back to
// the caller. The page title side effect is applied even when the guard
// redirects.
func (r *Router) Navigate(path string) {
	ctx := context.Background()

	route, ok := r.routes[path]
	if !ok {
		r.log.Warn(ctx, "navigation to unknown route", "path", path)
		return
	}
	if route.Redirect != "" {
		r.Navigate(route.Redirect)
		return
	}

	r.title = formatTitle(route.Meta.Title)

	decision := r.guard.Check(ctx, route.Meta)
	if !decision.Allow {
		r.log.Info(ctx, "navigation redirected", "from", path, "to", decision.Redirect)
		r.Navigate(decision.Redirect)
		return
	}

	r.current = route
}

// Current returns the active route.
func (r *Router) Current() Route { return r.current }

// Title returns the page title of the active view.
func (r *Router) Title() string { return r.title }

func formatTitle(title string) string {
	if title == "" {
		return titleSuffix
	}
	return title + " - " + titleSuffix
}
