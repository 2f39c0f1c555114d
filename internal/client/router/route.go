// Package router models the console's navigable views and gates transitions
// between them.
package router

// Well-known route paths.
const (
	RootPath      = "/"
	LoginPath     = "/admin/login"
	DashboardPath = "/admin/dashboard"
)

// titleSuffix is appended to every page title.
const titleSuffix = "Blog Admin"

// Metadata holds the per-route flags read by the guard. A route with zero
// Metadata is open: navigation never requires a session unless RequiresAuth
// is set explicitly.
type Metadata struct {
	Title        string
	RequiresAuth bool
}

// Route is one navigable target. A Route with a non-empty Redirect forwards
// to another path instead of rendering itself.
type Route struct {
	Path     string
	Redirect string
	Meta     Metadata
}

// DefaultRoutes returns the console's route table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: RootPath, Redirect: LoginPath},
		{Path: LoginPath, Meta: Metadata{Title: "Sign in"}},
		{Path: DashboardPath, Meta: Metadata{Title: "Dashboard", RequiresAuth: true}},
	}
}
