package cli

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pterm/pterm"

	"github.com/JackeyLee233/BlogProject/internal/client/models"
)

// Whoami shows the cached profile. The profile is a cache of server truth;
// use Refresh to update it.
func (a *App) Whoami(ctx context.Context) {
	if !a.isLoggedIn() {
		pterm.Info.Println("Not logged in")
		return
	}

	user := a.session.User()
	if user == nil {
		pterm.Info.Println("No cached profile, run 'refresh'")
	} else {
		a.renderUser(user)
	}

	if expiry, ok := tokenExpiry(a.session.Token()); ok {
		pterm.Info.Printf("Token expires at: %s\n", expiry.Format(time.RFC1123))
	}
}

// Status shows the active view and login state.
func (a *App) Status() {
	current := a.router.Current()
	pterm.Info.Printf("Current view: %s (%s)\n", current.Path, a.router.Title())
	if a.isLoggedIn() {
		pterm.Info.Println("Session: active")
	} else {
		pterm.Info.Println("Session: logged out")
	}
}

func (a *App) renderUser(user *models.User) {
	pterm.DefaultSection.Println("Current user")
	pterm.Info.Printf("Username: %s\n", user.Username)
	pterm.Info.Printf("Nickname: %s\n", user.Nickname)
	pterm.Info.Printf("Role: %s\n", user.Role)
	if user.Email != "" {
		pterm.Info.Printf("Email: %s\n", user.Email)
	}
	if user.LastLoginTime != "" {
		pterm.Info.Printf("Last login: %s\n", user.LastLoginTime)
	}
}

// tokenExpiry extracts the expiry claim from the bearer token without
// verifying the signature; the client has no key material and only uses the
// claim for display.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
