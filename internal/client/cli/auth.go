package cli

import (
	"context"
	"os"

	"github.com/JackeyLee233/BlogProject/internal/client/models"
	"github.com/JackeyLee233/BlogProject/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates via the session service.
// On success the service persists the session and navigates to the
// dashboard; on rejection the error has already been surfaced as a
// notification and is returned for the REPL to log. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := models.LoginForm{Username: userName, Password: string(password)}
	if err := a.session.Login(ctx, form); err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		return err
	}
	return nil
}

// Logout tears the session down. Local state is cleared even when the
// server is unreachable.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// Refresh re-fetches the current user's profile from the server without
// touching the credential.
func (a *App) Refresh(ctx context.Context) error {
	user, err := a.session.FetchIdentity(ctx)
	if err != nil {
		a.log.Warn(ctx, "profile refresh failed", "error", err)
		return err
	}
	a.renderUser(user)
	return nil
}
