// Package services contains the application services of the admin console.
// This file defines the session service: the single source of truth for the
// current credential and cached user profile, with durable persistence.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JackeyLee233/BlogProject/internal/client/api"
	"github.com/JackeyLee233/BlogProject/internal/client/models"
	"github.com/JackeyLee233/BlogProject/internal/client/repositories/session"
	"github.com/JackeyLee233/BlogProject/internal/client/router"
	"github.com/JackeyLee233/BlogProject/internal/logging"
)

// Navigator requests a view change after login and logout.
type Navigator interface {
	Navigate(path string)
}

// Notifier shows user-visible notifications.
type Notifier interface {
	Success(text string)
	Error(text string)
}

// Session owns the in-memory credential and profile and keeps them in sync
// with the session repository. It is hydrated from storage on construction
// and mutated only by Login, Logout, FetchIdentity, and the transport's 401
// teardown (which bypasses the in-memory copy and is reconciled on the next
// hydration).
//
// Not safe for concurrent use: concurrent Login/Logout/FetchIdentity calls
// race on storage with last-writer-wins semantics.
type Session struct {
	client api.Client
	repo   session.Repository
	nav    Navigator
	notify Notifier
	log    logging.Logger

	token string
	user  *models.User
}

// NewSession builds a session hydrated from the repository. A stored profile
// without a stored credential is discarded: the session counts as logged
// out. A corrupt stored profile is treated as absent.
func NewSession(ctx context.Context, client api.Client, repo session.Repository, nav Navigator, notify Notifier, log logging.Logger) (*Session, error) {
	s := &Session{client: client, repo: repo, nav: nav, notify: notify, log: log}

	token, err := repo.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("hydrate session: %w", err)
	}
	if token == "" {
		return s, nil
	}
	s.token = token

	raw, err := repo.UserInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("hydrate session: %w", err)
	}
	if len(raw) > 0 {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			log.Warn(ctx, "discarding corrupt stored user profile", "error", err)
		} else {
			s.user = &user
		}
	}
	return s, nil
}

// Login authenticates with the backend. On success the credential and
// profile are persisted together, the in-memory state is set, and one
// navigation to the dashboard is requested. On rejection the error is
// re-raised after the transport has surfaced it; no partial state is ever
// committed.
func (s *Session) Login(ctx context.Context, form models.LoginForm) error {
	resp, err := s.client.Login(ctx, form)
	if err != nil {
		var reqErr *api.RequestError
		if errors.As(err, &reqErr) {
			return fmt.Errorf("%w: %s", api.ErrAuthentication, reqErr.Message)
		}
		return err
	}

	raw, err := json.Marshal(resp.UserInfo)
	if err != nil {
		return fmt.Errorf("encode user profile: %w", err)
	}
	if err := s.repo.SaveSession(ctx, resp.Token, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.token = resp.Token
	user := resp.UserInfo
	s.user = &user

	s.notify.Success("Logged in")
	s.nav.Navigate(router.DashboardPath)
	return nil
}

// Logout tears the session down locally no matter what the server says: the
// remote call's failure is logged and otherwise ignored, the credential and
// profile are cleared from memory and storage together, and navigation to
// the login view is requested. Calling Logout on an already logged-out
// session is harmless.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "logout request failed, clearing local session anyway", "error", err)
	}

	s.token = ""
	s.user = nil

	err := s.repo.EraseSession(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to erase persisted session", "error", err)
	}

	s.nav.Navigate(router.LoginPath)
	s.notify.Success("Logged out")
	return err
}

// FetchIdentity refreshes the cached profile from the server. The credential
// is never touched: a failure leaves the session state exactly as it was.
func (s *Session) FetchIdentity(ctx context.Context) (*models.User, error) {
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user profile: %w", err)
	}
	if err := s.repo.SaveUserInfo(ctx, raw); err != nil {
		return nil, fmt.Errorf("persist user profile: %w", err)
	}

	s.user = user
	return user, nil
}

// IsLoggedIn reports whether a credential is present. It is side-effect-free
// and cheap enough to call from every prompt render.
func (s *Session) IsLoggedIn() bool { return s.token != "" }

// Token returns the in-memory credential, or "" when logged out.
func (s *Session) Token() string { return s.token }

// User returns the cached profile, or nil when none is cached.
func (s *Session) User() *models.User { return s.user }
