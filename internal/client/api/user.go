package api

import (
	"context"

	"github.com/JackeyLee233/BlogProject/internal/client/models"
)

// Client is the typed API surface consumed by the session service. The
// concrete implementation is *HTTPClient; tests substitute fakes.
type Client interface {
	Login(ctx context.Context, form models.LoginForm) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Login authenticates with the backend and returns the issued token and
// user profile. The call itself is anonymous.
func (c *HTTPClient) Login(ctx context.Context, form models.LoginForm) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.Post(ctx, "/auth/login", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the current token on the server.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.Post(ctx, "/auth/logout", nil, nil)
}

// CurrentUser fetches the profile of the authenticated user.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.Get(ctx, "/auth/current", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
