package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCreds struct {
	token string
	err   error
}

func (f *fakeCreds) Token(ctx context.Context) (string, error) { return f.token, f.err }

func TestGuard_OpenRouteAlwaysAllowed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "without credential", token: ""},
		{name: "with credential", token: "tok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGuard(&fakeCreds{token: tt.token})

			d := g.Check(context.Background(), Metadata{Title: "Sign in"})

			assert.True(t, d.Allow)
			assert.Empty(t, d.Redirect)
		})
	}
}

func TestGuard_ZeroMetadataDefaultsToOpen(t *testing.T) {
	g := NewGuard(&fakeCreds{})

	d := g.Check(context.Background(), Metadata{})

	assert.True(t, d.Allow)
}

func TestGuard_GuardedRouteWithCredential(t *testing.T) {
	g := NewGuard(&fakeCreds{token: "tok"})

	d := g.Check(context.Background(), Metadata{Title: "Dashboard", RequiresAuth: true})

	assert.True(t, d.Allow)
}

func TestGuard_GuardedRouteWithoutCredentialRedirects(t *testing.T) {
	g := NewGuard(&fakeCreds{})

	d := g.Check(context.Background(), Metadata{Title: "Dashboard", RequiresAuth: true})

	assert.False(t, d.Allow)
	assert.Equal(t, LoginPath, d.Redirect)
}

func TestGuard_StorageFailureCountsAsNoCredential(t *testing.T) {
	g := NewGuard(&fakeCreds{err: errors.New("db locked")})

	d := g.Check(context.Background(), Metadata{RequiresAuth: true})

	assert.False(t, d.Allow)
	assert.Equal(t, LoginPath, d.Redirect)
}
