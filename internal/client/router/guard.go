package router

import "context"

// CredentialReader exposes the persisted credential. The guard reads storage
// directly rather than the in-memory session, so the decision is correct on
// a fresh start before the session has been hydrated, and stays consistent
// with the transport's 401 teardown which also writes straight to storage.
type CredentialReader interface {
	Token(ctx context.Context) (string, error)
}

// Decision is the outcome of a guard check: either the transition is
// allowed, or it is redirected to Redirect.
type Decision struct {
	Allow    bool
	Redirect string
}

// Guard decides whether a navigation target may be entered.
type Guard struct {
	creds CredentialReader
}

func NewGuard(creds CredentialReader) *Guard {
	return &Guard{creds: creds}
}

// Check evaluates the target's metadata against the persisted credential.
// Open routes always pass. Guarded routes pass only with a non-empty
// credential; a storage read failure counts as no credential.
func (g *Guard) Check(ctx context.Context, meta Metadata) Decision {
	if !meta.RequiresAuth {
		return Decision{Allow: true}
	}

	token, err := g.creds.Token(ctx)
	if err != nil || token == "" {
		return Decision{Redirect: LoginPath}
	}
	return Decision{Allow: true}
}
