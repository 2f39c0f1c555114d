// Package session persists the client's credential and cached user profile
// across runs of the console.
package session

import "context"

// Storage keys. They match the wire-level persistence contract: the raw
// credential under "token" and the JSON-serialized profile under "userInfo".
const (
	KeyToken    = "token"
	KeyUserInfo = "userInfo"
)

// Repository is the durable key-value store for the session. The credential
// and the profile are always written and erased together so that a profile
// can never outlive its credential.
type Repository interface {
	// Token returns the persisted credential, or "" when absent.
	Token(ctx context.Context) (string, error)

	// UserInfo returns the persisted profile JSON, or nil when absent.
	UserInfo(ctx context.Context) ([]byte, error)

	// SaveSession stores the credential and profile in a single transaction.
	SaveSession(ctx context.Context, token string, userInfo []byte) error

	// SaveUserInfo overwrites only the profile, leaving the credential as is.
	SaveUserInfo(ctx context.Context, userInfo []byte) error

	// EraseSession removes the credential and profile in a single transaction.
	// Erasing an already empty session is a no-op.
	EraseSession(ctx context.Context) error
}
