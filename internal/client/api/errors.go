package api

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned when a protected endpoint rejects a
	// previously valid credential (HTTP 401). The transport tears down the
	// persisted session before returning it.
	ErrSessionExpired = errors.New("session expired")

	// ErrNetwork is returned when no response was received at all.
	ErrNetwork = errors.New("network error")

	// ErrAuthentication is returned when the login endpoint rejects the
	// submitted credentials.
	ErrAuthentication = errors.New("authentication failed")
)

// RequestError reports a request that transported successfully but was
// rejected at the business layer: the HTTP exchange returned 2xx while the
// envelope code differs from CodeOK. Message is sourced from the server.
type RequestError struct {
	Code    int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request rejected (code %d): %s", e.Code, e.Message)
}

// HTTPError reports a non-2xx transport status other than 401. Message is
// the server-provided message when present, else a generic fallback.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// ClientError reports a request that could not be constructed or its
// response decoded. It is a local fault, not attributable to the server.
type ClientError struct {
	Err error
}

func (e *ClientError) Error() string { return "client error: " + e.Err.Error() }

func (e *ClientError) Unwrap() error { return e.Err }
