// Package api implements the authenticated HTTP transport for the blog
// backend and the typed API surface built on top of it.
//
// Every call goes through a single exchange pipeline: the request is
// decorated with the persisted bearer credential and a request id, the
// response envelope is decoded, and the (HTTP status, envelope code) pair is
// classified into a single success/failure outcome. Authentication failures
// additionally tear down the persisted session and request navigation to the
// login route.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/JackeyLee233/BlogProject/internal/logging"
)

// DefaultTimeout bounds every HTTP exchange. A request exceeding it fails
// through the no-response branch.
const DefaultTimeout = 15 * time.Second

// SessionStore is the slice of the session repository the transport needs:
// the credential before each request, and session teardown after a 401.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	EraseSession(ctx context.Context) error
}

// Navigator requests a view change. Calls are fire-and-forget.
type Navigator interface {
	Navigate(path string)
}

// Notifier shows non-blocking, user-visible notifications.
type Notifier interface {
	Success(text string)
	Error(text string)
}

// HTTPClient performs authenticated JSON exchanges against the backend.
// It is not safe for concurrent mutation of its configuration after New.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	store      SessionStore
	nav        Navigator
	notify     Notifier
	log        logging.Logger
	loginPath  string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client, e.g. in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.httpClient.Timeout = d }
}

// WithLogger replaces the default logger.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithLoginPath overrides the route the transport navigates to after a 401.
func WithLoginPath(path string) Option {
	return func(c *HTTPClient) { c.loginPath = path }
}

// NewHTTPClient builds a transport for the given base URL. The store supplies
// the persisted credential and absorbs 401 teardown; nav and notify receive
// the transport's side effects.
func NewHTTPClient(baseURL string, store SessionStore, nav Navigator, notify Notifier, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		store:      store,
		nav:        nav,
		notify:     notify,
		log:        logging.NewSlogLogger(slog.Default()),
		loginPath:  "/admin/login",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request and decodes the envelope payload into out.
func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body and decodes the envelope
// payload into out. Both body and out may be nil.
func (c *HTTPClient) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *HTTPClient) Put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE request.
func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do runs one exchange end to end: build, decorate, send, decode, classify,
// apply side effects. It never retries.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		c.notify.Error(messageOr(err.Error(), MsgRequestFailed))
		return &ClientError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.notify.Error(MsgNetworkError)
		return fmt.Errorf("%s %s: %w", method, path, ErrNetwork)
	}
	defer resp.Body.Close()

	var env Envelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.notify.Error(MsgNetworkError)
		return fmt.Errorf("%s %s: read response: %w", method, path, ErrNetwork)
	}
	// A failed response may carry a non-envelope body; classification then
	// falls back to generic messages for the status code.
	_ = json.Unmarshal(raw, &env)

	if err := Classify(resp.StatusCode, &env); err != nil {
		c.react(ctx, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			decodeErr := &ClientError{Err: fmt.Errorf("decode payload: %w", err)}
			c.notify.Error(decodeErr.Error())
			return decodeErr
		}
	}
	return nil
}

// newRequest constructs the outbound request and attaches the standard
// headers. The credential header is omitted for anonymous calls.
func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("X-Request-Id", uuid.NewString())

	token, err := c.store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// react applies the cross-cutting side effects of a classified failure.
// A 401 erases the persisted session directly instead of going through the
// session service's logout, so no second network call is made.
func (c *HTTPClient) react(ctx context.Context, err error) {
	switch e := err.(type) {
	case *RequestError:
		c.notify.Error(e.Message)
	case *HTTPError:
		c.notify.Error(e.Message)
	default:
		if errors.Is(err, ErrSessionExpired) {
			if eraseErr := c.store.EraseSession(ctx); eraseErr != nil {
				c.log.Error(ctx, "failed to erase expired session", "error", eraseErr)
			}
			c.nav.Navigate(c.loginPath)
			c.notify.Error(MsgSessionExpired)
			return
		}
		c.notify.Error(MsgRequestFailed)
	}
}
