package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/zhkhub/clientkit/pkg/logger"
)

// Client performs outbound API calls through the two-stage pipeline.
type Client struct {
	rc        *resty.Client
	log       *slog.Logger
	notifier  Notifier
	navigator Navigator
	loginPath string

	mu          sync.RWMutex
	tokens      TokenSource
	invalidator SessionInvalidator
}

// Option configures the client at construction time.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithNotifier sets the user-facing message sink.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithNavigator sets the redirect collaborator used on session expiry.
func WithNavigator(nav Navigator) Option {
	return func(c *Client) {
		c.navigator = nav
	}
}

// WithRestyClient replaces the underlying resty client. The base URL,
// timeout and outbound middleware are still applied on top of it.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		if rc != nil {
			c.rc = rc
		}
	}
}

// New creates a client for the API at cfg.BaseURL.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		log:       slog.Default(),
		notifier:  NopNotifier{},
		loginPath: cfg.LoginPath,
	}
	if c.loginPath == "" {
		c.loginPath = "/login"
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.rc == nil {
		c.rc = resty.New()
	}
	c.rc.
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json;charset=UTF-8")

	// Outbound stage: credential attachment must never block or fail.
	c.rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if token := c.token(); token != "" {
			r.SetAuthToken(token)
		}
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return c
}

// SetTokenSource attaches the session side of the pipeline. The session
// store performs its calls through this client, so it cannot exist before
// the client does; one side of the pair is always wired late.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

// SetSessionInvalidator attaches the collaborator used to tear the session
// down when the server reports an expired credential.
func (c *Client) SetSessionInvalidator(inv SessionInvalidator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidator = inv
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *Client) sessionInvalidator() SessionInvalidator {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.invalidator
}

// Get performs a GET call and unmarshals the envelope's data into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST call with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT call with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE call.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return c.failSend(path, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return c.failTransport(ctx, path, resp.StatusCode())
	}

	return c.handleEnvelope(path, resp.Body(), out)
}

// failSend classifies failures where no transport status is available: the
// call never produced a response (network) or could not be constructed at
// all (local). Local error text is passed through unchanged.
func (c *Client) failSend(path string, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		nerr := &NetworkError{Err: err}
		c.log.Warn("request failed without response", slog.String("path", path), logger.Error(err))
		c.notifier.Error(nerr.Error())
		return nerr
	}

	c.log.Error("request could not be sent", slog.String("path", path), logger.Error(err))
	c.notifier.Error(err.Error())
	return err
}

// failTransport classifies responses whose HTTP status already denotes
// failure, before any envelope is available. A 401 here tears the session
// down immediately; unlike the envelope-level 401, no confirmation is
// asked first.
func (c *Client) failTransport(ctx context.Context, path string, status int) error {
	msg := transportMessage(status)
	c.log.Warn("request rejected by transport",
		slog.String("path", path), slog.Int("status", status))

	if status == http.StatusUnauthorized {
		c.teardown(ctx)
		c.notifier.Error(msg)
		return &AuthExpiredError{Message: msg}
	}

	c.notifier.Error(msg)
	return &RequestError{Status: status, Message: msg}
}

// handleEnvelope classifies a transport-level success. Business success is
// only an envelope code of 200.
func (c *Client) handleEnvelope(path string, body []byte, out any) error {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		err = errors.Join(ErrInvalidEnvelope, err)
		c.log.Error("undecodable response body", slog.String("path", path), logger.Error(err))
		c.notifier.Error(err.Error())
		return err
	}

	if env.OK() {
		if out != nil && len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return errors.Join(ErrInvalidEnvelope, err)
			}
		}
		return nil
	}

	msg := env.ErrorMessage()
	c.log.Warn("request rejected by server",
		slog.String("path", path), slog.Int("code", env.Code), slog.String("message", msg))
	c.notifier.Error(msg)

	if env.Code == http.StatusUnauthorized {
		c.promptReauth()
		return &AuthExpiredError{Message: msg}
	}

	return &BusinessError{Code: env.Code, Message: msg}
}

// promptReauth asks the user to sign in again after the server reported an
// expired credential inside an envelope. It runs detached: the failed call
// is already rejected and must not wait on the user's answer.
func (c *Client) promptReauth() {
	go func() {
		ctx := context.Background()
		ok := c.notifier.Confirm(ctx,
			"Signed out",
			"Your sign-in has expired. Sign in again?")
		if !ok {
			return
		}
		c.teardown(ctx)
	}()
}

// teardown clears the session and moves navigation to the login route.
func (c *Client) teardown(ctx context.Context) {
	if inv := c.sessionInvalidator(); inv != nil {
		if err := inv.Logout(ctx); err != nil {
			c.log.Error("session teardown failed", logger.Error(err))
		}
	}
	if c.navigator != nil {
		c.navigator.Push(c.loginPath)
	}
}
