// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package limesurvey

// In this file: client construction and session key lifecycle.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/trace"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/rusq/lsmcp/internal/network"
)

const defUserAgent = "lsmcp/1.0"

// Client is a LimeSurvey RemoteControl 2 API client.  Zero value is not
// usable, initialise with New.
type Client struct {
	cl        *http.Client
	endpoint  string
	username  string
	password  string
	userAgent string

	lg      *slog.Logger
	limiter *rate.Limiter
	limits  network.Limits

	mu         sync.Mutex // guards sessionKey
	sessionKey string
	closed     bool

	idmu  sync.Mutex // guards reqID
	reqID int64
}

// Option is the signature of the option-setting function.
type Option func(*Client)

// WithHTTPClient sets the HTTP client to use.  If this option is not given,
// a client with a 60 second timeout is used.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithLimits sets the API limits to use.  If this option is not given,
// network.DefLimits are used.
func WithLimits(l network.Limits) Option {
	return func(c *Client) {
		c.limits = l
	}
}

// WithLogger sets the logger.  If this option is not given, slog.Default()
// is used.
func WithLogger(lg *slog.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a new client for the RemoteControl endpoint and authenticates
// with the given credentials.  endpoint is the full RemoteControl URL, i.e.
// https://example.com/index.php/admin/remotecontrol.  If authentication
// fails, *AuthError is returned.
func New(ctx context.Context, endpoint, username, password string, opts ...Option) (*Client, error) {
	ctx, task := trace.NewTask(ctx, "limesurvey.New")
	defer task.End()

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint url %q: scheme must be http or https", endpoint)
	}
	if username == "" {
		return nil, errors.New("username is empty")
	}
	if password == "" {
		return nil, errors.New("password is empty")
	}

	c := &Client{
		cl:        &http.Client{Timeout: 60 * time.Second},
		endpoint:  endpoint,
		username:  username,
		password:  password,
		userAgent: defUserAgent,
		lg:        slog.Default(),
		limits:    network.DefLimits,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.limits.Validate(); err != nil {
		var vErr validator.ValidationErrors
		if errors.As(err, &vErr) {
			return nil, fmt.Errorf("API limits failed validation: %s", vErr.Translate(network.Translations))
		}
		return nil, err
	}
	c.limiter = c.limits.Limiter()

	if err := c.authenticate(ctx); err != nil {
		return nil, err
	}
	c.lg.DebugContext(ctx, "limesurvey: session established", "endpoint", u.Redacted())

	return c, nil
}

// authenticate obtains a new session key, replacing any current one.  The
// caller must not hold c.mu.
func (c *Client) authenticate(ctx context.Context) error {
	var key string
	if err := c.rawCall(ctx, "get_session_key", []any{c.username, c.password}, &key); err != nil {
		var ae *APIError
		if errors.As(err, &ae) {
			return &AuthError{Err: err}
		}
		return err
	}

	c.mu.Lock()
	c.sessionKey = key
	c.closed = false
	c.mu.Unlock()
	return nil
}

// session returns the current session key.
func (c *Client) session() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return "", ErrNoSession
	}
	return c.sessionKey, nil
}

// Close releases the session key.  It is safe to call Close more than once.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	key := c.sessionKey
	c.sessionKey = ""
	c.closed = true
	c.mu.Unlock()

	var result string // server replies with "OK"
	if err := c.rawCall(ctx, "release_session_key", []any{key}, &result); err != nil {
		return fmt.Errorf("error releasing the session key: %w", err)
	}
	return nil
}

// Endpoint returns the configured RemoteControl endpoint with the userinfo,
// if any, redacted.
func (c *Client) Endpoint() string {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return c.endpoint
	}
	return u.Redacted()
}
