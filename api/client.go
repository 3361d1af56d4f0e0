package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/eliseodavidv/proyectocompleto/session"
	Logger "github.com/eliseodavidv/proyectocompleto/utils/log"
)

const (
	DefaultTimeout     = 10 * time.Second
	DefaultMaxAttempts = 3
	defaultBackoffUnit = time.Second
)

// Client is the REST adapter to the VidaFit backend. It injects the bearer
// token from the session service into every request and classifies failures
// into the taxonomy in errors.go.
//
// Retries happen in an explicit bounded loop (withRetry) rather than through
// resty's built-in retry, so attempt counting and backoff are testable
// without timer mocking.
type Client struct {
	http        *resty.Client
	session     *session.Service
	maxAttempts int
	backoffUnit time.Duration
	sleep       func(time.Duration)
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

func WithMaxAttempts(n int) Option {
	return func(c *Client) { c.maxAttempts = n }
}

// WithSleeper swaps the backoff sleeper, used by tests to assert delays
// without waiting for them.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(c *Client) { c.sleep = sleep }
}

func WithBackoffUnit(d time.Duration) Option {
	return func(c *Client) { c.backoffUnit = d }
}

func NewClient(baseURL string, sess *session.Service, opts ...Option) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(DefaultTimeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c := &Client{
		http:        httpClient,
		session:     sess,
		maxAttempts: DefaultMaxAttempts,
		backoffUnit: defaultBackoffUnit,
		sleep:       time.Sleep,
	}

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := sess.Token(); len(token) > 0 {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// withRetry runs one request up to maxAttempts times with exponential
// backoff (1s, 2s, ...). Only TIMEOUT, NETWORK_ERROR and SERVER_ERROR are
// retried; everything else is terminal on the first attempt. The wrapper is
// stateless across calls, there is no shared circuit breaker.
func (c *Client) withRetry(ctx context.Context, do func(ctx context.Context) (*resty.Response, error)) error {
	var last *Error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			c.sleep(time.Duration(1<<(attempt-1)) * c.backoffUnit)
		}
		resp, err := do(ctx)
		apiErr := classify(resp, err)
		if apiErr == nil {
			return nil
		}
		if apiErr.Kind == ErrUnauthorized {
			c.expireSession()
			return apiErr
		}
		if !apiErr.Retryable() {
			return apiErr
		}
		Logger.LogV2.Info(fmt.Sprintf("request failed with %s on attempt %d/%d", apiErr.Kind, attempt+1, c.maxAttempts))
		last = apiErr
	}
	return last
}

// doOnce is withRetry without the retry, for non-idempotent requests.
func (c *Client) doOnce(ctx context.Context, do func(ctx context.Context) (*resty.Response, error)) error {
	resp, err := do(ctx)
	apiErr := classify(resp, err)
	if apiErr == nil {
		return nil
	}
	if apiErr.Kind == ErrUnauthorized {
		c.expireSession()
	}
	return apiErr
}

// expireSession implements the global UNAUTHORIZED policy: drop the stored
// token and let session listeners force navigation to login.
func (c *Client) expireSession() {
	Logger.LogV2.Error("unauthorized response, clearing session token")
	if err := c.session.Clear(); err != nil {
		Logger.LogV2.Error(fmt.Sprintf("fail to clear session: %v", err))
	}
}

// getJSON fetches path with retry and decodes the 2xx body into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.withRetry(ctx, func(ctx context.Context) (*resty.Response, error) {
		return c.http.R().SetContext(ctx).SetResult(out).Get(path)
	})
}

// postJSON posts body exactly once (creates are not idempotent) and decodes
// the response into out when out is non-nil.
func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.doOnce(ctx, func(ctx context.Context) (*resty.Response, error) {
		req := c.http.R().SetContext(ctx).SetBody(body)
		if out != nil {
			req.SetResult(out)
		}
		return req.Post(path)
	})
}

// postIdempotent is for server-documented idempotent POSTs (join) which are
// safe to retry.
func (c *Client) postIdempotent(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.withRetry(ctx, func(ctx context.Context) (*resty.Response, error) {
		req := c.http.R().SetContext(ctx)
		if body != nil {
			req.SetBody(body)
		}
		if out != nil {
			req.SetResult(out)
		}
		return req.Post(path)
	})
}

func (c *Client) putJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.withRetry(ctx, func(ctx context.Context) (*resty.Response, error) {
		req := c.http.R().SetContext(ctx).SetBody(body)
		if out != nil {
			req.SetResult(out)
		}
		return req.Put(path)
	})
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.withRetry(ctx, func(ctx context.Context) (*resty.Response, error) {
		return c.http.R().SetContext(ctx).Delete(path)
	})
}
