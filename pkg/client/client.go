// Package client is the typed data-access layer for the CareHub API. Reads
// go through a query-key cache with in-flight deduplication; mutations
// either invalidate the affected keys or update them optimistically.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jwalitptl/carehub-api/pkg/logger"
)

const (
	DefaultStaleTime     = 30 * time.Second
	DefaultRetryInterval = time.Second
	// VitalsRetries is how often a failed vitals read is retried.
	VitalsRetries = 3
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying the request may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

type Client struct {
	baseURL       string
	httpClient    *http.Client
	cache         *Cache
	group         singleflight.Group
	logger        *logger.Logger
	retryInterval time.Duration
	staleTime     time.Duration
	now           func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithStaleTime sets how long a cached read is served without refetching.
func WithStaleTime(d time.Duration) Option {
	return func(c *Client) { c.staleTime = d }
}

func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.logger = log }
}

// WithRetryInterval sets the first backoff step of the vitals retry.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) { c.retryInterval = d }
}

// New returns a client for the server at baseURL, e.g. http://localhost:3001.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		logger:        logger.Nop(),
		retryInterval: DefaultRetryInterval,
		staleTime:     DefaultStaleTime,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = NewCache(c.staleTime)
	return c
}

func (c *Client) Cache() *Cache {
	return c.cache
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&eb)
		if eb.Error == "" {
			eb.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: eb.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// query serves key from the cache or runs fetch once for all concurrent
// callers. The shared fetch is detached from any single caller's ctx; a
// caller whose ctx ends stops waiting and gets ctx.Err() while the others
// still receive the result. The result is cached only if the key was not
// cancelled or invalidated while fetch ran. Returned values are shared with
// the cache and must be treated as read-only.
func query[T any](ctx context.Context, c *Client, key Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := cached[T](c.cache, key); ok {
		return v, nil
	}

	gen := c.cache.Generation(key)
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key.String(), func() (interface{}, error) {
		res, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		if !c.cache.SetIfGeneration(key, gen, res) {
			c.logger.Debug("Discarded superseded read", "key", key.String())
		}
		return res, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	}
}

func get[T any](c *Client, path string, params url.Values) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		var out T
		err := c.do(ctx, http.MethodGet, path, params, nil, &out)
		return out, err
	}
}
