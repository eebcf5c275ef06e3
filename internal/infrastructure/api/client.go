// Package api implements the domain repository interfaces against the
// SmartPurse REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/smartpurse/pos-terminal/internal/config"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
	"golang.org/x/time/rate"
)

// IdempotencyKeyHeader carries the client-generated key deduplicating
// retried create requests.
const IdempotencyKeyHeader = "Idempotency-Key"

// Client is the shared HTTP client all resource endpoints go through. It
// applies the configured request timeout, outbound rate limiting, bearer
// token injection and the HTTP-status to error-taxonomy mapping.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the configured backend.
func NewClient(cfg *config.APIConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
	}
}

// SetAccessToken installs the bearer token attached to subsequent requests.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the error envelope the backend uses.
type errorBody struct {
	Error string `json:"error"`
}

// do executes one request. A non-nil body is sent as JSON; a non-nil out
// receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, headers map[string]string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apperror.NewNetworkError("Request cancelled", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperror.NewInternalError(err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return apperror.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.accessToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts land here too; both are retryable by the user.
		return apperror.NewNetworkError("Request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewNetworkError("Failed to read response", err)
	}

	if resp.StatusCode >= 400 {
		return c.statusError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperror.NewNetworkError("Malformed response from backend", err)
		}
	}
	return nil
}

func (c *Client) statusError(status int, raw []byte) error {
	msg := fmt.Sprintf("Backend returned status %d", status)
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Error != "" {
		msg = eb.Error
	}

	switch status {
	case http.StatusUnauthorized:
		return apperror.ErrSessionExpired
	case http.StatusNotFound:
		return &apperror.AppError{Kind: apperror.KindNotFound, Message: msg}
	case http.StatusConflict:
		return apperror.NewConflictError(msg)
	default:
		return apperror.NewNetworkError(msg, errors.New(msg))
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, nil, out)
}

func (c *Client) post(ctx context.Context, path string, headers map[string]string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, headers, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, nil)
}
