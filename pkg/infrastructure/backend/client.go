// Package backend reaches the POS REST API. It implements the inventory,
// customer, transaction and saved-cart repositories over HTTP.
package backend

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/domain/repositories"
)

const requestIDHeader = "X-Request-ID"

// Client is a POS API client bound to one session
type Client struct {
	http    *resty.Client
	session repositories.SessionStore
	logger  *zap.Logger

	mu      sync.Mutex
	catalog []*entities.CatalogItem
}

var (
	_ repositories.InventoryProvider = (*Client)(nil)
	_ repositories.CustomerProvider  = (*Client)(nil)
	_ repositories.TransactionStore  = (*Client)(nil)
	_ repositories.SavedCartStore    = (*Client)(nil)
)

// NewClient creates a client for the API rooted at baseURL, for example
// http://localhost:8000/api
func NewClient(baseURL string, timeout time.Duration, session repositories.SessionStore, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		session: session,
		logger:  logger,
	}
	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if token := c.session.Token(); token != "" {
				r.SetAuthToken(token)
			}
			if r.Header.Get(requestIDHeader) == "" {
				r.SetHeader(requestIDHeader, uuid.NewString())
			}
			return nil
		})
	return c
}

// do sends one request. result, when non-nil, receives the decoded 2xx body.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	started := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Warn("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return err
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.String("request_id", resp.Request.Header.Get(requestIDHeader)),
		zap.Duration("elapsed", time.Since(started)))

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		c.session.Clear()
		return ErrUnauthorized
	case resp.IsError() || resp.StatusCode() >= http.StatusMultipleChoices:
		apiErr := newAPIError(resp.StatusCode(), resp.Body())
		c.logger.Warn("api error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.String("detail", apiErr.Detail))
		return apiErr
	}
	return nil
}
