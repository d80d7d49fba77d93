package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/domain/repositories"
)

func (c *Client) SaveCart(ctx context.Context, payload entities.SavedCartPayload) (*entities.SavedCartRecord, error) {
	var record entities.SavedCartRecord
	if err := c.do(ctx, http.MethodPost, "/saved-carts/", payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) ListSavedCarts(ctx context.Context) ([]*entities.SavedCartRecord, error) {
	var records []*entities.SavedCartRecord
	if err := c.do(ctx, http.MethodGet, "/saved-carts/", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) GetSavedCart(ctx context.Context, id entities.RecordID) (*entities.SavedCartRecord, error) {
	var record entities.SavedCartRecord
	if err := c.do(ctx, http.MethodGet, savedCartPath(id), nil, &record); err != nil {
		return nil, notFound(err, "saved cart", string(id))
	}
	return &record, nil
}

func (c *Client) DeleteSavedCart(ctx context.Context, id entities.RecordID) error {
	if err := c.do(ctx, http.MethodDelete, savedCartPath(id), nil, nil); err != nil {
		return notFound(err, "saved cart", string(id))
	}
	return nil
}

func savedCartPath(id entities.RecordID) string {
	return "/saved-carts/" + url.PathEscape(string(id)) + "/"
}

func notFound(err error, kind, id string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", kind, id, repositories.ErrNotFound)
	}
	return err
}
