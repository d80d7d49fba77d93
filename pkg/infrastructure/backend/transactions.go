package backend

import (
	"context"
	"net/http"

	"github.com/vsinha/pos/pkg/domain/entities"
)

// CreateTransaction submits a completed sale. The backend decrements stock in
// the same database transaction.
func (c *Client) CreateTransaction(ctx context.Context, payload entities.TransactionPayload) (*entities.TransactionRecord, error) {
	var record entities.TransactionRecord
	if err := c.do(ctx, http.MethodPost, "/transactions/", payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]*entities.TransactionRecord, error) {
	var records []*entities.TransactionRecord
	if err := c.do(ctx, http.MethodGet, "/transactions/", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
