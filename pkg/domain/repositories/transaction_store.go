package repositories

import (
	"context"

	"github.com/vsinha/pos/pkg/domain/entities"
)

// TransactionStore records completed sales
type TransactionStore interface {
	CreateTransaction(ctx context.Context, payload entities.TransactionPayload) (*entities.TransactionRecord, error)
	ListTransactions(ctx context.Context) ([]*entities.TransactionRecord, error)
}
