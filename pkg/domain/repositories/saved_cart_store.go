package repositories

import (
	"context"

	"github.com/vsinha/pos/pkg/domain/entities"
)

// SavedCartStore parks carts for later resumption
type SavedCartStore interface {
	SaveCart(ctx context.Context, payload entities.SavedCartPayload) (*entities.SavedCartRecord, error)
	ListSavedCarts(ctx context.Context) ([]*entities.SavedCartRecord, error)
	GetSavedCart(ctx context.Context, id entities.RecordID) (*entities.SavedCartRecord, error)
	DeleteSavedCart(ctx context.Context, id entities.RecordID) error
}
