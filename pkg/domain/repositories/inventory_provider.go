package repositories

import (
	"context"

	"github.com/vsinha/pos/pkg/domain/entities"
)

// InventoryProvider supplies the sellable catalog. Items it returns have already
// been validated.
type InventoryProvider interface {
	ListItems(ctx context.Context) ([]*entities.CatalogItem, error)
	GetItem(ctx context.Context, id entities.ItemID) (*entities.CatalogItem, error)

	// Refresh drops any cached view so the next read reflects committed sales.
	Refresh(ctx context.Context) error
}
