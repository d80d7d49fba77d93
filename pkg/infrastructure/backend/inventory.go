package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/domain/repositories"
)

// inventoryItem is the API's rendering of an inventory row
type inventoryItem struct {
	ID           entities.ItemID `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	Unit         string          `json:"unit"`
	CategoryName string          `json:"categoryName"`
}

// ListItems returns the catalog, fetching it on first use. Rows that fail
// validation are logged and left out so they can never reach a cart.
func (c *Client) ListItems(ctx context.Context) ([]*entities.CatalogItem, error) {
	c.mu.Lock()
	cached := c.catalog
	c.mu.Unlock()
	if cached != nil {
		return copyItems(cached), nil
	}

	var rows []inventoryItem
	if err := c.do(ctx, http.MethodGet, "/inventory/", nil, &rows); err != nil {
		return nil, err
	}

	items := make([]*entities.CatalogItem, 0, len(rows))
	for _, row := range rows {
		item, err := entities.NewCatalogItem(row.ID, row.Name, row.SKU, row.Price,
			entities.Quantity(row.Stock), row.TaxRate, row.Unit, row.CategoryName)
		if err != nil {
			c.logger.Warn("skipping invalid inventory item",
				zap.String("item_id", string(row.ID)),
				zap.Error(err))
			continue
		}
		items = append(items, item)
	}

	c.mu.Lock()
	c.catalog = items
	c.mu.Unlock()

	return copyItems(items), nil
}

// GetItem returns one catalog entry from the cached catalog
func (c *Client) GetItem(ctx context.Context, id entities.ItemID) (*entities.CatalogItem, error) {
	items, err := c.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, fmt.Errorf("item %s: %w", id, repositories.ErrNotFound)
}

// Refresh drops the cached catalog so the next read hits the API
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.catalog = nil
	c.mu.Unlock()
	return nil
}

func copyItems(items []*entities.CatalogItem) []*entities.CatalogItem {
	out := make([]*entities.CatalogItem, len(items))
	for i, item := range items {
		copied := *item
		out[i] = &copied
	}
	return out
}
