package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/domain/repositories"
)

// InventoryRepository provides in-memory catalog storage with stock tracking
type InventoryRepository struct {
	mu       sync.RWMutex
	items    []entities.CatalogItem
	itemsMap map[entities.ItemID]int
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository(expectedItems int) *InventoryRepository {
	return &InventoryRepository{
		items:    make([]entities.CatalogItem, 0, expectedItems),
		itemsMap: make(map[entities.ItemID]int, expectedItems),
	}
}

// Verify interface compliance
var _ repositories.InventoryProvider = (*InventoryRepository)(nil)

// LoadItems loads validated items into the repository. Duplicate IDs are rejected.
func (r *InventoryRepository) LoadItems(items []*entities.CatalogItem) error {
	for _, item := range items {
		if err := r.AddItem(*item); err != nil {
			return err
		}
	}
	return nil
}

// AddItem adds a single item after validating it
func (r *InventoryRepository) AddItem(item entities.CatalogItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("item %s: %w", item.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.itemsMap[item.ID]; exists {
		return fmt.Errorf("%w item id: %s", repositories.ErrDuplicate, item.ID)
	}
	r.itemsMap[item.ID] = len(r.items)
	r.items = append(r.items, item)
	return nil
}

// ListItems returns copies of all items in load order
func (r *InventoryRepository) ListItems(ctx context.Context) ([]*entities.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*entities.CatalogItem, 0, len(r.items))
	for i := range r.items {
		item := r.items[i]
		items = append(items, &item)
	}
	return items, nil
}

// GetItem returns a copy of the item with the given ID
func (r *InventoryRepository) GetItem(ctx context.Context, id entities.ItemID) (*entities.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, exists := r.itemsMap[id]
	if !exists {
		return nil, fmt.Errorf("item %s: %w", id, repositories.ErrNotFound)
	}
	item := r.items[index]
	return &item, nil
}

// Refresh is a no-op: reads are always served from the live store
func (r *InventoryRepository) Refresh(ctx context.Context) error {
	return nil
}

// Decrement removes sold units from stock. Every line is checked before any is
// applied, so a failed sale leaves stock untouched.
func (r *InventoryRepository) Decrement(lines []entities.TransactionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[entities.ItemID]entities.Quantity, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return fmt.Errorf("item %s: quantity must be positive, got %d", line.Item, line.Quantity)
		}
		wanted[line.Item] += line.Quantity
	}

	for id, qty := range wanted {
		index, exists := r.itemsMap[id]
		if !exists {
			return fmt.Errorf("item %s: %w", id, repositories.ErrNotFound)
		}
		if r.items[index].Stock < qty {
			return fmt.Errorf("%w for %s", repositories.ErrInsufficientStock, r.items[index].Name)
		}
	}

	for id, qty := range wanted {
		r.items[r.itemsMap[id]].Stock -= qty
	}
	return nil
}

// lookup returns the stored item without copying it out through the interface
func (r *InventoryRepository) lookup(id entities.ItemID) (entities.CatalogItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, exists := r.itemsMap[id]
	if !exists {
		return entities.CatalogItem{}, false
	}
	return r.items[index], true
}
