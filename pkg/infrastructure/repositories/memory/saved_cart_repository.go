package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/domain/repositories"
)

// SavedCartRepository parks carts in memory. Stock is not reserved.
type SavedCartRepository struct {
	mu        sync.RWMutex
	carts     []entities.SavedCartRecord
	byID      map[entities.RecordID]int
	inventory *InventoryRepository
	customers *CustomerRepository
	seq       *sequence
}

// NewSavedCartRepository creates a saved-cart store that prices parked carts
// from the given inventory
func NewSavedCartRepository(inventory *InventoryRepository, customers *CustomerRepository, now func() time.Time) *SavedCartRepository {
	return &SavedCartRepository{
		byID:      make(map[entities.RecordID]int),
		inventory: inventory,
		customers: customers,
		seq:       newSequence("CART", now),
	}
}

// Verify interface compliance
var _ repositories.SavedCartStore = (*SavedCartRepository)(nil)

// SaveCart stores a parked cart. Its subtotal and total are the sum of live
// catalog price times quantity; tax and discount are recomputed on resume.
func (r *SavedCartRepository) SaveCart(ctx context.Context, payload entities.SavedCartPayload) (*entities.SavedCartRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("saved cart must contain at least one item")
	}

	total := decimal.Zero
	items := make([]entities.SavedCartRecordItem, 0, len(payload.Items))
	for _, line := range payload.Items {
		stored, ok := r.inventory.lookup(line.Item)
		if !ok {
			return nil, fmt.Errorf("item %s: %w", line.Item, repositories.ErrNotFound)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("item %s: quantity must be positive, got %d", line.Item, line.Quantity)
		}
		total = total.Add(stored.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, entities.SavedCartRecordItem{
			Item:     line.Item,
			ItemName: stored.Name,
			Quantity: line.Quantity,
		})
	}

	id, number, at := r.seq.issue()
	record := entities.SavedCartRecord{
		ID:         entities.RecordID(strconv.FormatInt(id, 10)),
		CartNumber: number,
		SavedDate:  at,
		Customer:   payload.Customer,
		Subtotal:   entities.NewMoney(total),
		Total:      entities.NewMoney(total),
		Items:      items,
	}
	if r.customers != nil {
		record.CustomerName = r.customers.name(payload.Customer)
	}

	r.mu.Lock()
	r.byID[record.ID] = len(r.carts)
	r.carts = append(r.carts, record)
	r.mu.Unlock()

	out := record
	return &out, nil
}

// ListSavedCarts returns all parked carts, newest first
func (r *SavedCartRepository) ListSavedCarts(ctx context.Context) ([]*entities.SavedCartRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*entities.SavedCartRecord, 0, len(r.carts))
	for i := len(r.carts) - 1; i >= 0; i-- {
		record := r.carts[i]
		records = append(records, &record)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SavedDate.After(records[j].SavedDate)
	})
	return records, nil
}

// GetSavedCart returns the parked cart with the given ID
func (r *SavedCartRepository) GetSavedCart(ctx context.Context, id entities.RecordID) (*entities.SavedCartRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("saved cart %s: %w", id, repositories.ErrNotFound)
	}
	record := r.carts[index]
	return &record, nil
}

// DeleteSavedCart removes a parked cart
func (r *SavedCartRepository) DeleteSavedCart(ctx context.Context, id entities.RecordID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index, exists := r.byID[id]
	if !exists {
		return fmt.Errorf("saved cart %s: %w", id, repositories.ErrNotFound)
	}

	r.carts = append(r.carts[:index], r.carts[index+1:]...)
	delete(r.byID, id)
	for i := index; i < len(r.carts); i++ {
		r.byID[r.carts[i].ID] = i
	}
	return nil
}
