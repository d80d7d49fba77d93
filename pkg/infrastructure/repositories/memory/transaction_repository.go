package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/domain/repositories"
)

// TransactionRepository records sales in memory and takes the sold units out of
// the inventory repository in the same step.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []entities.TransactionRecord
	inventory    *InventoryRepository
	customers    *CustomerRepository
	accountName  string
	seq          *sequence
}

// NewTransactionRepository creates a transaction store bound to an inventory.
// customers may be nil, in which case customer references are not checked.
func NewTransactionRepository(inventory *InventoryRepository, customers *CustomerRepository, accountName string, now func() time.Time) *TransactionRepository {
	return &TransactionRepository{
		inventory:   inventory,
		customers:   customers,
		accountName: accountName,
		seq:         newSequence("TXN", now),
	}
}

// Verify interface compliance
var _ repositories.TransactionStore = (*TransactionRepository)(nil)

// CreateTransaction validates the payload, decrements stock and stores the record
func (r *TransactionRepository) CreateTransaction(ctx context.Context, payload entities.TransactionPayload) (*entities.TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("transaction must contain at least one item")
	}
	if payload.Customer != nil && r.customers != nil {
		if _, err := r.customers.GetCustomer(ctx, *payload.Customer); err != nil {
			return nil, err
		}
	}

	if err := r.inventory.Decrement(payload.Items); err != nil {
		return nil, err
	}

	id, number, at := r.seq.issue()
	record := entities.TransactionRecord{
		ID:                entities.RecordID(strconv.FormatInt(id, 10)),
		TransactionNumber: number,
		Date:              at,
		Customer:          payload.Customer,
		AccountName:       r.accountName,
		PaymentMethod:     payload.PaymentMethod,
		Subtotal:          payload.Subtotal,
		Tax:               payload.Tax,
		Discount:          payload.Discount,
		Total:             payload.Total,
		Status:            entities.NormalizeTransactionStatus(string(payload.Status)),
		Items:             make([]entities.TransactionRecordItem, 0, len(payload.Items)),
	}
	if r.customers != nil {
		record.CustomerName = r.customers.name(payload.Customer)
	}
	for _, item := range payload.Items {
		stored, _ := r.inventory.lookup(item.Item)
		record.Items = append(record.Items, entities.TransactionRecordItem{
			Item:        item.Item,
			ItemName:    stored.Name,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
		})
	}

	r.mu.Lock()
	r.transactions = append(r.transactions, record)
	r.mu.Unlock()

	out := record
	return &out, nil
}

// ListTransactions returns all recorded sales, newest first
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]*entities.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*entities.TransactionRecord, 0, len(r.transactions))
	for i := len(r.transactions) - 1; i >= 0; i-- {
		record := r.transactions[i]
		records = append(records, &record)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}
