// Package pos embeds a checkout register in another program. A Register is a
// checkout session wired to an in-memory catalog, customer list and sales
// ledger; programs that talk to the POS API should use the backend client
// with the checkout service directly.
package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/pos/pkg/application/dto"
	"github.com/vsinha/pos/pkg/application/services/checkout"
	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/infrastructure/events"
	"github.com/vsinha/pos/pkg/infrastructure/repositories/memory"
)

type (
	Item       = entities.CatalogItem
	Customer   = entities.Customer
	ItemID     = entities.ItemID
	CustomerID = entities.CustomerID
	Quantity   = entities.Quantity
	Summary    = dto.CheckoutSummary
	Receipt    = dto.CompletedTransaction
)

// RegisterConfig holds optional settings for an in-memory register
type RegisterConfig struct {
	// AccountName is recorded against every sale. Defaults to "cashier".
	AccountName string
	// Clock stamps transaction and cart numbers. Defaults to time.Now.
	Clock  func() time.Time
	Logger *zap.Logger
	// Events receives the session's cart events when set
	Events events.EventStore
}

// Register is a checkout session over in-memory stores
type Register struct {
	*checkout.Service

	inventory    *memory.InventoryRepository
	transactions *memory.TransactionRepository
}

// NewInMemoryRegister seeds the stores and loads the catalog into a new session
func NewInMemoryRegister(ctx context.Context, items []Item, customers []Customer, config RegisterConfig) (*Register, error) {
	if config.AccountName == "" {
		config.AccountName = "cashier"
	}

	inventory := memory.NewInventoryRepository(len(items))
	for _, item := range items {
		if err := inventory.AddItem(item); err != nil {
			return nil, fmt.Errorf("add item %s: %w", item.ID, err)
		}
	}

	customerRepo := memory.NewCustomerRepository()
	for _, c := range customers {
		if _, err := customerRepo.CreateCustomer(ctx, c); err != nil {
			return nil, fmt.Errorf("add customer %s: %w", c.Name, err)
		}
	}

	transactions := memory.NewTransactionRepository(inventory, customerRepo, config.AccountName, config.Clock)
	svc := checkout.NewService(checkout.Dependencies{
		Inventory:    inventory,
		Customers:    customerRepo,
		Transactions: transactions,
		SavedCarts:   memory.NewSavedCartRepository(inventory, customerRepo, config.Clock),
		Events:       config.Events,
		Logger:       config.Logger,
	})
	if _, err := svc.LoadCatalog(ctx); err != nil {
		return nil, err
	}

	return &Register{
		Service:      svc,
		inventory:    inventory,
		transactions: transactions,
	}, nil
}

// Stock returns the units of an item left on the shelf
func (r *Register) Stock(ctx context.Context, id ItemID) (Quantity, error) {
	item, err := r.inventory.GetItem(ctx, id)
	if err != nil {
		return 0, err
	}
	return item.Stock, nil
}

// Takings returns the sum of every recorded sale's total
func (r *Register) Takings(ctx context.Context) (entities.Money, error) {
	records, err := r.transactions.ListTransactions(ctx)
	if err != nil {
		return entities.Money{}, err
	}
	sum := decimal.Zero
	for _, rec := range records {
		sum = sum.Add(rec.Total.Decimal())
	}
	return entities.NewMoney(sum), nil
}
