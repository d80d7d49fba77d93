package testing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/infrastructure/repositories/memory"
)

// Store fixture ids
const (
	BreadID  entities.ItemID     = "1"
	MilkID   entities.ItemID     = "2"
	EggsID   entities.ItemID     = "3"
	ThandiID entities.CustomerID = "7"
)

// GroceryStore is a seeded memory backend
type GroceryStore struct {
	Inventory    *memory.InventoryRepository
	Customers    *memory.CustomerRepository
	Transactions *memory.TransactionRepository
	SavedCarts   *memory.SavedCartRepository
}

// BuildGroceryTestData builds a small corner-shop catalog:
//
//	1 Bread  5.99  stock 50  VAT 15%
//	2 Milk  12.50  stock 50  zero-rated
//	3 Eggs   2.00  stock  3  VAT 15%
//
// and one customer, 7 Thandi. A nil clock uses time.Now.
func BuildGroceryTestData(now func() time.Time) (*GroceryStore, error) {
	inventory := memory.NewInventoryRepository(3)
	items := []*entities.CatalogItem{
		{ID: BreadID, Name: "Bread", SKU: "BRD", Price: decimal.RequireFromString("5.99"), Stock: 50, TaxRate: decimal.RequireFromString("0.15"), Unit: "EA", Category: "Bakery"},
		{ID: MilkID, Name: "Milk", SKU: "MLK", Price: decimal.RequireFromString("12.50"), Stock: 50, TaxRate: decimal.Zero, Unit: "EA", Category: "Dairy"},
		{ID: EggsID, Name: "Eggs", SKU: "EGG", Price: decimal.RequireFromString("2.00"), Stock: 3, TaxRate: decimal.RequireFromString("0.15"), Unit: "EA", Category: "Dairy"},
	}
	if err := inventory.LoadItems(items); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	customers := memory.NewCustomerRepository()
	if _, err := customers.CreateCustomer(context.Background(), entities.Customer{
		ID:    ThandiID,
		Name:  "Thandi",
		Email: "t@example.com",
	}); err != nil {
		return nil, fmt.Errorf("seed customers: %w", err)
	}

	return &GroceryStore{
		Inventory:    inventory,
		Customers:    customers,
		Transactions: memory.NewTransactionRepository(inventory, customers, "cashier", now),
		SavedCarts:   memory.NewSavedCartRepository(inventory, customers, now),
	}, nil
}
