package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity represents an integer count of sellable units
type Quantity int64

// CatalogItem represents a sellable inventory item as supplied by the inventory provider.
// The cart never mutates it.
type CatalogItem struct {
	ID       ItemID
	Name     string
	SKU      string
	Price    decimal.Decimal
	Stock    Quantity
	TaxRate  decimal.Decimal // fraction, 0.15 for 15%
	Unit     string
	Category string
}

// NewCatalogItem creates a validated CatalogItem
func NewCatalogItem(id ItemID, name, sku string, price decimal.Decimal, stock Quantity, taxRate decimal.Decimal, unit, category string) (*CatalogItem, error) {
	item := &CatalogItem{
		ID:       id,
		Name:     name,
		SKU:      sku,
		Price:    price,
		Stock:    stock,
		TaxRate:  taxRate,
		Unit:     unit,
		Category: category,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks the numeric and identity invariants an item must satisfy before
// it may enter a cart.
func (i CatalogItem) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item id cannot be empty")
	}
	if i.Name == "" {
		return fmt.Errorf("item name cannot be empty")
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("price cannot be negative, got %s", i.Price.String())
	}
	if i.Stock < 0 {
		return fmt.Errorf("stock cannot be negative, got %d", i.Stock)
	}
	if i.TaxRate.IsNegative() || i.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax rate must be between 0 and 1, got %s", i.TaxRate.String())
	}
	return nil
}

// InStock reports whether at least one unit is available
func (i CatalogItem) InStock() bool {
	return i.Stock > 0
}

// Customer represents a registered customer. Only the ID travels in payloads.
type Customer struct {
	ID    CustomerID `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Phone string     `json:"phone"`
	Group string     `json:"group,omitempty"`
	Notes string     `json:"notes,omitempty"`
}

// Account represents a cashier, manager or admin login known to this device
type Account struct {
	ID       RecordID `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
}
