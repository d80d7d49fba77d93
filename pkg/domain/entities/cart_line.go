package entities

import "github.com/shopspring/decimal"

// CartLine is one distinct catalog item's quantity entry within a cart.
// Price, tax rate, name and SKU are snapshots taken when the item was added;
// Stock is the latest stock figure the cart has been told about.
type CartLine struct {
	ItemID    ItemID
	Name      string
	SKU       string
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
	Stock     Quantity
	Quantity  Quantity
}

// NewCartLine snapshots item into a line holding quantity units
func NewCartLine(item CatalogItem, quantity Quantity) CartLine {
	return CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		SKU:       item.SKU,
		UnitPrice: item.Price,
		TaxRate:   item.TaxRate,
		Stock:     item.Stock,
		Quantity:  quantity,
	}
}

// Subtotal returns price × quantity, unrounded
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Tax returns price × quantity × the line's own tax rate, unrounded
func (l CartLine) Tax() decimal.Decimal {
	return l.Subtotal().Mul(l.TaxRate)
}

// AtStockCeiling reports whether the line already holds every known unit
func (l CartLine) AtStockCeiling() bool {
	return l.Quantity >= l.Stock
}
