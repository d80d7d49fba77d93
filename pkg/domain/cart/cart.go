// Package cart implements the checkout pricing and cart-consolidation engine.
//
// A Cart belongs to exactly one checkout session and is not safe for concurrent
// use. Every operation is synchronous and performs no I/O; totals are derived
// from the current lines on every read and rounded only when they leave the
// engine as a payload.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/pos/pkg/domain/entities"
)

var (
	minDiscount = decimal.Zero
	maxDiscount = decimal.NewFromInt(100)
)

// state is everything Clear resets. Keeping it in one value lets Clear replace it
// with a single assignment.
type state struct {
	lines    []entities.CartLine
	discount decimal.Decimal
	customer *entities.CustomerID
}

// Cart is an ordered set of lines, one per distinct item, plus a discount
// percentage and an optional customer.
type Cart struct {
	s state
}

// New creates an empty cart for a walk-in customer with no discount
func New() *Cart {
	return &Cart{}
}

// Snapshot is a consistent copy of a cart's state
type Snapshot struct {
	Lines           []entities.CartLine
	DiscountPercent decimal.Decimal
	Customer        *entities.CustomerID
}

// AddOrMerge adds quantity units of item. When a line for item.ID already exists
// its quantity is increased instead of creating a second line.
//
// The resulting quantity is clamped to item.Stock, and clamped reports whether
// that happened. Callers are expected to bound quantity already, but the stock
// figure they used may be older than item, so the engine enforces the ceiling
// on merge as well as on SetLineQuantity.
func (c *Cart) AddOrMerge(item entities.CatalogItem, quantity entities.Quantity) (clamped bool, err error) {
	if quantity < 1 {
		return false, newCartErrorf(StatusQuantityOutOfRange, "%s, got %d", ErrMsgQuantityOutOfRange, quantity)
	}
	if err := item.Validate(); err != nil {
		return false, newCartErrorf(StatusInvalidItem, "%s: %v", ErrMsgInvalidItem, err)
	}
	if !item.InStock() {
		return false, newCartErrorf(StatusOutOfStock, "%s: %s", ErrMsgOutOfStock, item.ID)
	}

	if idx := c.indexOf(item.ID); idx >= 0 {
		line := &c.s.lines[idx]
		line.Stock = item.Stock
		line.Quantity, clamped = clampQuantity(line.Quantity+quantity, item.Stock)
		return clamped, nil
	}

	line := entities.NewCartLine(item, quantity)
	line.Quantity, clamped = clampQuantity(quantity, item.Stock)
	c.s.lines = append(c.s.lines, line)
	return clamped, nil
}

// RemoveLine removes the line for itemID. Removing an absent line is a no-op.
func (c *Cart) RemoveLine(itemID entities.ItemID) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return
	}
	lines := make([]entities.CartLine, 0, len(c.s.lines)-1)
	lines = append(lines, c.s.lines[:idx]...)
	lines = append(lines, c.s.lines[idx+1:]...)
	c.s.lines = lines
}

// SetLineQuantity sets the quantity of an existing line, enforcing the latest
// known stock for that item. Zero removes the line; negative values are treated
// as zero. A currentStock of zero also removes the line. Absent lines are a no-op.
// clamped reports whether the stored quantity differs from the requested one.
func (c *Cart) SetLineQuantity(itemID entities.ItemID, quantity, currentStock entities.Quantity) (clamped bool) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return false
	}

	if quantity <= 0 {
		c.RemoveLine(itemID)
		return quantity < 0
	}
	if currentStock <= 0 {
		c.RemoveLine(itemID)
		return true
	}

	line := &c.s.lines[idx]
	line.Stock = currentStock
	line.Quantity, clamped = clampQuantity(quantity, currentStock)
	return clamped
}

// SetDiscountPercent stores value clamped to [0, 100]
func (c *Cart) SetDiscountPercent(value decimal.Decimal) {
	c.s.discount = decimal.Min(maxDiscount, decimal.Max(minDiscount, value))
}

// DiscountPercent returns the stored discount percentage
func (c *Cart) DiscountPercent() decimal.Decimal {
	return c.s.discount
}

// SetCustomer selects the customer; nil selects the walk-in customer
func (c *Cart) SetCustomer(customer *entities.CustomerID) {
	if customer == nil || *customer == "" {
		c.s.customer = nil
		return
	}
	id := *customer
	c.s.customer = &id
}

// Customer returns the selected customer, or nil for a walk-in
func (c *Cart) Customer() *entities.CustomerID {
	if c.s.customer == nil {
		return nil
	}
	id := *c.s.customer
	return &id
}

// Clear empties the cart, resets the discount and deselects the customer
func (c *Cart) Clear() {
	c.s = state{}
}

// Lines returns a copy of the lines in insertion order
func (c *Cart) Lines() []entities.CartLine {
	lines := make([]entities.CartLine, len(c.s.lines))
	copy(lines, c.s.lines)
	return lines
}

// Line returns the line for itemID
func (c *Cart) Line(itemID entities.ItemID) (entities.CartLine, bool) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return entities.CartLine{}, false
	}
	return c.s.lines[idx], true
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.s.lines)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.s.lines) == 0
}

// Snapshot returns lines, discount and customer as one consistent value
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		Lines:           c.Lines(),
		DiscountPercent: c.s.discount,
		Customer:        c.Customer(),
	}
}

func (c *Cart) indexOf(itemID entities.ItemID) int {
	for i := range c.s.lines {
		if c.s.lines[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// clampQuantity bounds quantity to [1, stock]; stock must be positive
func clampQuantity(quantity, stock entities.Quantity) (entities.Quantity, bool) {
	switch {
	case quantity > stock:
		return stock, true
	case quantity < 1:
		return 1, true
	default:
		return quantity, false
	}
}
