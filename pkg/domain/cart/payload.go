package cart

import (
	"github.com/vsinha/pos/pkg/domain/entities"
)

// BuildTransactionPayload produces the body for completing a sale with the
// cart's current customer. Monetary fields are rounded once, here; each item is
// priced at its line's current unit price. An empty cart yields ErrEmptyCart.
// A blank status defaults to COMPLETED.
func (c *Cart) BuildTransactionPayload(paymentMethod, status string) (entities.TransactionPayload, error) {
	if c.IsEmpty() {
		return entities.TransactionPayload{}, ErrEmptyCart
	}

	totals := c.ComputeTotals().Rounded()

	items := make([]entities.TransactionItem, 0, len(c.s.lines))
	for _, line := range c.s.lines {
		items = append(items, entities.TransactionItem{
			Item:        line.ItemID,
			Quantity:    line.Quantity,
			PriceAtSale: entities.NewMoney(line.UnitPrice),
		})
	}

	return entities.TransactionPayload{
		Customer:      c.Customer(),
		PaymentMethod: entities.NormalizePaymentMethod(paymentMethod),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      totals.DiscountAmount,
		Total:         totals.Total,
		Status:        entities.NormalizeTransactionStatus(status),
		Items:         items,
	}, nil
}

// BuildSavedCartPayload produces the body for parking the cart. It carries
// identities and quantities only. An empty cart yields ErrEmptyCart.
func (c *Cart) BuildSavedCartPayload() (entities.SavedCartPayload, error) {
	if c.IsEmpty() {
		return entities.SavedCartPayload{}, ErrEmptyCart
	}

	items := make([]entities.SavedCartItem, 0, len(c.s.lines))
	for _, line := range c.s.lines {
		items = append(items, entities.SavedCartItem{
			Item:     line.ItemID,
			Quantity: line.Quantity,
		})
	}

	return entities.SavedCartPayload{
		Customer: c.Customer(),
		Items:    items,
	}, nil
}
