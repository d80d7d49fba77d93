package cart

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/pos/pkg/domain/entities"
)

var hundred = decimal.NewFromInt(100)

// Totals are the aggregate monetary figures of a cart. Values from ComputeTotals
// are exact; call Rounded at the display or payload boundary.
type Totals struct {
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
}

// ComputeTotals derives totals from the current lines and discount.
//
//	subtotal = Σ price × quantity
//	tax      = Σ price × quantity × line tax rate
//	discount = subtotal × percent / 100
//	total    = subtotal + tax − discount
//
// The discount is taken off the pre-tax subtotal only.
func (c *Cart) ComputeTotals() Totals {
	return computeTotals(c.s.lines, c.s.discount)
}

func computeTotals(lines []entities.CartLine, discountPercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
		tax = tax.Add(line.Tax())
	}

	discount := subtotal.Mul(discountPercent).Div(hundred)

	return Totals{
		Subtotal:       subtotal,
		Tax:            tax,
		DiscountAmount: discount,
		Total:          subtotal.Add(tax).Sub(discount),
	}
}

// Rounded returns each figure rounded to cents. Total is rounded from its exact
// value, not recomputed from the rounded parts.
func (t Totals) Rounded() RoundedTotals {
	return RoundedTotals{
		Subtotal:       entities.NewMoney(t.Subtotal),
		Tax:            entities.NewMoney(t.Tax),
		DiscountAmount: entities.NewMoney(t.DiscountAmount),
		Total:          entities.NewMoney(t.Total),
	}
}

// RoundedTotals are totals that have crossed the rounding boundary
type RoundedTotals struct {
	Subtotal       entities.Money `json:"subtotal"`
	Tax            entities.Money `json:"tax"`
	DiscountAmount entities.Money `json:"discount"`
	Total          entities.Money `json:"total"`
}
