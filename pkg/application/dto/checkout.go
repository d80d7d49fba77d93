package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/pos/pkg/domain/cart"
	"github.com/vsinha/pos/pkg/domain/entities"
)

// CheckoutSummary is the display view of a cart. Amounts are rounded.
type CheckoutSummary struct {
	SessionID       string               `json:"sessionId"`
	Lines           []SummaryLine        `json:"lines"`
	ItemCount       entities.Quantity    `json:"itemCount"`
	DiscountPercent decimal.Decimal      `json:"discountPercent"`
	Customer        *entities.CustomerID `json:"customer"`
	Totals          cart.RoundedTotals   `json:"totals"`
}

// SummaryLine is one cart line as shown to the cashier
type SummaryLine struct {
	ItemID         entities.ItemID   `json:"item"`
	Name           string            `json:"name"`
	SKU            string            `json:"sku"`
	Quantity       entities.Quantity `json:"quantity"`
	Stock          entities.Quantity `json:"stock"`
	UnitPrice      entities.Money    `json:"unitPrice"`
	LineTotal      entities.Money    `json:"lineTotal"`
	AtStockCeiling bool              `json:"atStockCeiling"`
}

// CompletedTransaction pairs what was sent with what the store acknowledged
type CompletedTransaction struct {
	Payload entities.TransactionPayload `json:"payload"`
	Record  entities.TransactionRecord  `json:"record"`
}

// ResumedCart reports how a parked cart was restored against the live catalog
type ResumedCart struct {
	SavedCartID entities.RecordID `json:"savedCartId"`
	Restored    []entities.ItemID `json:"restored"`
	Clamped     []entities.ItemID `json:"clamped,omitempty"`
	Skipped     []entities.ItemID `json:"skipped,omitempty"`
}
