package events

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/pos/pkg/domain/entities"
)

const (
	CartLineAddedEvent       = "cart.line.added"
	CartLineRemovedEvent     = "cart.line.removed"
	CartLineQuantitySetEvent = "cart.line.quantity_set"
	CartDiscountSetEvent     = "cart.discount.set"
	CartCustomerSetEvent     = "cart.customer.set"
	CartClearedEvent         = "cart.cleared"

	TransactionCompletedEvent = "transaction.completed"
	CartSavedEvent            = "cart.saved"
	CartResumedEvent          = "cart.resumed"
)

type CartLineAdded struct {
	ItemID    entities.ItemID   `json:"item_id"`
	Requested entities.Quantity `json:"requested"`
	Quantity  entities.Quantity `json:"quantity"`
	Clamped   bool              `json:"clamped"`
}

type CartLineRemoved struct {
	ItemID entities.ItemID `json:"item_id"`
}

type CartLineQuantitySet struct {
	ItemID    entities.ItemID   `json:"item_id"`
	Requested entities.Quantity `json:"requested"`
	Quantity  entities.Quantity `json:"quantity"`
	Clamped   bool              `json:"clamped"`
	Removed   bool              `json:"removed"`
}

type CartDiscountSet struct {
	Requested decimal.Decimal `json:"requested"`
	Percent   decimal.Decimal `json:"percent"`
}

type CartCustomerSet struct {
	Customer *entities.CustomerID `json:"customer"`
}

type CartCleared struct {
	Reason string `json:"reason"`
}

type TransactionCompleted struct {
	Record  entities.TransactionRecord  `json:"record"`
	Payload entities.TransactionPayload `json:"payload"`
}

type CartSaved struct {
	Record entities.SavedCartRecord `json:"record"`
}

type CartResumed struct {
	SavedCartID entities.RecordID `json:"saved_cart_id"`
	Skipped     []entities.ItemID `json:"skipped,omitempty"`
	Clamped     []entities.ItemID `json:"clamped,omitempty"`
}
