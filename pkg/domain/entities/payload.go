package entities

import "time"

// PayloadKind tags the payloads a cart can produce
type PayloadKind int

const (
	TransactionPayloadKind PayloadKind = iota
	SavedCartPayloadKind
)

// String method for PayloadKind enum
func (k PayloadKind) String() string {
	switch k {
	case TransactionPayloadKind:
		return "Transaction"
	case SavedCartPayloadKind:
		return "SavedCart"
	default:
		return "Unknown"
	}
}

// Payload is an immutable body ready to be submitted to an external store
type Payload interface {
	Kind() PayloadKind
}

// TransactionPayload is the body of a "create transaction" request.
// Discount is the discount amount, not the percentage.
type TransactionPayload struct {
	Customer      *CustomerID       `json:"customer"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	Subtotal      Money             `json:"subtotal"`
	Tax           Money             `json:"tax"`
	Discount      Money             `json:"discount"`
	Total         Money             `json:"total"`
	Status        TransactionStatus `json:"status"`
	Items         []TransactionItem `json:"items"`
}

// TransactionItem is one sold line priced at the moment of sale
type TransactionItem struct {
	Item        ItemID   `json:"item"`
	Quantity    Quantity `json:"quantity"`
	PriceAtSale Money    `json:"price_at_sale"`
}

func (TransactionPayload) Kind() PayloadKind { return TransactionPayloadKind }

// SavedCartPayload is the body of a "save cart" request. It carries no prices;
// a saved cart is re-priced against the live catalog when resumed.
type SavedCartPayload struct {
	Customer *CustomerID     `json:"customer"`
	Items    []SavedCartItem `json:"items"`
}

// SavedCartItem is one parked line
type SavedCartItem struct {
	Item     ItemID   `json:"item"`
	Quantity Quantity `json:"quantity"`
}

func (SavedCartPayload) Kind() PayloadKind { return SavedCartPayloadKind }

// TransactionRecord is a transaction as acknowledged by the transaction store
type TransactionRecord struct {
	ID                RecordID                `json:"id"`
	TransactionNumber string                  `json:"transactionNumber"`
	Date              time.Time               `json:"date"`
	Customer          *CustomerID             `json:"customer"`
	CustomerName      string                  `json:"customerName,omitempty"`
	AccountName       string                  `json:"accountName,omitempty"`
	PaymentMethod     PaymentMethod           `json:"paymentMethod"`
	Subtotal          Money                   `json:"subtotal"`
	Tax               Money                   `json:"tax"`
	Discount          Money                   `json:"discount"`
	Total             Money                   `json:"total"`
	Status            TransactionStatus       `json:"status"`
	Items             []TransactionRecordItem `json:"items"`
}

// TransactionRecordItem is a stored sale line
type TransactionRecordItem struct {
	Item        ItemID   `json:"item"`
	ItemName    string   `json:"itemName,omitempty"`
	Quantity    Quantity `json:"quantity"`
	PriceAtSale Money    `json:"price_at_sale"`
}

// SavedCartRecord is a parked cart as acknowledged by the saved-cart store
type SavedCartRecord struct {
	ID           RecordID              `json:"id"`
	CartNumber   string                `json:"cartNumber"`
	SavedDate    time.Time             `json:"savedDate"`
	Customer     *CustomerID           `json:"customer"`
	CustomerName string                `json:"customerName,omitempty"`
	Subtotal     Money                 `json:"subtotal"`
	Tax          Money                 `json:"tax"`
	Discount     Money                 `json:"discount"`
	Total        Money                 `json:"total"`
	Notes        string                `json:"notes,omitempty"`
	Items        []SavedCartRecordItem `json:"items"`
}

// SavedCartRecordItem is a stored parked line
type SavedCartRecordItem struct {
	Item     ItemID   `json:"item"`
	ItemName string   `json:"itemName,omitempty"`
	Quantity Quantity `json:"quantity"`
}
