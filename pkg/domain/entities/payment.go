package entities

import "strings"

// PaymentMethod is an upper-case tender token such as CASH or MPESA
type PaymentMethod string

const (
	PaymentMPesa   PaymentMethod = "MPESA"
	PaymentEcoCash PaymentMethod = "ECOCASH"
	PaymentCash    PaymentMethod = "CASH"
	PaymentCredit  PaymentMethod = "CREDIT"
	PaymentEFT     PaymentMethod = "EFT"
)

// NormalizePaymentMethod trims and upper-cases a tender token.
// Unknown tokens are passed through; the backend owns the accepted set.
func NormalizePaymentMethod(method string) PaymentMethod {
	return PaymentMethod(strings.ToUpper(strings.TrimSpace(method)))
}

// IsKnown reports whether the method is one of the tenders offered at the register
func (p PaymentMethod) IsKnown() bool {
	switch p {
	case PaymentMPesa, PaymentEcoCash, PaymentCash, PaymentCredit, PaymentEFT:
		return true
	default:
		return false
	}
}

// TransactionStatus represents the lifecycle state recorded with a sale
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusPending   TransactionStatus = "PENDING"
	StatusRefunded  TransactionStatus = "REFUNDED"
)

// NormalizeTransactionStatus upper-cases status, defaulting to COMPLETED when blank
func NormalizeTransactionStatus(status string) TransactionStatus {
	s := strings.ToUpper(strings.TrimSpace(status))
	if s == "" {
		return StatusCompleted
	}
	return TransactionStatus(s)
}
