package cart

import "fmt"

// StatusCode classifies cart errors
type StatusCode int

const (
	StatusEmptyCart StatusCode = iota
	StatusQuantityOutOfRange
	StatusOutOfStock
	StatusInvalidItem
)

// Error message constants for the cart domain.
const (
	ErrMsgCartEmpty          = "Cart is empty"
	ErrMsgQuantityOutOfRange = "Quantity must be at least 1"
	ErrMsgOutOfStock         = "Item is out of stock"
	ErrMsgInvalidItem        = "Item is not valid for sale"
)

func (s StatusCode) String() string {
	switch s {
	case StatusEmptyCart:
		return "EMPTY_CART"
	case StatusQuantityOutOfRange:
		return "QUANTITY_OUT_OF_RANGE"
	case StatusOutOfStock:
		return "OUT_OF_STOCK"
	case StatusInvalidItem:
		return "INVALID_ITEM"
	default:
		return "UNKNOWN"
	}
}

// CartError is returned by cart operations that refuse their input.
// Two CartErrors match under errors.Is when their codes match.
type CartError struct {
	Code    StatusCode
	Message string
}

func (e *CartError) Error() string {
	return e.Message
}

func (e *CartError) Is(target error) bool {
	t, ok := target.(*CartError)
	return ok && t.Code == e.Code
}

var (
	ErrEmptyCart          = &CartError{Code: StatusEmptyCart, Message: ErrMsgCartEmpty}
	ErrQuantityOutOfRange = &CartError{Code: StatusQuantityOutOfRange, Message: ErrMsgQuantityOutOfRange}
	ErrOutOfStock         = &CartError{Code: StatusOutOfStock, Message: ErrMsgOutOfStock}
	ErrInvalidItem        = &CartError{Code: StatusInvalidItem, Message: ErrMsgInvalidItem}
)

func newCartErrorf(code StatusCode, format string, args ...interface{}) *CartError {
	return &CartError{Code: code, Message: fmt.Sprintf(format, args...)}
}
