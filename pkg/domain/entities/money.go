package entities

import (
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits carried by external monetary fields
const MoneyPlaces = 2

// Money is a monetary amount that has crossed the rounding boundary.
// It serializes as a JSON number with exactly two fractional digits.
type Money decimal.Decimal

// RoundMoney rounds half away from zero to cents. For the non-negative amounts a
// cart produces this is the same as round(value*100)/100.
func RoundMoney(value decimal.Decimal) decimal.Decimal {
	return value.Round(MoneyPlaces)
}

// NewMoney rounds value to cents
func NewMoney(value decimal.Decimal) Money {
	return Money(RoundMoney(value))
}

// MoneyFromString parses a decimal string and rounds it to cents
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(d), nil
}

// Decimal returns the underlying decimal value
func (m Money) Decimal() decimal.Decimal {
	return decimal.Decimal(m)
}

// Equal reports whether two amounts are numerically equal
func (m Money) Equal(other Money) bool {
	return m.Decimal().Equal(other.Decimal())
}

func (m Money) String() string {
	return m.Decimal().StringFixed(MoneyPlaces)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts numbers and quoted decimal strings, the latter being how
// the backend renders its DecimalFields.
func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*m = NewMoney(d)
	return nil
}
