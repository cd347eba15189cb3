package kernel

import (
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the number of decimal places amounts are kept at.
const moneyPlaces = 2

// Money is an immutable currency amount rounded to two decimal places. The zero value
// is a valid amount of 0.00.
//
// Example:
//
//	price := kernel.MoneyFromFloat(10)
//	line := price.Mul(2)            // 20.00
//	total := line.Add(kernel.MoneyFromFloat(5)) // 25.00
type Money struct {
	amount decimal.Decimal
}

// NewMoney rounds d to two decimal places.
func NewMoney(d decimal.Decimal) Money {
	return Money{amount: d.Round(moneyPlaces)}
}

func MoneyFromFloat(f float64) Money {
	return NewMoney(decimal.NewFromFloat(f))
}

// MoneyFromString parses a decimal amount such as "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d), nil
}

func ZeroMoney() Money {
	return Money{}
}

func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

func (m Money) Sub(other Money) Money {
	return NewMoney(m.amount.Sub(other.amount))
}

// Mul multiplies the amount by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// Div splits the amount into n equal parts rounded to cents. Dividing by zero or a
// negative count yields zero.
func (m Money) Div(n int) Money {
	if n <= 0 {
		return ZeroMoney()
	}
	return NewMoney(m.amount.Div(decimal.NewFromInt(int64(n))))
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equal compares the amounts at two decimal places.
func (m Money) Equal(other Money) bool {
	return m.amount.Round(moneyPlaces).Equal(other.amount.Round(moneyPlaces))
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(moneyPlaces)
}

// MarshalJSON renders the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	*m = NewMoney(d)
	return nil
}
