package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code.
type Currency string

// PLN is the only currency the pricing engine operates in. Catalog prices,
// draft overrides and offer totals are all zloty amounts.
const PLN Currency = "PLN"

// Money is an immutable amount in a single currency. Operations return
// new values and never mutate the receiver.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoneyPLN wraps a decimal amount as zloty.
func NewMoneyPLN(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: PLN}
}

// NewMoneyPLNFromFloat wraps a float amount as zloty.
func NewMoneyPLNFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount), currency: PLN}
}

// ZeroPLN is the zero zloty amount.
func ZeroPLN() Money {
	return Money{amount: decimal.Zero, currency: PLN}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }
func (m Money) IsNegative() bool        { return m.amount.IsNegative() }

// Add sums two amounts. Mixing currencies is an error.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Multiply scales the amount, typically by a quantity.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Round rounds half-up to the given number of decimal places.
func (m Money) Round(places int32) Money {
	return Money{amount: m.amount.Round(places), currency: m.currency}
}

// ApplyDiscount reduces the amount by a percentage.
func (m Money) ApplyDiscount(percent decimal.Decimal) Money {
	factor := decimal.NewFromInt(100).Sub(percent).Div(decimal.NewFromInt(100))
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Equals reports whether both amount and currency match.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// StringFixed renders the amount with a fixed number of decimals.
func (m Money) StringFixed(places int32) string {
	return m.amount.StringFixed(places)
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + string(m.currency)
}
