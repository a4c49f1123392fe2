package etfscope

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money couples a decimal amount with a currency, for display in reports.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M returns a Money value in the given currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency resolves the full currency definition, defaulting gracefully
// for unknown or empty codes.
func (m Money) currency() money.Currency {
	// the Money constructor never returns a nil currency
	return *money.New(0, m.cur).Currency()
}

// Currency returns the ISO currency code.
func (m Money) Currency() string { return m.cur }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// String formats the amount with its currency symbol and the currency's
// conventional number of decimals.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}
