package types

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Money is an amount denominated in a currency, carried at the currency's
// precision. Arithmetic and comparison require matching currencies and panic
// otherwise; mixing currencies is a programming error, not an input error.
type Money struct {
	v        decimal.Decimal
	currency Currency
}

func NewMoney(value decimal.Decimal, currency Currency) (Money, error) {
	if currency.IsZero() {
		return Money{}, fmt.Errorf("money %s: %w", value, ErrUnknownCurrency)
	}
	v, err := rescaleChecked(value, currency.Precision())
	if err != nil {
		return Money{}, err
	}
	return Money{v: v, currency: currency}, nil
}

func NewMoneyFromString(s string, currency Currency) (Money, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Money{}, fmt.Errorf("money %q: %w", s, err)
	}
	return NewMoney(d, currency)
}

func MustMoneyFromString(s string, currency Currency) Money {
	return must(NewMoneyFromString(s, currency))
}

func (m Money) Currency() Currency       { return m.currency }
func (m Money) Decimal() decimal.Decimal { return m.v }
func (m Money) Precision() uint8         { return m.currency.Precision() }
func (m Money) IsZero() bool             { return m.v.IsZero() }
func (m Money) IsNeg() bool              { return m.v.IsNeg() }

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.v, m.currency.Code())
}

func (m Money) Eq(o Money) bool { return m.v.Cmp(m.sameCurrency(o).v) == 0 }
func (m Money) Gt(o Money) bool { return m.v.Cmp(m.sameCurrency(o).v) > 0 }
func (m Money) Lt(o Money) bool { return m.v.Cmp(m.sameCurrency(o).v) < 0 }

func (m Money) Add(o Money) Money {
	return Money{v: must(m.v.Add(m.sameCurrency(o).v)), currency: m.currency}
}

func (m Money) Sub(o Money) Money {
	return Money{v: must(m.v.Sub(m.sameCurrency(o).v)), currency: m.currency}
}

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m Money) sameCurrency(o Money) Money {
	if m.currency != o.currency {
		panic(fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, o.currency))
	}
	return o
}
