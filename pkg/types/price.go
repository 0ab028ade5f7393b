package types

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Price is a fixed-precision price value. The declared precision bounds the
// number of decimal digits the value may carry and never changes after
// construction. Prices may be negative (calendar spreads trade below zero).
type Price struct {
	v         decimal.Decimal
	precision uint8
}

func NewPrice(value decimal.Decimal, precision uint8) (Price, error) {
	v, err := rescaleChecked(value, precision)
	if err != nil {
		return Price{}, err
	}
	return Price{v: v, precision: precision}, nil
}

func NewPriceFromString(s string, precision uint8) (Price, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Price{}, fmt.Errorf("price %q: %w", s, err)
	}
	return NewPrice(d, precision)
}

// ParsePrice takes the declared precision from the scale the text
// carries, so "0.001" parses at precision 3 and "0.00100" at 5.
func ParsePrice(s string) (Price, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Price{}, fmt.Errorf("price %q: %w", s, err)
	}
	return NewPrice(d, uint8(d.Scale()))
}

// NewPriceFromRaw builds a price from a fixed-point integer scaled by
// 10^precision, e.g. NewPriceFromRaw(15000, 2) is 150.00.
func NewPriceFromRaw(raw int64, precision uint8) (Price, error) {
	if precision > MaxPrecision {
		return Price{}, fmt.Errorf("precision %d: %w", precision, ErrPrecisionOutOfRange)
	}
	d, err := decimal.New(raw, int(precision))
	if err != nil {
		return Price{}, err
	}
	return Price{v: d, precision: precision}, nil
}

func MustPriceFromString(s string, precision uint8) Price {
	return must(NewPriceFromString(s, precision))
}

func MustPriceFromRaw(raw int64, precision uint8) Price {
	return must(NewPriceFromRaw(raw, precision))
}

func (p Price) Precision() uint8         { return p.precision }
func (p Price) Decimal() decimal.Decimal { return p.v }
func (p Price) String() string           { return p.v.String() }
func (p Price) Float64() (float64, bool) { return p.v.Float64() }
func (p Price) IsZero() bool             { return p.v.IsZero() }
func (p Price) IsNeg() bool              { return p.v.IsNeg() }
func (p Price) IsPositive() bool         { return !p.v.IsNeg() && !p.v.IsZero() }

func (p Price) Eq(o Price) bool  { return p.v.Cmp(o.v) == 0 }
func (p Price) Gt(o Price) bool  { return p.v.Cmp(o.v) > 0 }
func (p Price) Lt(o Price) bool  { return p.v.Cmp(o.v) < 0 }
func (p Price) Gte(o Price) bool { return p.v.Cmp(o.v) >= 0 }
func (p Price) Lte(o Price) bool { return p.v.Cmp(o.v) <= 0 }

// Add and Sub keep the wider precision of the two operands. They panic on an
// error state, so callers must stay within representable bounds.
func (p Price) Add(o Price) Price {
	return Price{v: must(p.v.Add(o.v)), precision: maxU8(p.precision, o.precision)}
}

func (p Price) Sub(o Price) Price {
	return Price{v: must(p.v.Sub(o.v)), precision: maxU8(p.precision, o.precision)}
}

func (p Price) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
