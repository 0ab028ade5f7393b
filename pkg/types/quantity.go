package types

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Quantity is a fixed-precision, non-negative size value.
type Quantity struct {
	v         decimal.Decimal
	precision uint8
}

func NewQuantity(value decimal.Decimal, precision uint8) (Quantity, error) {
	if value.IsNeg() {
		return Quantity{}, fmt.Errorf("quantity %s: %w", value, ErrNegativeQuantity)
	}
	v, err := rescaleChecked(value, precision)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{v: v, precision: precision}, nil
}

func NewQuantityFromString(s string, precision uint8) (Quantity, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity %q: %w", s, err)
	}
	return NewQuantity(d, precision)
}

// ParseQuantity takes the declared precision from the scale the text
// carries, so "0.001" parses at precision 3 and "1" at 0.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity %q: %w", s, err)
	}
	return NewQuantity(d, uint8(d.Scale()))
}

// NewQuantityFromRaw builds a quantity from a fixed-point integer scaled by
// 10^precision, e.g. NewQuantityFromRaw(1000, 3) is 1.000.
func NewQuantityFromRaw(raw int64, precision uint8) (Quantity, error) {
	if raw < 0 {
		return Quantity{}, fmt.Errorf("raw %d: %w", raw, ErrNegativeQuantity)
	}
	if precision > MaxPrecision {
		return Quantity{}, fmt.Errorf("precision %d: %w", precision, ErrPrecisionOutOfRange)
	}
	d, err := decimal.New(raw, int(precision))
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{v: d, precision: precision}, nil
}

func MustQuantityFromString(s string, precision uint8) Quantity {
	return must(NewQuantityFromString(s, precision))
}

func MustQuantityFromRaw(raw int64, precision uint8) Quantity {
	return must(NewQuantityFromRaw(raw, precision))
}

func (q Quantity) Precision() uint8         { return q.precision }
func (q Quantity) Decimal() decimal.Decimal { return q.v }
func (q Quantity) String() string           { return q.v.String() }
func (q Quantity) Float64() (float64, bool) { return q.v.Float64() }
func (q Quantity) IsZero() bool             { return q.v.IsZero() }
func (q Quantity) IsPositive() bool         { return !q.v.IsZero() }

func (q Quantity) Eq(o Quantity) bool  { return q.v.Cmp(o.v) == 0 }
func (q Quantity) Gt(o Quantity) bool  { return q.v.Cmp(o.v) > 0 }
func (q Quantity) Lt(o Quantity) bool  { return q.v.Cmp(o.v) < 0 }
func (q Quantity) Gte(o Quantity) bool { return q.v.Cmp(o.v) >= 0 }
func (q Quantity) Lte(o Quantity) bool { return q.v.Cmp(o.v) <= 0 }

// Add and Sub keep the wider precision of the two operands. Sub panics if the
// result would go negative; callers must check bounds first.
func (q Quantity) Add(o Quantity) Quantity {
	return Quantity{v: must(q.v.Add(o.v)), precision: maxU8(q.precision, o.precision)}
}

func (q Quantity) Sub(o Quantity) Quantity {
	v := must(q.v.Sub(o.v))
	if v.IsNeg() {
		panic("quantity subtraction underflow")
	}
	return Quantity{v: v, precision: maxU8(q.precision, o.precision)}
}

func (q Quantity) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}
