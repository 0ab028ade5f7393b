package types

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// MaxPrecision is the largest number of decimal digits a value type may declare.
const MaxPrecision uint8 = 9

var (
	ErrPrecisionOutOfRange = errors.New("precision exceeds the supported maximum")
	ErrLossOfPrecision     = errors.New("value has more decimal digits than the declared precision")
	ErrNegativeQuantity    = errors.New("quantity cannot be negative")
	ErrCurrencyMismatch    = errors.New("currencies do not match")
	ErrUnknownCurrency     = errors.New("currency code is not registered")
	ErrInvalidCurrencyCode = errors.New("currency code is not a valid string")
)

// rescaleChecked pins d to exactly precision decimal digits. Digits beyond the
// declared precision reject rather than round.
func rescaleChecked(d decimal.Decimal, precision uint8) (decimal.Decimal, error) {
	if precision > MaxPrecision {
		return decimal.Decimal{}, fmt.Errorf("precision %d: %w", precision, ErrPrecisionOutOfRange)
	}
	r := d.Rescale(int(precision))
	if r.Cmp(d) != 0 {
		return decimal.Decimal{}, fmt.Errorf("value %s at precision %d: %w", d, precision, ErrLossOfPrecision)
	}
	return r, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
