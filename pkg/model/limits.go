package model

import (
	"errors"
	"fmt"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

var ErrInvalidLimit = errors.New("invalid limit")

// Limits carries the optional trading bounds of an instrument. A nil
// field means no limit in that direction.
type Limits struct {
	MinQuantity *types.Quantity
	MaxQuantity *types.Quantity
	MinPrice    *types.Price
	MaxPrice    *types.Price
	MinNotional *types.Money
	MaxNotional *types.Money
}

func (l Limits) validate() error {
	if l.MaxQuantity != nil && !l.MaxQuantity.IsPositive() {
		return fmt.Errorf("max quantity %s must be positive: %w", l.MaxQuantity, ErrInvalidLimit)
	}
	if l.MaxPrice != nil && !l.MaxPrice.IsPositive() {
		return fmt.Errorf("max price %s must be positive: %w", l.MaxPrice, ErrInvalidLimit)
	}
	if l.MinPrice != nil && l.MinPrice.IsNeg() {
		return fmt.Errorf("min price %s must not be negative: %w", l.MinPrice, ErrInvalidLimit)
	}
	if l.MaxNotional != nil && l.MaxNotional.IsNeg() {
		return fmt.Errorf("max notional %s must not be negative: %w", l.MaxNotional, ErrInvalidLimit)
	}
	if l.MinNotional != nil && l.MinNotional.IsNeg() {
		return fmt.Errorf("min notional %s must not be negative: %w", l.MinNotional, ErrInvalidLimit)
	}
	if l.MinQuantity != nil && l.MaxQuantity != nil && l.MinQuantity.Gt(*l.MaxQuantity) {
		return fmt.Errorf("min quantity %s exceeds max quantity %s: %w",
			l.MinQuantity, l.MaxQuantity, ErrInvalidLimit)
	}
	if l.MinPrice != nil && l.MaxPrice != nil && l.MinPrice.Gt(*l.MaxPrice) {
		return fmt.Errorf("min price %s exceeds max price %s: %w",
			l.MinPrice, l.MaxPrice, ErrInvalidLimit)
	}
	if l.MinNotional != nil && l.MaxNotional != nil {
		if l.MinNotional.Currency() != l.MaxNotional.Currency() {
			return fmt.Errorf("notional bounds %s and %s disagree on currency: %w",
				l.MinNotional, l.MaxNotional, ErrInvalidLimit)
		}
		if l.MinNotional.Gt(*l.MaxNotional) {
			return fmt.Errorf("min notional %s exceeds max notional %s: %w",
				l.MinNotional, l.MaxNotional, ErrInvalidLimit)
		}
	}
	return nil
}

// clone copies every set bound so a validated record never aliases
// caller memory.
func (l Limits) clone() Limits {
	return Limits{
		MinQuantity: copyPtr(l.MinQuantity),
		MaxQuantity: copyPtr(l.MaxQuantity),
		MinPrice:    copyPtr(l.MinPrice),
		MaxPrice:    copyPtr(l.MaxPrice),
		MinNotional: copyPtr(l.MinNotional),
		MaxNotional: copyPtr(l.MaxNotional),
	}
}
