package model

import (
	"errors"
	"fmt"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

var (
	ErrAbsentCurrency            = errors.New("currency must be set")
	ErrIncrementPrecision        = errors.New("increment scale disagrees with declared precision")
	ErrNonPositiveIncrement      = errors.New("increment must be positive")
	ErrNonPositiveMultiplier     = errors.New("multiplier must be positive")
	ErrNonPositiveLotSize        = errors.New("lot size must be positive")
	ErrActivationAfterExpiration = errors.New("activation is after expiration")
)

// instrumentBase holds the attribute set every variant shares and
// implements the whole capability contract once. Variants embed it and
// add only their own fields. Being unexported it also seals the
// Instrument family to this package.
type instrumentBase struct {
	id                 InstrumentID
	rawSymbol          Symbol
	assetClass         AssetClass
	instrumentClass    InstrumentClass
	quoteCurrency      types.Currency
	baseCurrency       *types.Currency
	settlementCurrency types.Currency
	isInverse          bool
	pricePrecision     uint8
	sizePrecision      uint8
	priceIncrement     types.Price
	sizeIncrement      types.Quantity
	multiplier         types.Quantity
	lotSize            *types.Quantity
	limits             Limits
	tsEvent            types.UnixNanos
	tsInit             types.UnixNanos
}

func (b *instrumentBase) validate() error {
	if b.id.IsZero() {
		return fmt.Errorf("id: %w", ErrInvalidInstrumentID)
	}
	if b.rawSymbol.IsZero() {
		return fmt.Errorf("raw symbol: %w", ErrInvalidIdentifier)
	}
	if b.quoteCurrency.IsZero() {
		return fmt.Errorf("quote currency: %w", ErrAbsentCurrency)
	}
	if b.settlementCurrency.IsZero() {
		return fmt.Errorf("settlement currency: %w", ErrAbsentCurrency)
	}
	if b.baseCurrency != nil && b.baseCurrency.IsZero() {
		return fmt.Errorf("base currency: %w", ErrAbsentCurrency)
	}
	if b.pricePrecision > types.MaxPrecision {
		return fmt.Errorf("price precision %d: %w", b.pricePrecision, types.ErrPrecisionOutOfRange)
	}
	if b.sizePrecision > types.MaxPrecision {
		return fmt.Errorf("size precision %d: %w", b.sizePrecision, types.ErrPrecisionOutOfRange)
	}
	if !b.priceIncrement.IsPositive() {
		return fmt.Errorf("price increment %s: %w", b.priceIncrement, ErrNonPositiveIncrement)
	}
	if b.priceIncrement.Precision() != b.pricePrecision {
		return fmt.Errorf("price increment %s has scale %d, declared precision is %d: %w",
			b.priceIncrement, b.priceIncrement.Precision(), b.pricePrecision, ErrIncrementPrecision)
	}
	if !b.sizeIncrement.IsPositive() {
		return fmt.Errorf("size increment %s: %w", b.sizeIncrement, ErrNonPositiveIncrement)
	}
	if b.sizeIncrement.Precision() != b.sizePrecision {
		return fmt.Errorf("size increment %s has scale %d, declared precision is %d: %w",
			b.sizeIncrement, b.sizeIncrement.Precision(), b.sizePrecision, ErrIncrementPrecision)
	}
	if !b.multiplier.IsPositive() {
		return fmt.Errorf("multiplier %s: %w", b.multiplier, ErrNonPositiveMultiplier)
	}
	if b.lotSize != nil && !b.lotSize.IsPositive() {
		return fmt.Errorf("lot size %s: %w", b.lotSize, ErrNonPositiveLotSize)
	}
	return b.limits.validate()
}

func (b *instrumentBase) ID() InstrumentID                 { return b.id }
func (b *instrumentBase) RawSymbol() Symbol                { return b.rawSymbol }
func (b *instrumentBase) AssetClass() AssetClass           { return b.assetClass }
func (b *instrumentBase) InstrumentClass() InstrumentClass { return b.instrumentClass }
func (b *instrumentBase) QuoteCurrency() types.Currency    { return b.quoteCurrency }
func (b *instrumentBase) BaseCurrency() (types.Currency, bool) {
	return deref(b.baseCurrency)
}
func (b *instrumentBase) SettlementCurrency() types.Currency { return b.settlementCurrency }
func (b *instrumentBase) IsInverse() bool                    { return b.isInverse }
func (b *instrumentBase) PricePrecision() uint8              { return b.pricePrecision }
func (b *instrumentBase) SizePrecision() uint8               { return b.sizePrecision }
func (b *instrumentBase) PriceIncrement() types.Price        { return b.priceIncrement }
func (b *instrumentBase) SizeIncrement() types.Quantity      { return b.sizeIncrement }
func (b *instrumentBase) Multiplier() types.Quantity         { return b.multiplier }
func (b *instrumentBase) LotSize() (types.Quantity, bool)    { return deref(b.lotSize) }
func (b *instrumentBase) MinQuantity() (types.Quantity, bool) {
	return deref(b.limits.MinQuantity)
}
func (b *instrumentBase) MaxQuantity() (types.Quantity, bool) {
	return deref(b.limits.MaxQuantity)
}
func (b *instrumentBase) MinPrice() (types.Price, bool) { return deref(b.limits.MinPrice) }
func (b *instrumentBase) MaxPrice() (types.Price, bool) { return deref(b.limits.MaxPrice) }

// MinNotional and MaxNotional are deliberately not part of the
// Instrument contract, they are reachable on concrete variants only.
func (b *instrumentBase) MinNotional() (types.Money, bool) { return deref(b.limits.MinNotional) }
func (b *instrumentBase) MaxNotional() (types.Money, bool) { return deref(b.limits.MaxNotional) }

func (b *instrumentBase) TsEvent() types.UnixNanos { return b.tsEvent }
func (b *instrumentBase) TsInit() types.UnixNanos  { return b.tsInit }

func (b *instrumentBase) isInstrument() {}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// copyPtr detaches an optional field from caller memory. A record must
// not change after validation, so factories never retain the pointers
// they were handed.
func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// unitQuantity is the implicit size step for contracts traded in whole
// units.
func unitQuantity() types.Quantity {
	return types.MustQuantityFromRaw(1, 0)
}

func checkTimeRange(activation, expiration types.UnixNanos) error {
	if !activation.IsZero() && !expiration.IsZero() && activation > expiration {
		return fmt.Errorf("activation %s, expiration %s: %w",
			activation, expiration, ErrActivationAfterExpiration)
	}
	return nil
}
