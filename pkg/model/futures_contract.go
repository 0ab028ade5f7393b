package model

import (
	"fmt"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

// FuturesContract is a dated exchange-traded future on an arbitrary
// underlying, e.g. ESZ4.GLBX. Contracts trade in whole units, so size
// precision is always 0 with a unit size increment. The asset class
// and multiplier come from the caller. A single currency quotes and
// settles the contract.
type FuturesContract struct {
	instrumentBase
	underlying Symbol
	activation types.UnixNanos
	expiration types.UnixNanos
}

type FuturesContractParams struct {
	ID             InstrumentID
	RawSymbol      Symbol
	AssetClass     AssetClass
	Underlying     Symbol
	Activation     types.UnixNanos
	Expiration     types.UnixNanos
	Currency       types.Currency
	PricePrecision uint8
	PriceIncrement types.Price
	// Multiplier and LotSize default to the unit quantity when left at
	// their zero value.
	Multiplier types.Quantity
	LotSize    types.Quantity
	Limits     Limits
	TsEvent    types.UnixNanos
	TsInit     types.UnixNanos
}

func NewFuturesContract(p FuturesContractParams) (*FuturesContract, error) {
	if p.Underlying.IsZero() {
		return nil, fmt.Errorf("futures contract %s underlying: %w", p.ID, ErrInvalidIdentifier)
	}
	if err := checkTimeRange(p.Activation, p.Expiration); err != nil {
		return nil, fmt.Errorf("futures contract %s: %w", p.ID, err)
	}
	multiplier := p.Multiplier
	if multiplier.IsZero() {
		multiplier = unitQuantity()
	}
	lot := p.LotSize
	if lot.IsZero() {
		lot = unitQuantity()
	}
	fc := &FuturesContract{
		instrumentBase: instrumentBase{
			id:                 p.ID,
			rawSymbol:          p.RawSymbol,
			assetClass:         p.AssetClass,
			instrumentClass:    InstrumentClassFuture,
			quoteCurrency:      p.Currency,
			settlementCurrency: p.Currency,
			pricePrecision:     p.PricePrecision,
			sizePrecision:      0,
			priceIncrement:     p.PriceIncrement,
			sizeIncrement:      unitQuantity(),
			multiplier:         multiplier,
			lotSize:            &lot,
			limits:             p.Limits.clone(),
			tsEvent:            p.TsEvent,
			tsInit:             p.TsInit,
		},
		underlying: p.Underlying,
		activation: p.Activation,
		expiration: p.Expiration,
	}
	if err := fc.validate(); err != nil {
		return nil, fmt.Errorf("futures contract %s: %w", p.ID, err)
	}
	return fc, nil
}

func (f *FuturesContract) Underlying() Symbol          { return f.underlying }
func (f *FuturesContract) Activation() types.UnixNanos { return f.activation }
func (f *FuturesContract) Expiration() types.UnixNanos { return f.expiration }
