package model

import (
	"errors"
	"fmt"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

var ErrNonPositiveStrike = errors.New("strike price must be positive")

// OptionsContract is a listed option on an arbitrary underlying, e.g.
// AAPL240119C00150000.XNAS. Contracts trade in whole units, so size
// precision is always 0 with a unit size increment, and a lot size is
// always present. A single currency quotes and settles the contract.
type OptionsContract struct {
	instrumentBase
	underlying Symbol
	kind       OptionKind
	strike     types.Price
	activation types.UnixNanos
	expiration types.UnixNanos
}

type OptionsContractParams struct {
	ID             InstrumentID
	RawSymbol      Symbol
	AssetClass     AssetClass
	Underlying     Symbol
	Kind           OptionKind
	Activation     types.UnixNanos
	Expiration     types.UnixNanos
	StrikePrice    types.Price
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

func NewOptionsContract(p OptionsContractParams) (*OptionsContract, error) {
	if p.Underlying.IsZero() {
		return nil, fmt.Errorf("options contract %s underlying: %w", p.ID, ErrInvalidIdentifier)
	}
	if !p.StrikePrice.IsPositive() {
		return nil, fmt.Errorf("options contract %s strike %s: %w", p.ID, p.StrikePrice, ErrNonPositiveStrike)
	}
	if err := checkTimeRange(p.Activation, p.Expiration); err != nil {
		return nil, fmt.Errorf("options contract %s: %w", p.ID, err)
	}
	multiplier := p.Multiplier
	if multiplier.IsZero() {
		multiplier = unitQuantity()
	}
	lot := p.LotSize
	if lot.IsZero() {
		lot = unitQuantity()
	}
	oc := &OptionsContract{
		instrumentBase: instrumentBase{
			id:                 p.ID,
			rawSymbol:          p.RawSymbol,
			assetClass:         p.AssetClass,
			instrumentClass:    InstrumentClassOption,
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
		kind:       p.Kind,
		strike:     p.StrikePrice,
		activation: p.Activation,
		expiration: p.Expiration,
	}
	if err := oc.validate(); err != nil {
		return nil, fmt.Errorf("options contract %s: %w", p.ID, err)
	}
	return oc, nil
}

func (o *OptionsContract) Underlying() Symbol          { return o.underlying }
func (o *OptionsContract) Kind() OptionKind            { return o.kind }
func (o *OptionsContract) StrikePrice() types.Price    { return o.strike }
func (o *OptionsContract) Activation() types.UnixNanos { return o.activation }
func (o *OptionsContract) Expiration() types.UnixNanos { return o.expiration }
