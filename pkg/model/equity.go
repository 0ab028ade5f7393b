package model

import (
	"fmt"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

// Equity is a cash share traded in whole units, e.g. AAPL.XNAS. Size
// precision is always 0 with a unit size increment. There is no base
// currency and settlement is in the quote currency. The ISIN is
// optional since not every listing carries one.
type Equity struct {
	instrumentBase
	isin string
}

type EquityParams struct {
	ID             InstrumentID
	RawSymbol      Symbol
	ISIN           string
	Currency       types.Currency
	PricePrecision uint8
	PriceIncrement types.Price
	// LotSize defaults to the unit quantity when left at its zero value.
	LotSize types.Quantity
	Limits  Limits
	TsEvent types.UnixNanos
	TsInit  types.UnixNanos
}

func NewEquity(p EquityParams) (*Equity, error) {
	if p.ISIN != "" && !validIdentifier(p.ISIN) {
		return nil, fmt.Errorf("equity %s isin %q: %w", p.ID, p.ISIN, ErrInvalidIdentifier)
	}
	lot := p.LotSize
	if lot.IsZero() {
		lot = unitQuantity()
	}
	eq := &Equity{
		instrumentBase: instrumentBase{
			id:                 p.ID,
			rawSymbol:          p.RawSymbol,
			assetClass:         AssetClassEquity,
			instrumentClass:    InstrumentClassSpot,
			quoteCurrency:      p.Currency,
			settlementCurrency: p.Currency,
			pricePrecision:     p.PricePrecision,
			sizePrecision:      0,
			priceIncrement:     p.PriceIncrement,
			sizeIncrement:      unitQuantity(),
			multiplier:         unitQuantity(),
			lotSize:            &lot,
			limits:             p.Limits.clone(),
			tsEvent:            p.TsEvent,
			tsInit:             p.TsInit,
		},
		isin: p.ISIN,
	}
	if err := eq.validate(); err != nil {
		return nil, fmt.Errorf("equity %s: %w", p.ID, err)
	}
	return eq, nil
}

func (e *Equity) ISIN() (string, bool) { return e.isin, e.isin != "" }
