package model

import (
	"fmt"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

// CurrencyPair is a spot instrument exchanging one currency for
// another, e.g. EUR/USD.SIM or BTCUSDT.BINANCE. The asset class is
// caller-supplied (FX for fiat pairs, cryptocurrency for coin pairs)
// and defaults to FX. Settlement is in the quote currency and the
// multiplier is always the unit quantity.
type CurrencyPair struct {
	instrumentBase
}

type CurrencyPairParams struct {
	ID             InstrumentID
	RawSymbol      Symbol
	AssetClass     AssetClass
	BaseCurrency   types.Currency
	QuoteCurrency  types.Currency
	PricePrecision uint8
	SizePrecision  uint8
	PriceIncrement types.Price
	SizeIncrement  types.Quantity
	LotSize        *types.Quantity
	Limits         Limits
	TsEvent        types.UnixNanos
	TsInit         types.UnixNanos
}

func NewCurrencyPair(p CurrencyPairParams) (*CurrencyPair, error) {
	if p.BaseCurrency.IsZero() {
		return nil, fmt.Errorf("currency pair %s base currency: %w", p.ID, ErrAbsentCurrency)
	}
	base := p.BaseCurrency
	pair := &CurrencyPair{
		instrumentBase: instrumentBase{
			id:                 p.ID,
			rawSymbol:          p.RawSymbol,
			assetClass:         p.AssetClass,
			instrumentClass:    InstrumentClassSpot,
			quoteCurrency:      p.QuoteCurrency,
			baseCurrency:       &base,
			settlementCurrency: p.QuoteCurrency,
			pricePrecision:     p.PricePrecision,
			sizePrecision:      p.SizePrecision,
			priceIncrement:     p.PriceIncrement,
			sizeIncrement:      p.SizeIncrement,
			multiplier:         unitQuantity(),
			lotSize:            copyPtr(p.LotSize),
			limits:             p.Limits.clone(),
			tsEvent:            p.TsEvent,
			tsInit:             p.TsInit,
		},
	}
	if err := pair.validate(); err != nil {
		return nil, fmt.Errorf("currency pair %s: %w", p.ID, err)
	}
	return pair, nil
}
