package model

import (
	"fmt"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

// CryptoPerpetual is an undated swap on a base/quote pair, e.g.
// ETHUSDT-PERP.BINANCE. Inverse contracts accrue P&L in the base
// currency, so IsInverse is caller-supplied. The multiplier is always
// the unit quantity.
type CryptoPerpetual struct {
	instrumentBase
}

type CryptoPerpetualParams struct {
	ID                 InstrumentID
	RawSymbol          Symbol
	BaseCurrency       types.Currency
	QuoteCurrency      types.Currency
	SettlementCurrency types.Currency
	IsInverse          bool
	PricePrecision     uint8
	SizePrecision      uint8
	PriceIncrement     types.Price
	SizeIncrement      types.Quantity
	LotSize            *types.Quantity
	Limits             Limits
	TsEvent            types.UnixNanos
	TsInit             types.UnixNanos
}

func NewCryptoPerpetual(p CryptoPerpetualParams) (*CryptoPerpetual, error) {
	if p.BaseCurrency.IsZero() {
		return nil, fmt.Errorf("crypto perpetual %s base currency: %w", p.ID, ErrAbsentCurrency)
	}
	base := p.BaseCurrency
	perp := &CryptoPerpetual{
		instrumentBase: instrumentBase{
			id:                 p.ID,
			rawSymbol:          p.RawSymbol,
			assetClass:         AssetClassCryptocurrency,
			instrumentClass:    InstrumentClassSwap,
			quoteCurrency:      p.QuoteCurrency,
			baseCurrency:       &base,
			settlementCurrency: p.SettlementCurrency,
			isInverse:          p.IsInverse,
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
	if err := perp.validate(); err != nil {
		return nil, fmt.Errorf("crypto perpetual %s: %w", p.ID, err)
	}
	return perp, nil
}
