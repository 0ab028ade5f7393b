package model

import (
	"fmt"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

// CryptoFuture is a dated future on a crypto underlying, e.g.
// BTCUSDT_240329.BINANCE. The contract multiplier is always the unit
// quantity and the contract is never inverse. Settlement may differ
// from the quote currency, both are explicit. There is no base
// currency, the underlying is carried as a currency of its own.
type CryptoFuture struct {
	instrumentBase
	underlying types.Currency
	activation types.UnixNanos
	expiration types.UnixNanos
}

type CryptoFutureParams struct {
	ID                 InstrumentID
	RawSymbol          Symbol
	Underlying         types.Currency
	QuoteCurrency      types.Currency
	SettlementCurrency types.Currency
	Activation         types.UnixNanos
	Expiration         types.UnixNanos
	PricePrecision     uint8
	SizePrecision      uint8
	PriceIncrement     types.Price
	SizeIncrement      types.Quantity
	LotSize            *types.Quantity
	Limits             Limits
	TsEvent            types.UnixNanos
	TsInit             types.UnixNanos
}

func NewCryptoFuture(p CryptoFutureParams) (*CryptoFuture, error) {
	if p.Underlying.IsZero() {
		return nil, fmt.Errorf("crypto future %s underlying: %w", p.ID, ErrAbsentCurrency)
	}
	if err := checkTimeRange(p.Activation, p.Expiration); err != nil {
		return nil, fmt.Errorf("crypto future %s: %w", p.ID, err)
	}
	f := &CryptoFuture{
		instrumentBase: instrumentBase{
			id:                 p.ID,
			rawSymbol:          p.RawSymbol,
			assetClass:         AssetClassCryptocurrency,
			instrumentClass:    InstrumentClassFuture,
			quoteCurrency:      p.QuoteCurrency,
			settlementCurrency: p.SettlementCurrency,
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
		underlying: p.Underlying,
		activation: p.Activation,
		expiration: p.Expiration,
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("crypto future %s: %w", p.ID, err)
	}
	return f, nil
}

func (f *CryptoFuture) Underlying() types.Currency  { return f.underlying }
func (f *CryptoFuture) Activation() types.UnixNanos { return f.activation }
func (f *CryptoFuture) Expiration() types.UnixNanos { return f.expiration }
