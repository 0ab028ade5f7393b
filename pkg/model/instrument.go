package model

import (
	"go.uber.org/zap"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

// Instrument is the capability contract shared by every tradeable
// variant. The set of implementations is closed: only types in this
// package satisfy the unexported marker method, so a type switch over
// *CryptoFuture, *CryptoPerpetual, *CurrencyPair, *Equity,
// *FuturesContract and *OptionsContract is exhaustive. Recovering a
// concrete variant is a comma-ok type assertion, a mismatch yields
// ok=false, never a panic.
//
// Instruments are immutable once constructed. A refreshed definition
// from upstream is a new record carrying the same ID, not an in-place
// update.
type Instrument interface {
	ID() InstrumentID
	RawSymbol() Symbol
	AssetClass() AssetClass
	InstrumentClass() InstrumentClass
	QuoteCurrency() types.Currency
	// BaseCurrency reports ok=false for instruments not priced as a
	// base/quote pair.
	BaseCurrency() (types.Currency, bool)
	SettlementCurrency() types.Currency
	IsInverse() bool
	PricePrecision() uint8
	SizePrecision() uint8
	PriceIncrement() types.Price
	SizeIncrement() types.Quantity
	Multiplier() types.Quantity
	LotSize() (types.Quantity, bool)
	MinQuantity() (types.Quantity, bool)
	MaxQuantity() (types.Quantity, bool)
	MinPrice() (types.Price, bool)
	MaxPrice() (types.Price, bool)
	TsEvent() types.UnixNanos
	TsInit() types.UnixNanos

	isInstrument()
}

// Equal reports entity identity, two records are the same instrument
// when their IDs match, no other field participates. A record replaced
// with refreshed increments or bounds still equals its predecessor.
func Equal(a, b Instrument) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID() == b.ID()
}

func LogFields(i Instrument) []zap.Field {
	fields := []zap.Field{
		zap.String("id", i.ID().String()),
		zap.String("raw_symbol", i.RawSymbol().String()),
		zap.String("asset_class", i.AssetClass().String()),
		zap.String("instrument_class", i.InstrumentClass().String()),
		zap.String("quote_currency", i.QuoteCurrency().String()),
		zap.String("settlement_currency", i.SettlementCurrency().String()),
		zap.Bool("is_inverse", i.IsInverse()),
		zap.Uint8("price_precision", i.PricePrecision()),
		zap.Uint8("size_precision", i.SizePrecision()),
		zap.String("price_increment", i.PriceIncrement().String()),
		zap.String("size_increment", i.SizeIncrement().String()),
		zap.String("multiplier", i.Multiplier().String()),
	}
	if base, ok := i.BaseCurrency(); ok {
		fields = append(fields, zap.String("base_currency", base.String()))
	}
	if lot, ok := i.LotSize(); ok {
		fields = append(fields, zap.String("lot_size", lot.String()))
	}
	return fields
}
