package model

import (
	"testing"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

func TestFuturesContract_Contract(t *testing.T) {
	var i Instrument = stubFuturesContract(t)

	if i.AssetClass() != AssetClassIndex {
		t.Errorf("AssetClass() = %s; want caller-supplied INDEX", i.AssetClass())
	}
	if i.InstrumentClass() != InstrumentClassFuture {
		t.Errorf("InstrumentClass() = %s; want FUTURE", i.InstrumentClass())
	}
	if got := i.Multiplier(); got.String() != "50" {
		t.Errorf("Multiplier() = %s; want caller-supplied 50", got)
	}
	if got := i.SizePrecision(); got != 0 {
		t.Errorf("SizePrecision() = %d; want 0", got)
	}
	if got := i.SizeIncrement(); got.String() != "1" {
		t.Errorf("SizeIncrement() = %s; want 1", got)
	}
	lot, ok := i.LotSize()
	if !ok || lot.String() != "1" {
		t.Errorf("LotSize() = %s, %t; want default 1, true", lot, ok)
	}
	if _, ok := i.BaseCurrency(); ok {
		t.Error("BaseCurrency() present; futures have none")
	}
	if i.SettlementCurrency() != i.QuoteCurrency() {
		t.Error("futures settle in their quote currency")
	}
}

func TestFuturesContract_Underlying(t *testing.T) {
	fc := stubFuturesContract(t)
	if got := fc.Underlying().String(); got != "ES" {
		t.Errorf("Underlying() = %s; want ES", got)
	}
	if fc.Activation() != stubActivation || fc.Expiration() != stubExpiration {
		t.Error("activation/expiration do not round-trip")
	}
}

func TestFuturesContract_TickValue(t *testing.T) {
	// ES ticks in 0.25 index points worth 50 USD per point.
	fc := stubFuturesContract(t)

	tick, ok := fc.PriceIncrement().Float64()
	if !ok {
		t.Fatal("price increment does not fit a float64")
	}
	mult, ok := fc.Multiplier().Float64()
	if !ok {
		t.Fatal("multiplier does not fit a float64")
	}
	if got := tick * mult; got != 12.5 {
		t.Errorf("tick value = %v; want 12.5", got)
	}
}

func TestFuturesContract_ExplicitLot(t *testing.T) {
	fc, err := NewFuturesContract(FuturesContractParams{
		ID:             MustInstrumentID("6EZ4.GLBX"),
		RawSymbol:      MustSymbol("6EZ4"),
		AssetClass:     AssetClassFX,
		Underlying:     MustSymbol("6E"),
		Activation:     stubActivation,
		Expiration:     stubExpiration,
		Currency:       types.MustCurrencyFromCode("USD"),
		PricePrecision: 5,
		PriceIncrement: types.MustPriceFromString("0.00005", 5),
		Multiplier:     types.MustQuantityFromString("125000", 0),
		LotSize:        types.MustQuantityFromString("5", 0),
		TsEvent:        stubTsEvent,
		TsInit:         stubTsInit,
	})
	if err != nil {
		t.Fatalf("NewFuturesContract unexpected error: %v", err)
	}

	lot, ok := fc.LotSize()
	if !ok || lot.String() != "5" {
		t.Errorf("LotSize() = %s, %t; want 5, true", lot, ok)
	}
}
