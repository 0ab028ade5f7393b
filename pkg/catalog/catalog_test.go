package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/Oriono/nautilus-trader/pkg/model"
	"github.com/Oriono/nautilus-trader/pkg/types"
)

const allVariantsYAML = `
instruments:
  - type: CRYPTO_FUTURE
    id: BTCUSDT_240329.BINANCE
    underlying: BTC
    quote_currency: USDT
    settlement_currency: USDT
    activation: 2021-11-01T00:00:00Z
    expiration: 2024-03-29T08:00:00Z
    price_precision: 2
    size_precision: 6
    price_increment: "0.01"
    size_increment: "0.000001"
    min_quantity: "0.000001"
    max_quantity: "9000"
  - type: CRYPTO_PERPETUAL
    id: XBTUSD.BITMEX
    base_currency: BTC
    quote_currency: USD
    settlement_currency: BTC
    is_inverse: true
    price_precision: 1
    size_precision: 0
    price_increment: "0.5"
    size_increment: "1"
    min_notional: "1.00"
  - type: CURRENCY_PAIR
    id: EUR/USD.SIM
    base_currency: EUR
    quote_currency: USD
    price_precision: 5
    size_precision: 0
    price_increment: "0.00001"
    size_increment: "1"
    lot_size: "1000"
  - type: EQUITY
    id: AAPL.XNAS
    isin: US0378331005
    currency: USD
    price_precision: 2
    price_increment: "0.01"
    lot_size: "100"
  - type: FUTURES_CONTRACT
    id: ESZ4.GLBX
    asset_class: INDEX
    underlying: ES
    activation: 2021-09-17T00:00:00Z
    expiration: 2024-12-20T14:30:00Z
    currency: USD
    price_precision: 2
    price_increment: "0.25"
    multiplier: "50"
  - type: OPTIONS_CONTRACT
    id: AAPL240119C00150000.XNAS
    asset_class: EQUITY
    underlying: AAPL
    option_kind: CALL
    activation: 2023-10-20T00:00:00Z
    expiration: 2024-01-19T21:00:00Z
    strike_price: "150.00"
    currency: USD
    price_precision: 2
    price_increment: "0.01"
    multiplier: "100"
`

func TestParse_AllVariants(t *testing.T) {
	snap, err := Parse([]byte(allVariantsYAML))
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}

	if len(snap.Instruments) != 6 {
		t.Fatalf("built %d instruments; want 6", len(snap.Instruments))
	}
	if snap.LoadID.Version() != 7 {
		t.Errorf("LoadID version = %d; want 7", snap.LoadID.Version())
	}
	if snap.LoadedAt.IsZero() {
		t.Error("LoadedAt is zero")
	}

	wantClasses := []model.InstrumentClass{
		model.InstrumentClassFuture,
		model.InstrumentClassSwap,
		model.InstrumentClassSpot,
		model.InstrumentClassSpot,
		model.InstrumentClassFuture,
		model.InstrumentClassOption,
	}
	for n, i := range snap.Instruments {
		if i.InstrumentClass() != wantClasses[n] {
			t.Errorf("instrument %d class = %s; want %s", n, i.InstrumentClass(), wantClasses[n])
		}
		if i.TsInit() != snap.LoadedAt {
			t.Errorf("instrument %d TsInit() = %d; want the load time", n, i.TsInit())
		}
		if i.TsEvent() != snap.LoadedAt {
			t.Errorf("instrument %d TsEvent() = %d; want the load time when unset", n, i.TsEvent())
		}
	}

	perp, ok := snap.Instruments[1].(*model.CryptoPerpetual)
	if !ok {
		t.Fatal("instrument 1 is not a *model.CryptoPerpetual")
	}
	if !perp.IsInverse() {
		t.Error("perpetual IsInverse() = false; file says true")
	}
	if min, ok := perp.MinNotional(); !ok || min.String() != "1.00 USD" {
		t.Errorf("perpetual MinNotional() = %s, %t; want 1.00 USD, true", min, ok)
	}

	oc, ok := snap.Instruments[5].(*model.OptionsContract)
	if !ok {
		t.Fatal("instrument 5 is not a *model.OptionsContract")
	}
	if got := oc.StrikePrice().String(); got != "150.00" {
		t.Errorf("strike = %s; want 150.00", got)
	}
	if lot, ok := oc.LotSize(); !ok || lot.String() != "1" {
		t.Errorf("options lot = %s, %t; want default 1, true", lot, ok)
	}
}

func TestParse_RegistersCurrencies(t *testing.T) {
	const src = `
currencies:
  - code: MILK
    precision: 4
    kind: CRYPTO
instruments:
  - type: CRYPTO_PERPETUAL
    id: MILKUSDT-PERP.TEST
    base_currency: MILK
    quote_currency: USDT
    settlement_currency: USDT
    price_precision: 4
    size_precision: 0
    price_increment: "0.0001"
    size_increment: "1"
`
	snap, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}

	milk, err := types.CurrencyFromCode("MILK")
	if err != nil {
		t.Fatalf("MILK not registered: %v", err)
	}
	if milk.Precision() != 4 || !milk.IsCrypto() {
		t.Errorf("MILK = precision %d kind %s; want 4/CRYPTO", milk.Precision(), milk.Kind())
	}

	base, ok := snap.Instruments[0].BaseCurrency()
	if !ok || base != milk {
		t.Errorf("BaseCurrency() = %s, %t; want MILK, true", base, ok)
	}
}

func TestParse_CollectsAllDefects(t *testing.T) {
	const src = `
instruments:
  - type: CURRENCY_PAIR
    id: EUR/USD.SIM
    base_currency: EUR
    quote_currency: USD
    price_precision: 5
    size_precision: 0
    price_increment: "0.00001"
    size_increment: "1"
  - type: BOND_LADDER
    id: XS123.OTC
  - type: CURRENCY_PAIR
    id: GBP/USD.SIM
    base_currency: GBP
    quote_currency: USD
    price_precision: 5
    size_precision: 0
    price_increment: "0.001"
    size_increment: "1"
`
	snap, err := Parse([]byte(src))
	if snap != nil {
		t.Fatal("snapshot returned despite defective records")
	}
	if !errors.Is(err, ErrUnknownVariantType) {
		t.Errorf("error = %v; want to wrap %v", err, ErrUnknownVariantType)
	}
	if !errors.Is(err, model.ErrIncrementPrecision) {
		t.Errorf("error = %v; want to wrap %v", err, model.ErrIncrementPrecision)
	}
	msg := err.Error()
	if !strings.Contains(msg, "instrument 1 (XS123.OTC)") || !strings.Contains(msg, "instrument 2 (GBP/USD.SIM)") {
		t.Errorf("error does not name both defective records: %s", msg)
	}
}

func TestParse_DuplicateID(t *testing.T) {
	const src = `
instruments:
  - type: CURRENCY_PAIR
    id: EUR/USD.SIM
    base_currency: EUR
    quote_currency: USD
    price_precision: 5
    size_precision: 0
    price_increment: "0.00001"
    size_increment: "1"
  - type: CURRENCY_PAIR
    id: EUR/USD.SIM
    base_currency: EUR
    quote_currency: USD
    price_precision: 4
    size_precision: 0
    price_increment: "0.0001"
    size_increment: "1"
`
	snap, err := Parse([]byte(src))
	if snap != nil {
		t.Fatal("snapshot returned despite a duplicated id")
	}
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("error = %v; want %v", err, ErrDuplicateID)
	}
	if !strings.Contains(err.Error(), "instrument 1 (EUR/USD.SIM)") {
		t.Errorf("error does not name the duplicating record: %v", err)
	}
}

func TestParse_UnknownKey(t *testing.T) {
	const src = `
instruments:
  - type: EQUITY
    id: SAP.XETR
    currency: USD
    price_precision: 2
    price_increment: "0.01"
    lot_sise: "100"
`
	_, err := Parse([]byte(src))
	if err == nil {
		t.Fatal("misspelled key accepted")
	}
	if !strings.Contains(err.Error(), "lot_sise") {
		t.Errorf("error does not name the unknown key: %v", err)
	}
}

func TestParse_ExplicitZeroRejected(t *testing.T) {
	const zeroLot = `
instruments:
  - type: EQUITY
    id: AAPL.XNAS
    currency: USD
    price_precision: 2
    price_increment: "0.01"
    lot_size: "0"
`
	if _, err := Parse([]byte(zeroLot)); !errors.Is(err, model.ErrNonPositiveLotSize) {
		t.Errorf("zero lot error = %v; want %v", err, model.ErrNonPositiveLotSize)
	}

	const zeroMultiplier = `
instruments:
  - type: FUTURES_CONTRACT
    id: ESZ4.GLBX
    asset_class: INDEX
    underlying: ES
    currency: USD
    price_precision: 2
    price_increment: "0.25"
    multiplier: "0"
`
	if _, err := Parse([]byte(zeroMultiplier)); !errors.Is(err, model.ErrNonPositiveMultiplier) {
		t.Errorf("zero multiplier error = %v; want %v", err, model.ErrNonPositiveMultiplier)
	}
}

func TestParse_UnknownCurrency(t *testing.T) {
	const src = `
instruments:
  - type: EQUITY
    id: SAP.XETR
    currency: ZZZQ
    price_precision: 2
    price_increment: "0.01"
`
	_, err := Parse([]byte(src))
	if !errors.Is(err, types.ErrUnknownCurrency) {
		t.Errorf("error = %v; want %v", err, types.ErrUnknownCurrency)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse([]byte("instruments: []")); !errors.Is(err, ErrNoInstruments) {
		t.Errorf("empty list error = %v; want %v", err, ErrNoInstruments)
	}
	if _, err := Parse([]byte("not: [valid")); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestParse_EventTimeFromFile(t *testing.T) {
	const src = `
instruments:
  - type: EQUITY
    id: MSFT.XNAS
    currency: USD
    price_precision: 2
    price_increment: "0.01"
    ts_event: 2024-03-15T12:30:45Z
`
	snap, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	i := snap.Instruments[0]
	if got := i.TsEvent().String(); got != "2024-03-15T12:30:45Z" {
		t.Errorf("TsEvent() = %s; want 2024-03-15T12:30:45Z", got)
	}
	if i.TsEvent() == i.TsInit() {
		t.Error("TsEvent should keep the upstream stamp, not the load time")
	}
}

func TestLoad_File(t *testing.T) {
	snap, err := Load("testdata/instruments.yaml")
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if len(snap.Instruments) != 3 {
		t.Fatalf("built %d instruments; want 3", len(snap.Instruments))
	}

	if _, err := Load("testdata/absent.yaml"); err == nil {
		t.Error("Load of a missing file did not fail")
	}
}
