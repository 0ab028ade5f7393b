package model

import (
	"testing"

	"github.com/Oriono/nautilus-trader/pkg/types"
)

const (
	stubTsEvent = types.UnixNanos(1_640_995_200_000_000_000)
	stubTsInit  = types.UnixNanos(1_640_995_260_000_000_000)

	stubActivation = types.UnixNanos(1_635_724_800_000_000_000)
	stubExpiration = types.UnixNanos(1_711_670_400_000_000_000)
)

func quantityPtr(q types.Quantity) *types.Quantity { return &q }
func pricePtr(p types.Price) *types.Price          { return &p }
func moneyPtr(m types.Money) *types.Money          { return &m }

func stubCryptoFuture(t *testing.T) *CryptoFuture {
	t.Helper()
	fut, err := NewCryptoFuture(CryptoFutureParams{
		ID:                 MustInstrumentID("BTCUSDT_240329.BINANCE"),
		RawSymbol:          MustSymbol("BTCUSDT_240329"),
		Underlying:         types.MustCurrencyFromCode("BTC"),
		QuoteCurrency:      types.MustCurrencyFromCode("USDT"),
		SettlementCurrency: types.MustCurrencyFromCode("USDT"),
		Activation:         stubActivation,
		Expiration:         stubExpiration,
		PricePrecision:     2,
		SizePrecision:      6,
		PriceIncrement:     types.MustPriceFromString("0.01", 2),
		SizeIncrement:      types.MustQuantityFromString("0.000001", 6),
		Limits: Limits{
			MinQuantity: quantityPtr(types.MustQuantityFromString("0.000001", 6)),
			MaxQuantity: quantityPtr(types.MustQuantityFromString("9000", 0)),
		},
		TsEvent: stubTsEvent,
		TsInit:  stubTsInit,
	})
	if err != nil {
		t.Fatalf("stub crypto future: %v", err)
	}
	return fut
}

func stubCryptoPerpetual(t *testing.T) *CryptoPerpetual {
	t.Helper()
	perp, err := NewCryptoPerpetual(CryptoPerpetualParams{
		ID:                 MustInstrumentID("ETHUSDT-PERP.BINANCE"),
		RawSymbol:          MustSymbol("ETHUSDT-PERP"),
		BaseCurrency:       types.MustCurrencyFromCode("ETH"),
		QuoteCurrency:      types.MustCurrencyFromCode("USDT"),
		SettlementCurrency: types.MustCurrencyFromCode("USDT"),
		PricePrecision:     2,
		SizePrecision:      3,
		PriceIncrement:     types.MustPriceFromString("0.01", 2),
		SizeIncrement:      types.MustQuantityFromString("0.001", 3),
		TsEvent:            stubTsEvent,
		TsInit:             stubTsInit,
	})
	if err != nil {
		t.Fatalf("stub crypto perpetual: %v", err)
	}
	return perp
}

func stubCurrencyPair(t *testing.T) *CurrencyPair {
	t.Helper()
	pair, err := NewCurrencyPair(CurrencyPairParams{
		ID:             MustInstrumentID("EUR/USD.SIM"),
		RawSymbol:      MustSymbol("EUR/USD"),
		BaseCurrency:   types.MustCurrencyFromCode("EUR"),
		QuoteCurrency:  types.MustCurrencyFromCode("USD"),
		PricePrecision: 5,
		SizePrecision:  0,
		PriceIncrement: types.MustPriceFromString("0.00001", 5),
		SizeIncrement:  types.MustQuantityFromString("1", 0),
		LotSize:        quantityPtr(types.MustQuantityFromString("1000", 0)),
		TsEvent:        stubTsEvent,
		TsInit:         stubTsInit,
	})
	if err != nil {
		t.Fatalf("stub currency pair: %v", err)
	}
	return pair
}

func stubEquity(t *testing.T) *Equity {
	t.Helper()
	eq, err := NewEquity(EquityParams{
		ID:             MustInstrumentID("AAPL.XNAS"),
		RawSymbol:      MustSymbol("AAPL"),
		ISIN:           "US0378331005",
		Currency:       types.MustCurrencyFromCode("USD"),
		PricePrecision: 2,
		PriceIncrement: types.MustPriceFromString("0.01", 2),
		LotSize:        types.MustQuantityFromString("100", 0),
		TsEvent:        stubTsEvent,
		TsInit:         stubTsInit,
	})
	if err != nil {
		t.Fatalf("stub equity: %v", err)
	}
	return eq
}

func stubFuturesContract(t *testing.T) *FuturesContract {
	t.Helper()
	fc, err := NewFuturesContract(FuturesContractParams{
		ID:             MustInstrumentID("ESZ4.GLBX"),
		RawSymbol:      MustSymbol("ESZ4"),
		AssetClass:     AssetClassIndex,
		Underlying:     MustSymbol("ES"),
		Activation:     stubActivation,
		Expiration:     stubExpiration,
		Currency:       types.MustCurrencyFromCode("USD"),
		PricePrecision: 2,
		PriceIncrement: types.MustPriceFromString("0.25", 2),
		Multiplier:     types.MustQuantityFromString("50", 0),
		TsEvent:        stubTsEvent,
		TsInit:         stubTsInit,
	})
	if err != nil {
		t.Fatalf("stub futures contract: %v", err)
	}
	return fc
}

func stubOptionsContract(t *testing.T) *OptionsContract {
	t.Helper()
	oc, err := NewOptionsContract(OptionsContractParams{
		ID:             MustInstrumentID("AAPL240119C00150000.XNAS"),
		RawSymbol:      MustSymbol("AAPL240119C00150000"),
		AssetClass:     AssetClassEquity,
		Underlying:     MustSymbol("AAPL"),
		Kind:           OptionKindCall,
		Activation:     stubActivation,
		Expiration:     stubExpiration,
		StrikePrice:    types.MustPriceFromString("150.00", 2),
		Currency:       types.MustCurrencyFromCode("USD"),
		PricePrecision: 2,
		PriceIncrement: types.MustPriceFromString("0.01", 2),
		Multiplier:     types.MustQuantityFromString("100", 0),
		TsEvent:        stubTsEvent,
		TsInit:         stubTsInit,
	})
	if err != nil {
		t.Fatalf("stub options contract: %v", err)
	}
	return oc
}
