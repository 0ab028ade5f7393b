package catalog

import (
	"fmt"
	"time"

	"github.com/Oriono/nautilus-trader/pkg/model"
	"github.com/Oriono/nautilus-trader/pkg/types"
	"github.com/Oriono/nautilus-trader/pkg/utility"
)

func identity(def InstrumentDef) (model.InstrumentID, model.Symbol, error) {
	id, err := model.ParseInstrumentID(def.ID)
	if err != nil {
		return model.InstrumentID{}, model.Symbol{}, err
	}
	raw := id.Symbol()
	if def.RawSymbol != "" {
		if raw, err = model.NewSymbol(def.RawSymbol); err != nil {
			return model.InstrumentID{}, model.Symbol{}, err
		}
	}
	return id, raw, nil
}

func currencyOf(code, field string) (types.Currency, error) {
	if code == "" {
		return types.Currency{}, fmt.Errorf("%s: %w", field, model.ErrAbsentCurrency)
	}
	c, err := types.CurrencyFromCode(code)
	if err != nil {
		return types.Currency{}, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}

func precisionOf(v int, field string) (uint8, error) {
	p, err := utility.IntToU8(v)
	if err != nil {
		return 0, fmt.Errorf("%s %d: %w", field, v, err)
	}
	return p, nil
}

func priceOf(s string, precision uint8, field string) (types.Price, error) {
	p, err := types.NewPriceFromString(s, precision)
	if err != nil {
		return types.Price{}, fmt.Errorf("%s: %w", field, err)
	}
	return p, nil
}

// Increments keep the precision their text carries, never padded to the
// declared precision. The variant factory then checks the two agree, so
// a "0.001" tick on a precision-5 instrument is a reportable defect.
func incrementPriceOf(s, field string) (types.Price, error) {
	p, err := types.ParsePrice(s)
	if err != nil {
		return types.Price{}, fmt.Errorf("%s: %w", field, err)
	}
	return p, nil
}

func incrementQuantityOf(s, field string) (types.Quantity, error) {
	q, err := types.ParseQuantity(s)
	if err != nil {
		return types.Quantity{}, fmt.Errorf("%s: %w", field, err)
	}
	return q, nil
}

func optPriceOf(s string, precision uint8, field string) (*types.Price, error) {
	if s == "" {
		return nil, nil
	}
	p, err := priceOf(s, precision, field)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func quantityOf(s string, precision uint8, field string) (types.Quantity, error) {
	q, err := types.NewQuantityFromString(s, precision)
	if err != nil {
		return types.Quantity{}, fmt.Errorf("%s: %w", field, err)
	}
	return q, nil
}

func optQuantityOf(s string, precision uint8, field string) (*types.Quantity, error) {
	if s == "" {
		return nil, nil
	}
	q, err := quantityOf(s, precision, field)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// defaultedQuantityOf leaves an omitted field at zero for the variant
// factory to fill with its unit default. An explicit zero is a defect,
// not a request for the default.
func defaultedQuantityOf(s string, precision uint8, field string, reject error) (types.Quantity, error) {
	if s == "" {
		return types.Quantity{}, nil
	}
	q, err := quantityOf(s, precision, field)
	if err != nil {
		return types.Quantity{}, err
	}
	if q.IsZero() {
		return types.Quantity{}, fmt.Errorf("%s %q: %w", field, s, reject)
	}
	return q, nil
}

func optMoneyOf(s string, currency types.Currency, field string) (*types.Money, error) {
	if s == "" {
		return nil, nil
	}
	m, err := types.NewMoneyFromString(s, currency)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &m, nil
}

func limitsOf(def InstrumentDef, pricePrecision, sizePrecision uint8, quote types.Currency) (model.Limits, error) {
	minQ, err := optQuantityOf(def.MinQuantity, sizePrecision, "min_quantity")
	if err != nil {
		return model.Limits{}, err
	}
	maxQ, err := optQuantityOf(def.MaxQuantity, sizePrecision, "max_quantity")
	if err != nil {
		return model.Limits{}, err
	}
	minP, err := optPriceOf(def.MinPrice, pricePrecision, "min_price")
	if err != nil {
		return model.Limits{}, err
	}
	maxP, err := optPriceOf(def.MaxPrice, pricePrecision, "max_price")
	if err != nil {
		return model.Limits{}, err
	}
	minN, err := optMoneyOf(def.MinNotional, quote, "min_notional")
	if err != nil {
		return model.Limits{}, err
	}
	maxN, err := optMoneyOf(def.MaxNotional, quote, "max_notional")
	if err != nil {
		return model.Limits{}, err
	}
	return model.Limits{
		MinQuantity: minQ,
		MaxQuantity: maxQ,
		MinPrice:    minP,
		MaxPrice:    maxP,
		MinNotional: minN,
		MaxNotional: maxN,
	}, nil
}

func nanosOf(t time.Time) types.UnixNanos { return types.UnixNanosFromTime(t) }

func eventTime(def InstrumentDef, loadedAt types.UnixNanos) types.UnixNanos {
	if def.TsEvent.IsZero() {
		return loadedAt
	}
	return nanosOf(def.TsEvent)
}

func buildCryptoFuture(def InstrumentDef, loadedAt types.UnixNanos) (model.Instrument, error) {
	id, raw, err := identity(def)
	if err != nil {
		return nil, err
	}
	underlying, err := currencyOf(def.Underlying, "underlying")
	if err != nil {
		return nil, err
	}
	quote, err := currencyOf(def.QuoteCurrency, "quote_currency")
	if err != nil {
		return nil, err
	}
	settlement, err := currencyOf(def.SettlementCurrency, "settlement_currency")
	if err != nil {
		return nil, err
	}
	priceP, err := precisionOf(def.PricePrecision, "price_precision")
	if err != nil {
		return nil, err
	}
	sizeP, err := precisionOf(def.SizePrecision, "size_precision")
	if err != nil {
		return nil, err
	}
	priceInc, err := incrementPriceOf(def.PriceIncrement, "price_increment")
	if err != nil {
		return nil, err
	}
	sizeInc, err := incrementQuantityOf(def.SizeIncrement, "size_increment")
	if err != nil {
		return nil, err
	}
	lot, err := optQuantityOf(def.LotSize, sizeP, "lot_size")
	if err != nil {
		return nil, err
	}
	limits, err := limitsOf(def, priceP, sizeP, quote)
	if err != nil {
		return nil, err
	}
	return model.NewCryptoFuture(model.CryptoFutureParams{
		ID:                 id,
		RawSymbol:          raw,
		Underlying:         underlying,
		QuoteCurrency:      quote,
		SettlementCurrency: settlement,
		Activation:         nanosOf(def.Activation),
		Expiration:         nanosOf(def.Expiration),
		PricePrecision:     priceP,
		SizePrecision:      sizeP,
		PriceIncrement:     priceInc,
		SizeIncrement:      sizeInc,
		LotSize:            lot,
		Limits:             limits,
		TsEvent:            eventTime(def, loadedAt),
		TsInit:             loadedAt,
	})
}

func buildCryptoPerpetual(def InstrumentDef, loadedAt types.UnixNanos) (model.Instrument, error) {
	id, raw, err := identity(def)
	if err != nil {
		return nil, err
	}
	base, err := currencyOf(def.BaseCurrency, "base_currency")
	if err != nil {
		return nil, err
	}
	quote, err := currencyOf(def.QuoteCurrency, "quote_currency")
	if err != nil {
		return nil, err
	}
	settlement, err := currencyOf(def.SettlementCurrency, "settlement_currency")
	if err != nil {
		return nil, err
	}
	priceP, err := precisionOf(def.PricePrecision, "price_precision")
	if err != nil {
		return nil, err
	}
	sizeP, err := precisionOf(def.SizePrecision, "size_precision")
	if err != nil {
		return nil, err
	}
	priceInc, err := incrementPriceOf(def.PriceIncrement, "price_increment")
	if err != nil {
		return nil, err
	}
	sizeInc, err := incrementQuantityOf(def.SizeIncrement, "size_increment")
	if err != nil {
		return nil, err
	}
	lot, err := optQuantityOf(def.LotSize, sizeP, "lot_size")
	if err != nil {
		return nil, err
	}
	limits, err := limitsOf(def, priceP, sizeP, quote)
	if err != nil {
		return nil, err
	}
	return model.NewCryptoPerpetual(model.CryptoPerpetualParams{
		ID:                 id,
		RawSymbol:          raw,
		BaseCurrency:       base,
		QuoteCurrency:      quote,
		SettlementCurrency: settlement,
		IsInverse:          def.IsInverse,
		PricePrecision:     priceP,
		SizePrecision:      sizeP,
		PriceIncrement:     priceInc,
		SizeIncrement:      sizeInc,
		LotSize:            lot,
		Limits:             limits,
		TsEvent:            eventTime(def, loadedAt),
		TsInit:             loadedAt,
	})
}

func buildCurrencyPair(def InstrumentDef, loadedAt types.UnixNanos) (model.Instrument, error) {
	id, raw, err := identity(def)
	if err != nil {
		return nil, err
	}
	assetClass := model.AssetClassFX
	if def.AssetClass != "" {
		if assetClass, err = model.ParseAssetClass(def.AssetClass); err != nil {
			return nil, err
		}
	}
	base, err := currencyOf(def.BaseCurrency, "base_currency")
	if err != nil {
		return nil, err
	}
	quote, err := currencyOf(def.QuoteCurrency, "quote_currency")
	if err != nil {
		return nil, err
	}
	priceP, err := precisionOf(def.PricePrecision, "price_precision")
	if err != nil {
		return nil, err
	}
	sizeP, err := precisionOf(def.SizePrecision, "size_precision")
	if err != nil {
		return nil, err
	}
	priceInc, err := incrementPriceOf(def.PriceIncrement, "price_increment")
	if err != nil {
		return nil, err
	}
	sizeInc, err := incrementQuantityOf(def.SizeIncrement, "size_increment")
	if err != nil {
		return nil, err
	}
	lot, err := optQuantityOf(def.LotSize, sizeP, "lot_size")
	if err != nil {
		return nil, err
	}
	limits, err := limitsOf(def, priceP, sizeP, quote)
	if err != nil {
		return nil, err
	}
	return model.NewCurrencyPair(model.CurrencyPairParams{
		ID:             id,
		RawSymbol:      raw,
		AssetClass:     assetClass,
		BaseCurrency:   base,
		QuoteCurrency:  quote,
		PricePrecision: priceP,
		SizePrecision:  sizeP,
		PriceIncrement: priceInc,
		SizeIncrement:  sizeInc,
		LotSize:        lot,
		Limits:         limits,
		TsEvent:        eventTime(def, loadedAt),
		TsInit:         loadedAt,
	})
}

func buildEquity(def InstrumentDef, loadedAt types.UnixNanos) (model.Instrument, error) {
	id, raw, err := identity(def)
	if err != nil {
		return nil, err
	}
	currency, err := currencyOf(def.Currency, "currency")
	if err != nil {
		return nil, err
	}
	priceP, err := precisionOf(def.PricePrecision, "price_precision")
	if err != nil {
		return nil, err
	}
	priceInc, err := incrementPriceOf(def.PriceIncrement, "price_increment")
	if err != nil {
		return nil, err
	}
	lot, err := defaultedQuantityOf(def.LotSize, 0, "lot_size", model.ErrNonPositiveLotSize)
	if err != nil {
		return nil, err
	}
	limits, err := limitsOf(def, priceP, 0, currency)
	if err != nil {
		return nil, err
	}
	return model.NewEquity(model.EquityParams{
		ID:             id,
		RawSymbol:      raw,
		ISIN:           def.ISIN,
		Currency:       currency,
		PricePrecision: priceP,
		PriceIncrement: priceInc,
		LotSize:        lot,
		Limits:         limits,
		TsEvent:        eventTime(def, loadedAt),
		TsInit:         loadedAt,
	})
}

func buildFuturesContract(def InstrumentDef, loadedAt types.UnixNanos) (model.Instrument, error) {
	id, raw, err := identity(def)
	if err != nil {
		return nil, err
	}
	assetClass, err := model.ParseAssetClass(def.AssetClass)
	if err != nil {
		return nil, err
	}
	underlying, err := model.NewSymbol(def.Underlying)
	if err != nil {
		return nil, fmt.Errorf("underlying: %w", err)
	}
	currency, err := currencyOf(def.Currency, "currency")
	if err != nil {
		return nil, err
	}
	priceP, err := precisionOf(def.PricePrecision, "price_precision")
	if err != nil {
		return nil, err
	}
	priceInc, err := incrementPriceOf(def.PriceIncrement, "price_increment")
	if err != nil {
		return nil, err
	}
	multiplier, err := defaultedQuantityOf(def.Multiplier, 0, "multiplier", model.ErrNonPositiveMultiplier)
	if err != nil {
		return nil, err
	}
	lot, err := defaultedQuantityOf(def.LotSize, 0, "lot_size", model.ErrNonPositiveLotSize)
	if err != nil {
		return nil, err
	}
	limits, err := limitsOf(def, priceP, 0, currency)
	if err != nil {
		return nil, err
	}
	return model.NewFuturesContract(model.FuturesContractParams{
		ID:             id,
		RawSymbol:      raw,
		AssetClass:     assetClass,
		Underlying:     underlying,
		Activation:     nanosOf(def.Activation),
		Expiration:     nanosOf(def.Expiration),
		Currency:       currency,
		PricePrecision: priceP,
		PriceIncrement: priceInc,
		Multiplier:     multiplier,
		LotSize:        lot,
		Limits:         limits,
		TsEvent:        eventTime(def, loadedAt),
		TsInit:         loadedAt,
	})
}

func buildOptionsContract(def InstrumentDef, loadedAt types.UnixNanos) (model.Instrument, error) {
	id, raw, err := identity(def)
	if err != nil {
		return nil, err
	}
	assetClass, err := model.ParseAssetClass(def.AssetClass)
	if err != nil {
		return nil, err
	}
	underlying, err := model.NewSymbol(def.Underlying)
	if err != nil {
		return nil, fmt.Errorf("underlying: %w", err)
	}
	kind, err := model.ParseOptionKind(def.OptionKind)
	if err != nil {
		return nil, err
	}
	currency, err := currencyOf(def.Currency, "currency")
	if err != nil {
		return nil, err
	}
	priceP, err := precisionOf(def.PricePrecision, "price_precision")
	if err != nil {
		return nil, err
	}
	strike, err := priceOf(def.StrikePrice, priceP, "strike_price")
	if err != nil {
		return nil, err
	}
	priceInc, err := incrementPriceOf(def.PriceIncrement, "price_increment")
	if err != nil {
		return nil, err
	}
	multiplier, err := defaultedQuantityOf(def.Multiplier, 0, "multiplier", model.ErrNonPositiveMultiplier)
	if err != nil {
		return nil, err
	}
	lot, err := defaultedQuantityOf(def.LotSize, 0, "lot_size", model.ErrNonPositiveLotSize)
	if err != nil {
		return nil, err
	}
	limits, err := limitsOf(def, priceP, 0, currency)
	if err != nil {
		return nil, err
	}
	return model.NewOptionsContract(model.OptionsContractParams{
		ID:             id,
		RawSymbol:      raw,
		AssetClass:     assetClass,
		Underlying:     underlying,
		Kind:           kind,
		Activation:     nanosOf(def.Activation),
		Expiration:     nanosOf(def.Expiration),
		StrikePrice:    strike,
		Currency:       currency,
		PricePrecision: priceP,
		PriceIncrement: priceInc,
		Multiplier:     multiplier,
		LotSize:        lot,
		Limits:         limits,
		TsEvent:        eventTime(def, loadedAt),
		TsInit:         loadedAt,
	})
}
