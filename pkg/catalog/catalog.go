package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Oriono/nautilus-trader/pkg/model"
	"github.com/Oriono/nautilus-trader/pkg/types"
	"github.com/Oriono/nautilus-trader/pkg/utility"
)

var (
	ErrNoInstruments      = errors.New("catalog defines no instruments")
	ErrUnknownVariantType = errors.New("unknown instrument type")
	ErrDuplicateID        = errors.New("duplicate instrument id")
)

// File is the on-disk shape of an instrument catalog. Currencies
// declared in the file are registered before any instrument is built,
// so a catalog can bring its own exotic denominations.
type File struct {
	Currencies  []CurrencyDef   `yaml:"currencies,omitempty"`
	Instruments []InstrumentDef `yaml:"instruments"`
}

type CurrencyDef struct {
	Code      string `yaml:"code"`
	Precision int    `yaml:"precision"`
	Kind      string `yaml:"kind"`
}

// InstrumentDef is one catalog record. Type selects the variant, the
// remaining fields are a union of what the variants accept. Decimal
// fields are strings so the file never loses scale to float parsing.
type InstrumentDef struct {
	Type               string    `yaml:"type"`
	ID                 string    `yaml:"id"`
	RawSymbol          string    `yaml:"raw_symbol,omitempty"`
	AssetClass         string    `yaml:"asset_class,omitempty"`
	Underlying         string    `yaml:"underlying,omitempty"`
	OptionKind         string    `yaml:"option_kind,omitempty"`
	StrikePrice        string    `yaml:"strike_price,omitempty"`
	BaseCurrency       string    `yaml:"base_currency,omitempty"`
	QuoteCurrency      string    `yaml:"quote_currency,omitempty"`
	SettlementCurrency string    `yaml:"settlement_currency,omitempty"`
	Currency           string    `yaml:"currency,omitempty"`
	ISIN               string    `yaml:"isin,omitempty"`
	IsInverse          bool      `yaml:"is_inverse,omitempty"`
	PricePrecision     int       `yaml:"price_precision"`
	SizePrecision      int       `yaml:"size_precision,omitempty"`
	PriceIncrement     string    `yaml:"price_increment"`
	SizeIncrement      string    `yaml:"size_increment,omitempty"`
	Multiplier         string    `yaml:"multiplier,omitempty"`
	LotSize            string    `yaml:"lot_size,omitempty"`
	Activation         time.Time `yaml:"activation,omitempty"`
	Expiration         time.Time `yaml:"expiration,omitempty"`
	MinQuantity        string    `yaml:"min_quantity,omitempty"`
	MaxQuantity        string    `yaml:"max_quantity,omitempty"`
	MinPrice           string    `yaml:"min_price,omitempty"`
	MaxPrice           string    `yaml:"max_price,omitempty"`
	MinNotional        string    `yaml:"min_notional,omitempty"`
	MaxNotional        string    `yaml:"max_notional,omitempty"`
	TsEvent            time.Time `yaml:"ts_event,omitempty"`
}

// Snapshot is one successful catalog load. LoadID is time-ordered so
// successive loads sort chronologically.
type Snapshot struct {
	LoadID      uuid.UUID
	LoadedAt    types.UnixNanos
	Instruments []model.Instrument
}

func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds every record or none. Individual record failures are
// collected and joined so one pass reports every defect in the file.
// Keys the schema does not know are defects, a misspelled optional
// field must not silently fall back to its default. A record reusing
// an earlier record's id is a defect too, one file defines each
// instrument once.
func Parse(data []byte) (*Snapshot, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot parse catalog yaml: %w", err)
	}
	if len(file.Instruments) == 0 {
		return nil, ErrNoInstruments
	}

	for _, def := range file.Currencies {
		if err := registerCurrency(def); err != nil {
			return nil, err
		}
	}

	loadedAt := types.UnixNanosNow()

	var (
		instruments = make([]model.Instrument, 0, len(file.Instruments))
		defects     []error
		seen        = make(map[model.InstrumentID]int, len(file.Instruments))
	)
	for n, def := range file.Instruments {
		i, err := buildInstrument(def, loadedAt)
		if err != nil {
			defects = append(defects, fmt.Errorf("instrument %d (%s): %w", n, def.ID, err))
			continue
		}
		if first, dup := seen[i.ID()]; dup {
			defects = append(defects, fmt.Errorf("instrument %d (%s): reuses the id of instrument %d: %w",
				n, def.ID, first, ErrDuplicateID))
			continue
		}
		seen[i.ID()] = n
		instruments = append(instruments, i)
	}
	if len(defects) > 0 {
		return nil, errors.Join(defects...)
	}

	return &Snapshot{
		LoadID:      uuid.Must(uuid.NewV7()),
		LoadedAt:    loadedAt,
		Instruments: instruments,
	}, nil
}

func registerCurrency(def CurrencyDef) error {
	precision, err := utility.IntToU8(def.Precision)
	if err != nil {
		return fmt.Errorf("currency %s precision %d: %w", def.Code, def.Precision, err)
	}
	kind := types.CurrencyTypeFiat
	if def.Kind != "" {
		switch def.Kind {
		case "FIAT", "fiat":
			kind = types.CurrencyTypeFiat
		case "CRYPTO", "crypto":
			kind = types.CurrencyTypeCrypto
		default:
			return fmt.Errorf("currency %s kind %q: %w", def.Code, def.Kind, model.ErrUnknownEnumValue)
		}
	}
	c, err := types.NewCurrency(def.Code, precision, kind)
	if err != nil {
		return fmt.Errorf("currency %s: %w", def.Code, err)
	}
	types.RegisterCurrency(c)
	return nil
}

func buildInstrument(def InstrumentDef, loadedAt types.UnixNanos) (model.Instrument, error) {
	switch def.Type {
	case "CRYPTO_FUTURE":
		return buildCryptoFuture(def, loadedAt)
	case "CRYPTO_PERPETUAL":
		return buildCryptoPerpetual(def, loadedAt)
	case "CURRENCY_PAIR":
		return buildCurrencyPair(def, loadedAt)
	case "EQUITY":
		return buildEquity(def, loadedAt)
	case "FUTURES_CONTRACT":
		return buildFuturesContract(def, loadedAt)
	case "OPTIONS_CONTRACT":
		return buildOptionsContract(def, loadedAt)
	default:
		return nil, fmt.Errorf("%q: %w", def.Type, ErrUnknownVariantType)
	}
}
