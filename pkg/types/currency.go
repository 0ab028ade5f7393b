package types

import (
	"fmt"
	"sync"

	"github.com/Oriono/nautilus-trader/pkg/utility/intern"
)

type CurrencyType uint8

const (
	CurrencyTypeFiat CurrencyType = iota
	CurrencyTypeCrypto
)

func (t CurrencyType) String() string {
	switch t {
	case CurrencyTypeFiat:
		return "FIAT"
	case CurrencyTypeCrypto:
		return "CRYPTO"
	default:
		return "UNKNOWN"
	}
}

// Currency is a currency code with its settlement precision. The code is
// interned, so Currency values are cheap to copy and comparable with ==.
type Currency struct {
	code      *string
	precision uint8
	kind      CurrencyType
}

func NewCurrency(code string, precision uint8, kind CurrencyType) (Currency, error) {
	if !validCurrencyCode(code) {
		return Currency{}, fmt.Errorf("code %q: %w", code, ErrInvalidCurrencyCode)
	}
	if precision > MaxPrecision {
		return Currency{}, fmt.Errorf("code %q precision %d: %w", code, precision, ErrPrecisionOutOfRange)
	}
	return Currency{code: intern.Get(code), precision: precision, kind: kind}, nil
}

// MustCurrency is for codes known valid at the call site, such as the builtin
// table below. It panics on invalid input.
func MustCurrency(code string, precision uint8, kind CurrencyType) Currency {
	return must(NewCurrency(code, precision, kind))
}

func (c Currency) Code() string {
	if c.code == nil {
		return ""
	}
	return *c.code
}

func (c Currency) Precision() uint8   { return c.precision }
func (c Currency) Kind() CurrencyType { return c.kind }
func (c Currency) IsFiat() bool       { return c.kind == CurrencyTypeFiat }
func (c Currency) IsCrypto() bool     { return c.kind == CurrencyTypeCrypto }
func (c Currency) IsZero() bool       { return c.code == nil }
func (c Currency) String() string     { return c.Code() }

func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

func validCurrencyCode(code string) bool {
	if len(code) == 0 || len(code) > 12 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// Process-wide currency registry. Lookup is concurrent; Register replaces any
// previous entry for the same code.
var (
	currencyMu  sync.RWMutex
	currencyMap = builtinCurrencies()
)

func CurrencyFromCode(code string) (Currency, error) {
	currencyMu.RLock()
	c, ok := currencyMap[code]
	currencyMu.RUnlock()
	if !ok {
		return Currency{}, fmt.Errorf("code %q: %w", code, ErrUnknownCurrency)
	}
	return c, nil
}

func MustCurrencyFromCode(code string) Currency {
	return must(CurrencyFromCode(code))
}

func RegisterCurrency(c Currency) {
	currencyMu.Lock()
	currencyMap[c.Code()] = c
	currencyMu.Unlock()
}

func builtinCurrencies() map[string]Currency {
	list := []Currency{
		MustCurrency("USD", 2, CurrencyTypeFiat),
		MustCurrency("EUR", 2, CurrencyTypeFiat),
		MustCurrency("GBP", 2, CurrencyTypeFiat),
		MustCurrency("JPY", 0, CurrencyTypeFiat),
		MustCurrency("AUD", 2, CurrencyTypeFiat),
		MustCurrency("CAD", 2, CurrencyTypeFiat),
		MustCurrency("CHF", 2, CurrencyTypeFiat),
		MustCurrency("CNY", 2, CurrencyTypeFiat),
		MustCurrency("BTC", 8, CurrencyTypeCrypto),
		MustCurrency("ETH", 8, CurrencyTypeCrypto),
		MustCurrency("SOL", 8, CurrencyTypeCrypto),
		MustCurrency("BNB", 8, CurrencyTypeCrypto),
		MustCurrency("XRP", 6, CurrencyTypeCrypto),
		MustCurrency("USDT", 6, CurrencyTypeCrypto),
		MustCurrency("USDC", 6, CurrencyTypeCrypto),
		MustCurrency("DAI", 8, CurrencyTypeCrypto),
	}
	m := make(map[string]Currency, len(list))
	for _, c := range list {
		m[c.Code()] = c
	}
	return m
}
