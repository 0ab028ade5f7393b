package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEnumValue = errors.New("unknown enum value")

// AssetClass groups instruments by the nature of the underlying asset.
type AssetClass uint8

const (
	AssetClassFX AssetClass = iota
	AssetClassEquity
	AssetClassCommodity
	AssetClassDebt
	AssetClassIndex
	AssetClassCryptocurrency
	AssetClassAlternative
)

func (a AssetClass) String() string {
	switch a {
	case AssetClassFX:
		return "FX"
	case AssetClassEquity:
		return "EQUITY"
	case AssetClassCommodity:
		return "COMMODITY"
	case AssetClassDebt:
		return "DEBT"
	case AssetClassIndex:
		return "INDEX"
	case AssetClassCryptocurrency:
		return "CRYPTOCURRENCY"
	case AssetClassAlternative:
		return "ALTERNATIVE"
	default:
		return "UNKNOWN"
	}
}

func ParseAssetClass(s string) (AssetClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FX":
		return AssetClassFX, nil
	case "EQUITY":
		return AssetClassEquity, nil
	case "COMMODITY":
		return AssetClassCommodity, nil
	case "DEBT":
		return AssetClassDebt, nil
	case "INDEX":
		return AssetClassIndex, nil
	case "CRYPTOCURRENCY":
		return AssetClassCryptocurrency, nil
	case "ALTERNATIVE":
		return AssetClassAlternative, nil
	default:
		return 0, fmt.Errorf("asset class %q: %w", s, ErrUnknownEnumValue)
	}
}

// InstrumentClass describes the contract shape of an instrument.
type InstrumentClass uint8

const (
	InstrumentClassSpot InstrumentClass = iota
	InstrumentClassSwap
	InstrumentClassFuture
	InstrumentClassForward
	InstrumentClassCFD
	InstrumentClassBond
	InstrumentClassOption
	InstrumentClassWarrant
)

func (c InstrumentClass) String() string {
	switch c {
	case InstrumentClassSpot:
		return "SPOT"
	case InstrumentClassSwap:
		return "SWAP"
	case InstrumentClassFuture:
		return "FUTURE"
	case InstrumentClassForward:
		return "FORWARD"
	case InstrumentClassCFD:
		return "CFD"
	case InstrumentClassBond:
		return "BOND"
	case InstrumentClassOption:
		return "OPTION"
	case InstrumentClassWarrant:
		return "WARRANT"
	default:
		return "UNKNOWN"
	}
}

func ParseInstrumentClass(s string) (InstrumentClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SPOT":
		return InstrumentClassSpot, nil
	case "SWAP":
		return InstrumentClassSwap, nil
	case "FUTURE":
		return InstrumentClassFuture, nil
	case "FORWARD":
		return InstrumentClassForward, nil
	case "CFD":
		return InstrumentClassCFD, nil
	case "BOND":
		return InstrumentClassBond, nil
	case "OPTION":
		return InstrumentClassOption, nil
	case "WARRANT":
		return InstrumentClassWarrant, nil
	default:
		return 0, fmt.Errorf("instrument class %q: %w", s, ErrUnknownEnumValue)
	}
}

// OptionKind distinguishes calls from puts.
type OptionKind uint8

const (
	OptionKindCall OptionKind = iota
	OptionKindPut
)

func (k OptionKind) String() string {
	switch k {
	case OptionKindCall:
		return "CALL"
	case OptionKindPut:
		return "PUT"
	default:
		return "UNKNOWN"
	}
}

func ParseOptionKind(s string) (OptionKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CALL":
		return OptionKindCall, nil
	case "PUT":
		return OptionKindPut, nil
	default:
		return 0, fmt.Errorf("option kind %q: %w", s, ErrUnknownEnumValue)
	}
}
