package model

import (
	"errors"
	"testing"
)

func TestAssetClass_RoundTrip(t *testing.T) {
	classes := []AssetClass{
		AssetClassFX, AssetClassEquity, AssetClassCommodity, AssetClassDebt,
		AssetClassIndex, AssetClassCryptocurrency, AssetClassAlternative,
	}
	for _, c := range classes {
		got, err := ParseAssetClass(c.String())
		if err != nil {
			t.Fatalf("ParseAssetClass(%s) unexpected error: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseAssetClass(%s) = %s", c, got)
		}
	}
}

func TestInstrumentClass_RoundTrip(t *testing.T) {
	classes := []InstrumentClass{
		InstrumentClassSpot, InstrumentClassSwap, InstrumentClassFuture,
		InstrumentClassForward, InstrumentClassCFD, InstrumentClassBond,
		InstrumentClassOption, InstrumentClassWarrant,
	}
	for _, c := range classes {
		got, err := ParseInstrumentClass(c.String())
		if err != nil {
			t.Fatalf("ParseInstrumentClass(%s) unexpected error: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseInstrumentClass(%s) = %s", c, got)
		}
	}
}

func TestParse_Lenient(t *testing.T) {
	if got, err := ParseAssetClass(" cryptocurrency "); err != nil || got != AssetClassCryptocurrency {
		t.Errorf("ParseAssetClass lenient = %v, %v", got, err)
	}
	if got, err := ParseInstrumentClass("spot"); err != nil || got != InstrumentClassSpot {
		t.Errorf("ParseInstrumentClass lenient = %v, %v", got, err)
	}
	if got, err := ParseOptionKind("put"); err != nil || got != OptionKindPut {
		t.Errorf("ParseOptionKind lenient = %v, %v", got, err)
	}
}

func TestParse_Unknown(t *testing.T) {
	if _, err := ParseAssetClass("REAL_ESTATE"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("ParseAssetClass(REAL_ESTATE) error = %v; want %v", err, ErrUnknownEnumValue)
	}
	if _, err := ParseInstrumentClass(""); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("ParseInstrumentClass(empty) error = %v; want %v", err, ErrUnknownEnumValue)
	}
	if _, err := ParseOptionKind("STRADDLE"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("ParseOptionKind(STRADDLE) error = %v; want %v", err, ErrUnknownEnumValue)
	}
}
