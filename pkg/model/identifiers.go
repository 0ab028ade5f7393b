package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Oriono/nautilus-trader/pkg/utility/intern"
)

var (
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrInvalidInstrumentID = errors.New("invalid instrument id")
)

// validIdentifier rejects empty, purely-whitespace, or control-character input.
func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	blank := true
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
		if !unicode.IsSpace(r) {
			blank = false
		}
	}
	return !blank
}

// Symbol is a validated, interned ticker symbol. The zero value is the
// absent symbol. Comparison with == is content comparison because equal
// symbols share one canonical interned string.
type Symbol struct {
	v *string
}

func NewSymbol(s string) (Symbol, error) {
	if !validIdentifier(s) {
		return Symbol{}, fmt.Errorf("symbol %q: %w", s, ErrInvalidIdentifier)
	}
	return Symbol{v: intern.Get(s)}, nil
}

// MustSymbol is for literals already known to be valid. It panics on
// malformed input, use NewSymbol for anything externally sourced.
func MustSymbol(s string) Symbol {
	sym, err := NewSymbol(s)
	if err != nil {
		panic(err)
	}
	return sym
}

func (s Symbol) String() string {
	if s.v == nil {
		return ""
	}
	return *s.v
}

func (s Symbol) IsZero() bool { return s.v == nil }

func (s Symbol) Compare(o Symbol) int { return strings.Compare(s.String(), o.String()) }

func (s Symbol) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// setInner re-points the symbol at a new interned value. Reserved for
// controlled re-indexing of an existing entity, not general mutation.
func (s *Symbol) setInner(v string) { s.v = intern.Get(v) }

// Venue is a validated, interned trading-venue code.
type Venue struct {
	v *string
}

func NewVenue(s string) (Venue, error) {
	if !validIdentifier(s) {
		return Venue{}, fmt.Errorf("venue %q: %w", s, ErrInvalidIdentifier)
	}
	return Venue{v: intern.Get(s)}, nil
}

func MustVenue(s string) Venue {
	v, err := NewVenue(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Venue) String() string {
	if v.v == nil {
		return ""
	}
	return *v.v
}

func (v Venue) IsZero() bool { return v.v == nil }

func (v Venue) Compare(o Venue) int { return strings.Compare(v.String(), o.String()) }

func (v Venue) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Venue) setInner(s string) { v.v = intern.Get(s) }

// InstrumentID is the venue-qualified symbol identifying one instrument,
// rendered as "SYMBOL.VENUE". It is comparable, hashable as a map key,
// and totally ordered by symbol then venue.
type InstrumentID struct {
	symbol Symbol
	venue  Venue
}

func NewInstrumentID(symbol Symbol, venue Venue) (InstrumentID, error) {
	if symbol.IsZero() || venue.IsZero() {
		return InstrumentID{}, fmt.Errorf("symbol or venue absent: %w", ErrInvalidInstrumentID)
	}
	return InstrumentID{symbol: symbol, venue: venue}, nil
}

// ParseInstrumentID splits the canonical "SYMBOL.VENUE" form on the last
// dot, so symbols themselves may contain dots.
func ParseInstrumentID(s string) (InstrumentID, error) {
	i := strings.LastIndexByte(s, '.')
	if i < 0 {
		return InstrumentID{}, fmt.Errorf("%q is not SYMBOL.VENUE: %w", s, ErrInvalidInstrumentID)
	}
	symbol, err := NewSymbol(s[:i])
	if err != nil {
		return InstrumentID{}, fmt.Errorf("%q: %w", s, err)
	}
	venue, err := NewVenue(s[i+1:])
	if err != nil {
		return InstrumentID{}, fmt.Errorf("%q: %w", s, err)
	}
	return InstrumentID{symbol: symbol, venue: venue}, nil
}

func MustInstrumentID(s string) InstrumentID {
	id, err := ParseInstrumentID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id InstrumentID) Symbol() Symbol { return id.symbol }
func (id InstrumentID) Venue() Venue   { return id.venue }
func (id InstrumentID) IsZero() bool   { return id.symbol.IsZero() || id.venue.IsZero() }

func (id InstrumentID) String() string {
	return id.symbol.String() + "." + id.venue.String()
}

func (id InstrumentID) Compare(o InstrumentID) int {
	if c := id.symbol.Compare(o.symbol); c != 0 {
		return c
	}
	return id.venue.Compare(o.venue)
}

func (id InstrumentID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
