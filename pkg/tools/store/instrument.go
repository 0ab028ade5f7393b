package store

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/Oriono/nautilus-trader/pkg/model"
	"github.com/Oriono/nautilus-trader/pkg/types"
)

var (
	ErrInstrumentNotPresent = errors.New("instrument is not present in store")
)

// InstrumentStore keeps the current definition of each instrument,
// keyed by id. Records are immutable, an upstream refresh is a whole
// record Put under the same id and the latest Put wins. The version
// counter ticks on every mutation so callers can detect that the set
// changed between reads.
type InstrumentStore struct {
	mu          sync.RWMutex
	instruments map[model.InstrumentID]model.Instrument
	version     atomic.Uint64
}

func CreateInstrumentStore(instruments ...model.Instrument) *InstrumentStore {
	s := &InstrumentStore{
		instruments: make(map[model.InstrumentID]model.Instrument, len(instruments)),
	}
	for _, i := range instruments {
		s.Put(i)
	}
	return s
}

// Put swaps in a record and returns the store version after the swap.
// The counter ticks inside the critical section, a higher returned
// version always names the later map state.
func (s *InstrumentStore) Put(i model.Instrument) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instruments[i.ID()] = i
	return s.version.Add(1)
}

func (s *InstrumentStore) Get(id model.InstrumentID) (model.Instrument, error) {
	s.mu.RLock()
	i, ok := s.instruments[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unable to get instrument with id %s: %w", id, ErrInstrumentNotPresent)
	}
	return i, nil
}

func (s *InstrumentStore) MustGet(id model.InstrumentID) model.Instrument {
	i, err := s.Get(id)
	if err != nil {
		panic(err.Error())
	}
	return i
}

func (s *InstrumentStore) Contains(id model.InstrumentID) bool {
	s.mu.RLock()
	_, ok := s.instruments[id]
	s.mu.RUnlock()
	return ok
}

func (s *InstrumentStore) Remove(id model.InstrumentID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.instruments[id]; !ok {
		return false
	}
	delete(s.instruments, id)
	s.version.Add(1)
	return true
}

func (s *InstrumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.instruments)
}

func (s *InstrumentStore) Version() uint64 {
	return s.version.Load()
}

// IDs returns every key ordered by symbol then venue.
func (s *InstrumentStore) IDs() []model.InstrumentID {
	s.mu.RLock()
	ids := maps.Keys(s.instruments)
	s.mu.RUnlock()
	slices.SortFunc(ids, func(a, b model.InstrumentID) int { return a.Compare(b) })
	return ids
}

// Each calls fn for every record ordered by id. The snapshot is taken
// under the read lock, fn runs outside it.
func (s *InstrumentStore) Each(fn func(model.Instrument)) {
	s.mu.RLock()
	records := make([]model.Instrument, 0, len(s.instruments))
	for _, i := range s.instruments {
		records = append(records, i)
	}
	s.mu.RUnlock()
	slices.SortFunc(records, func(a, b model.Instrument) int { return a.ID().Compare(b.ID()) })
	for _, i := range records {
		fn(i)
	}
}

func CreateInstrumentTestStore() *InstrumentStore {
	pair, err := model.NewCurrencyPair(model.CurrencyPairParams{
		ID:             model.MustInstrumentID("EUR/USD.SIM"),
		RawSymbol:      model.MustSymbol("EUR/USD"),
		BaseCurrency:   types.MustCurrencyFromCode("EUR"),
		QuoteCurrency:  types.MustCurrencyFromCode("USD"),
		PricePrecision: 5,
		SizePrecision:  0,
		PriceIncrement: types.MustPriceFromString("0.00001", 5),
		SizeIncrement:  types.MustQuantityFromString("1", 0),
		TsEvent:        types.UnixNanosNow(),
		TsInit:         types.UnixNanosNow(),
	})
	if err != nil {
		panic(err.Error())
	}
	return CreateInstrumentStore(pair)
}
