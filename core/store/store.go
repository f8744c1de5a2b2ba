// Package store holds the live indicators of a run and feeds them values.
package store

import (
	"fmt"
	"sync"

	"github.com/kilianp07/tracelab/core/indicator"
)

// Store maps indicator names to live indicators, preserving insertion order
// so flushes and serialized runs stay stable.
type Store struct {
	mu    sync.Mutex
	inds  map[string]indicator.Indicator
	order []string
}

// New creates an empty store.
func New() *Store {
	return &Store{inds: make(map[string]indicator.Indicator)}
}

// Add registers an explicitly constructed indicator.
func (s *Store) Add(ind indicator.Indicator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ind)
}

func (s *Store) add(ind indicator.Indicator) error {
	name := ind.Name()
	if _, ok := s.inds[name]; ok {
		return fmt.Errorf("indicator %s already registered", name)
	}
	s.inds[name] = ind
	s.order = append(s.order, name)
	return nil
}

// Save folds value into the named indicator, creating the default indicator
// for the value's type on first use. Auto-created indicators are printed.
func (s *Store) Save(name string, value any) error {
	return s.save(name, value, true)
}

// SaveQuiet behaves like Save but auto-created indicators stay out of
// console output.
func (s *Store) SaveQuiet(name string, value any) error {
	return s.save(name, value, false)
}

func (s *Store) save(name string, value any, isPrint bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ind, ok := s.inds[name]
	if !ok {
		var err error
		ind, err = indicator.CreateDefaultIndicator(name, value, isPrint)
		if err != nil {
			return err
		}
		if err := s.add(ind); err != nil {
			return err
		}
	}
	return ind.Collect(value)
}

// Flush drains every indicator and returns the summaries in registration
// order. Indicators with nothing pending are skipped.
func (s *Store) Flush() []indicator.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []indicator.Summary
	for _, name := range s.order {
		if sums, ok := s.inds[name].Flush(); ok {
			out = append(out, sums...)
		}
	}
	return out
}

// Names returns the registered indicator names in registration order.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// ToRecords serializes every indicator in registration order.
func (s *Store) ToRecords() []indicator.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]indicator.Record, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.inds[name].ToRecord())
	}
	return out
}

// LoadRecords rebuilds indicators from serialized records. The records are
// consumed: their class_name keys are removed by the deserializer.
func (s *Store) LoadRecords(recs []indicator.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		ind, err := indicator.LoadIndicatorFromRecord(rec)
		if err != nil {
			return err
		}
		if err := s.add(ind); err != nil {
			return err
		}
	}
	return nil
}
