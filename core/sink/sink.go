// Package sink defines where flushed step summaries go. Concrete adapters
// live in infra/sink and register themselves with the factory registry here.
package sink

import (
	"time"

	"github.com/kilianp07/tracelab/core/indicator"
)

// StepRecord is the unit handed to sinks: all indicator summaries flushed at
// one step of a run.
type StepRecord struct {
	RunID     string              `json:"run_id"`
	Step      int64               `json:"step"`
	Time      time.Time           `json:"time"`
	Summaries []indicator.Summary `json:"summaries"`
}

// Sink records flushed steps for storage or display.
type Sink interface {
	RecordStep(rec StepRecord) error
}

// Closer is implemented by sinks holding external resources.
type Closer interface {
	Close() error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordStep(StepRecord) error { return nil }
