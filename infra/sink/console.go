// Package sink provides the concrete sink adapters and registers them with
// the core sink factory.
package sink

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	coresink "github.com/kilianp07/tracelab/core/sink"
)

// ConsoleSink prints flushed summaries through zerolog. Only indicators with
// the print flag set are shown.
type ConsoleSink struct {
	log zerolog.Logger
}

// NewConsoleSink creates a ConsoleSink writing to stdout.
func NewConsoleSink() *ConsoleSink {
	return NewConsoleSinkWithWriter(os.Stdout)
}

// NewConsoleSinkWithWriter creates a ConsoleSink writing to w.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return &ConsoleSink{log: zerolog.New(writer).With().Timestamp().Logger()}
}

// RecordStep logs one line per printed summary.
func (s *ConsoleSink) RecordStep(rec coresink.StepRecord) error {
	for _, sum := range rec.Summaries {
		if !sum.Print {
			continue
		}
		ev := s.log.Info().
			Int64("step", rec.Step).
			Str("indicator", sum.Name).
			Float64("mean", sum.Mean).
			Int("count", sum.Count)
		if sum.Count > 1 {
			ev = ev.Float64("min", sum.Min).Float64("max", sum.Max)
		}
		ev.Msg("step")
	}
	return nil
}
