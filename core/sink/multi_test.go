package sink

import (
	"errors"
	"testing"
)

type failingSink struct{ err error }

func (f failingSink) RecordStep(StepRecord) error { return f.err }

type closableSink struct {
	closed bool
}

func (c *closableSink) RecordStep(StepRecord) error { return nil }
func (c *closableSink) Close() error {
	c.closed = true
	return nil
}

func TestMultiSink_FirstError(t *testing.T) {
	want := errors.New("boom")
	m := NewMultiSink(failingSink{nil}, failingSink{want}, failingSink{errors.New("later")})
	if err := m.RecordStep(StepRecord{}); !errors.Is(err, want) {
		t.Fatalf("expected first error, got %v", err)
	}
}

func TestMultiSink_Close(t *testing.T) {
	a := &closableSink{}
	b := &closableSink{}
	m := NewMultiSink(a, NopSink{}, b)
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !a.closed || !b.closed {
		t.Error("not all closers closed")
	}
}
