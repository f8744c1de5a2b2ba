package sink

// MultiSink fans step records out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordStep forwards the record to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordStep(rec StepRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordStep(rec); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink that holds resources, returning the first error.
func (m *MultiSink) Close() error {
	var first error
	for _, s := range m.Sinks {
		if c, ok := s.(Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
