package indicator

import "sync"

// Scalar accumulates values between flushes and reports their aggregate.
type Scalar struct {
	mu      sync.Mutex
	name    string
	isPrint bool
	values  []float64
}

// NewScalar creates a Scalar indicator.
func NewScalar(name string, isPrint bool) *Scalar {
	return &Scalar{name: name, isPrint: isPrint}
}

func (s *Scalar) Name() string  { return s.name }
func (s *Scalar) IsPrint() bool { return s.isPrint }

func (s *Scalar) Collect(v any) error {
	vs, err := toFloats(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.values = append(s.values, vs...)
	s.mu.Unlock()
	return nil
}

func (s *Scalar) Flush() ([]Summary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return nil, false
	}
	sum := Summarize(s.name, s.isPrint, s.values)
	s.values = s.values[:0]
	return []Summary{sum}, true
}

func (s *Scalar) ToRecord() Record {
	return Record{ClassNameKey: "Scalar", "name": s.name, "is_print": s.isPrint}
}

// Queue keeps a sliding window of the most recent values. The window is not
// drained by Flush, so every flush reports the aggregate of the current window.
type Queue struct {
	mu      sync.Mutex
	name    string
	isPrint bool
	size    int
	window  []float64
}

// NewQueue creates a Queue indicator with the given window size.
func NewQueue(name string, isPrint bool, size int) *Queue {
	if size <= 0 {
		size = 1
	}
	return &Queue{name: name, isPrint: isPrint, size: size}
}

func (q *Queue) Name() string  { return q.name }
func (q *Queue) IsPrint() bool { return q.isPrint }

// Size returns the window capacity.
func (q *Queue) Size() int { return q.size }

func (q *Queue) Collect(v any) error {
	vs, err := toFloats(v)
	if err != nil {
		return err
	}
	q.mu.Lock()
	q.window = append(q.window, vs...)
	if n := len(q.window) - q.size; n > 0 {
		q.window = append(q.window[:0], q.window[n:]...)
	}
	q.mu.Unlock()
	return nil
}

func (q *Queue) Flush() ([]Summary, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.window) == 0 {
		return nil, false
	}
	return []Summary{Summarize(q.name, q.isPrint, q.window)}, true
}

func (q *Queue) ToRecord() Record {
	return Record{ClassNameKey: "Queue", "name": q.name, "is_print": q.isPrint, "queue_size": q.size}
}

// Histogram accumulates values like Scalar but its summary carries the
// empirical quantiles of the flushed distribution.
type Histogram struct {
	mu      sync.Mutex
	name    string
	isPrint bool
	values  []float64
}

// NewHistogram creates a Histogram indicator.
func NewHistogram(name string, isPrint bool) *Histogram {
	return &Histogram{name: name, isPrint: isPrint}
}

func (h *Histogram) Name() string  { return h.name }
func (h *Histogram) IsPrint() bool { return h.isPrint }

func (h *Histogram) Collect(v any) error {
	vs, err := toFloats(v)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.values = append(h.values, vs...)
	h.mu.Unlock()
	return nil
}

func (h *Histogram) Flush() ([]Summary, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.values) == 0 {
		return nil, false
	}
	sum := Summarize(h.name, h.isPrint, h.values)
	sum.Quantiles = Quantiles(h.values)
	h.values = h.values[:0]
	return []Summary{sum}, true
}

func (h *Histogram) ToRecord() Record {
	return Record{ClassNameKey: "Histogram", "name": h.name, "is_print": h.isPrint}
}
