package tensor

import (
	"fmt"
	"sync"

	"github.com/kilianp07/tracelab/core/indicator"
)

// ModuleIndicator aggregates over a module's parameter tree: every collected
// module contributes the current values of each named parameter, and the
// flush reports one summary per parameter path.
type ModuleIndicator struct {
	mu      sync.Mutex
	name    string
	isPrint bool
	order   []string
	pending map[string][]float64
}

// NewModuleIndicator creates a ModuleIndicator.
func NewModuleIndicator(name string, isPrint bool) *ModuleIndicator {
	return &ModuleIndicator{name: name, isPrint: isPrint, pending: make(map[string][]float64)}
}

func (m *ModuleIndicator) Name() string  { return m.name }
func (m *ModuleIndicator) IsPrint() bool { return m.isPrint }

func (m *ModuleIndicator) Collect(v any) error {
	mod, ok := v.(*Module)
	if !ok {
		return fmt.Errorf("indicator %s: expected *tensor.Module, got %T", m.name, v)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, np := range mod.NamedParameters() {
		if _, ok := m.pending[np.Path]; !ok {
			m.order = append(m.order, np.Path)
		}
		m.pending[np.Path] = append(m.pending[np.Path], np.Param.Values()...)
	}
	return nil
}

func (m *ModuleIndicator) Flush() ([]indicator.Summary, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sums []indicator.Summary
	for _, path := range m.order {
		values := m.pending[path]
		if len(values) == 0 {
			continue
		}
		s := indicator.Summarize(m.name+"."+path, m.isPrint, values)
		s.Quantiles = indicator.Quantiles(values)
		sums = append(sums, s)
		m.pending[path] = values[:0]
	}
	return sums, len(sums) > 0
}

func (m *ModuleIndicator) ToRecord() indicator.Record {
	return indicator.Record{indicator.ClassNameKey: "Module", "name": m.name, "is_print": m.isPrint}
}
