package indicator

import "sync"

// TensorSupport is the boundary to the optional tensor package. It is
// registered once from that package's init, so availability is fixed at
// process start; the dispatch branches guarded by it are skipped when no
// support was installed.
type TensorSupport interface {
	// IsParameter reports whether v is a learnable-parameter tensor.
	IsParameter(v any) bool
	// IsTensor reports whether v is a general tensor.
	IsTensor(v any) bool
	// IsModule reports whether v is a structured computation module.
	IsModule(v any) bool
	// Values flattens a tensor-like value to samples.
	Values(v any) ([]float64, bool)
	// NewModuleIndicator constructs the aggregate indicator for structured
	// modules. It is only invoked when a module value is actually dispatched.
	NewModuleIndicator(name string, isPrint bool) Indicator
}

var (
	tensorMu  sync.RWMutex
	tensorExt TensorSupport
)

// RegisterTensorSupport installs tensor dispatch support. The last
// registration wins; passing nil uninstalls support (used by tests).
func RegisterTensorSupport(ts TensorSupport) {
	tensorMu.Lock()
	tensorExt = ts
	tensorMu.Unlock()
}

func tensorSupport() TensorSupport {
	tensorMu.RLock()
	defer tensorMu.RUnlock()
	return tensorExt
}
