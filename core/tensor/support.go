package tensor

import "github.com/kilianp07/tracelab/core/indicator"

// init installs tensor dispatch support; importing this package is what makes
// tensor values recognizable to the indicator factory.
func init() {
	indicator.RegisterTensorSupport(support{})
}

type support struct{}

func (support) IsParameter(v any) bool {
	_, ok := v.(*Parameter)
	return ok
}

func (support) IsTensor(v any) bool {
	_, ok := v.(*Tensor)
	return ok
}

func (support) IsModule(v any) bool {
	_, ok := v.(*Module)
	return ok
}

func (support) Values(v any) ([]float64, bool) {
	switch x := v.(type) {
	case *Parameter:
		return x.Values(), true
	case *Tensor:
		return x.Values(), true
	}
	return nil, false
}

func (support) NewModuleIndicator(name string, isPrint bool) indicator.Indicator {
	return NewModuleIndicator(name, isPrint)
}
