package indicator

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/tracelab/core/factory"
)

var registry = factory.NewRegistry[Indicator]()

type scalarConf struct {
	Name    string `json:"name"`
	IsPrint bool   `json:"is_print"`
}

type queueConf struct {
	Name      string `json:"name"`
	IsPrint   bool   `json:"is_print"`
	QueueSize int    `json:"queue_size"`
}

func init() {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(registry.Register("Scalar", func(conf map[string]any) (Indicator, error) {
		var c scalarConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewScalar(c.Name, c.IsPrint), nil
	}))
	must(registry.Register("Queue", func(conf map[string]any) (Indicator, error) {
		var c queueConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewQueue(c.Name, c.IsPrint, c.QueueSize), nil
	}))
	must(registry.Register("Histogram", func(conf map[string]any) (Indicator, error) {
		var c scalarConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewHistogram(c.Name, c.IsPrint), nil
	}))
}

// LoadIndicatorFromRecord rebuilds an indicator from its serialized record.
// The class_name key is removed from rec as a side effect; callers that need
// the record afterwards must copy it first. Decode errors from the variant's
// config propagate unwrapped.
func LoadIndicatorFromRecord(rec Record) (Indicator, error) {
	tag, _ := rec[ClassNameKey].(string)
	delete(rec, ClassNameKey)
	f, ok := registry.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("unknown indicator: %s", tag)
	}
	return f(rec)
}

// CreateDefaultIndicator selects the indicator variant matching the runtime
// type of value. Checks run from exact numeric types to structural ones and
// the first match wins; tensor branches apply only when support is installed.
func CreateDefaultIndicator(name string, value any, isPrint bool) (Indicator, error) {
	switch value.(type) {
	case int, float64:
		return NewScalar(name, isPrint), nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return NewScalar(name, isPrint), nil
	case reflect.Slice, reflect.Array:
		return NewScalar(name, isPrint), nil
	}
	if _, ok := value.(mat.Matrix); ok {
		return NewScalar(name, isPrint), nil
	}
	if ts := tensorSupport(); ts != nil {
		switch {
		case ts.IsParameter(value):
			return NewScalar(name, isPrint), nil
		case ts.IsTensor(value):
			return NewScalar(name, isPrint), nil
		case ts.IsModule(value):
			return ts.NewModuleIndicator(name, isPrint), nil
		}
	}
	return nil, fmt.Errorf("unrecognized value type %T", value)
}
