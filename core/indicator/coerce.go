package indicator

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// toFloats flattens a logged value to a slice of samples. It accepts plain
// numbers, numeric slices and arrays, gonum matrices and, when tensor support
// is installed, tensor-like values.
func toFloats(v any) ([]float64, error) {
	switch x := v.(type) {
	case float64:
		return []float64{x}, nil
	case float32:
		return []float64{float64(x)}, nil
	case int:
		return []float64{float64(x)}, nil
	case []float64:
		out := make([]float64, len(x))
		copy(out, x)
		return out, nil
	case mat.Matrix:
		r, c := x.Dims()
		out := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out = append(out, x.At(i, j))
			}
		}
		return out, nil
	}

	if ts := tensorSupport(); ts != nil {
		if vs, ok := ts.Values(v); ok {
			return vs, nil
		}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return []float64{numeric(rv)}, nil
	case reflect.Slice, reflect.Array:
		out := make([]float64, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev := rv.Index(i)
			for ev.Kind() == reflect.Interface {
				ev = ev.Elem()
			}
			if !isNumericKind(ev.Kind()) {
				return nil, fmt.Errorf("cannot collect element of type %s", ev.Kind())
			}
			out = append(out, numeric(ev))
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot collect value of type %T", v)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func numeric(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}
