package tensor

import (
	"testing"

	"github.com/kilianp07/tracelab/core/indicator"
)

// With this package linked in, the factory dispatches tensors and parameters
// to Scalar and module trees to ModuleIndicator.
func TestCreateDefaultIndicator_TensorDispatch(t *testing.T) {
	w, _ := New([]int{2}, []float64{1, 2})

	ind, err := indicator.CreateDefaultIndicator("w", w, false)
	if err != nil {
		t.Fatalf("tensor: %v", err)
	}
	if _, ok := ind.(*indicator.Scalar); !ok {
		t.Errorf("tensor: expected *Scalar got %T", ind)
	}

	ind, err = indicator.CreateDefaultIndicator("p", NewParameter(w), false)
	if err != nil {
		t.Fatalf("parameter: %v", err)
	}
	if _, ok := ind.(*indicator.Scalar); !ok {
		t.Errorf("parameter: expected *Scalar got %T", ind)
	}

	net := NewModule()
	if err := net.AddParameter("weight", NewParameter(w)); err != nil {
		t.Fatalf("add: %v", err)
	}
	ind, err = indicator.CreateDefaultIndicator("net", net, true)
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	if _, ok := ind.(*ModuleIndicator); !ok {
		t.Errorf("module: expected *ModuleIndicator got %T", ind)
	}
}

func TestScalarCollectsTensorValues(t *testing.T) {
	w, _ := New([]int{3}, []float64{1, 2, 3})
	s := indicator.NewScalar("w", false)
	if err := s.Collect(w); err != nil {
		t.Fatalf("collect tensor: %v", err)
	}
	if err := s.Collect(NewParameter(w)); err != nil {
		t.Fatalf("collect parameter: %v", err)
	}
	sums, ok := s.Flush()
	if !ok || sums[0].Count != 6 {
		t.Fatalf("unexpected summary: %v %v", sums, ok)
	}
}

func TestModuleIndicator_Flush(t *testing.T) {
	w, _ := New([]int{2}, []float64{1, 3})
	b, _ := New([]int{1}, []float64{5})
	layer := NewModule()
	_ = layer.AddParameter("weight", NewParameter(w))
	_ = layer.AddParameter("bias", NewParameter(b))

	mi := NewModuleIndicator("net", true)
	if err := mi.Collect(layer); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if err := mi.Collect("not a module"); err == nil {
		t.Fatal("expected type error")
	}
	sums, ok := mi.Flush()
	if !ok || len(sums) != 2 {
		t.Fatalf("unexpected summaries: %v", sums)
	}
	if sums[0].Name != "net.weight" || sums[0].Count != 2 || sums[0].Mean != 2 {
		t.Errorf("weight summary: %+v", sums[0])
	}
	if sums[1].Name != "net.bias" || sums[1].Last != 5 {
		t.Errorf("bias summary: %+v", sums[1])
	}
	if _, ok := mi.Flush(); ok {
		t.Error("pending values not drained")
	}
}
