package indicator

import (
	"math"
	"strings"
	"testing"
)

func TestScalar_CollectFlush(t *testing.T) {
	s := NewScalar("loss", true)
	if _, ok := s.Flush(); ok {
		t.Fatal("flush of empty indicator should report nothing")
	}
	for _, v := range []any{1, 2.0, []float64{3, 4}} {
		if err := s.Collect(v); err != nil {
			t.Fatalf("collect %v: %v", v, err)
		}
	}
	sums, ok := s.Flush()
	if !ok || len(sums) != 1 {
		t.Fatalf("unexpected flush result: %v %v", sums, ok)
	}
	sum := sums[0]
	if sum.Count != 4 || sum.Mean != 2.5 || sum.Min != 1 || sum.Max != 4 || sum.Last != 4 {
		t.Errorf("summary mismatch: %+v", sum)
	}
	if !sum.Print {
		t.Errorf("print flag lost")
	}
	if _, ok := s.Flush(); ok {
		t.Error("values not drained by flush")
	}
}

func TestScalar_CollectRejectsNonNumeric(t *testing.T) {
	s := NewScalar("loss", false)
	if err := s.Collect("nope"); err == nil {
		t.Fatal("expected error")
	}
	if err := s.Collect([]string{"a"}); err == nil || !strings.Contains(err.Error(), "element") {
		t.Fatalf("expected element error, got %v", err)
	}
}

func TestQueue_WindowSurvivesFlush(t *testing.T) {
	q := NewQueue("reward", false, 3)
	for i := 1; i <= 5; i++ {
		if err := q.Collect(i); err != nil {
			t.Fatalf("collect: %v", err)
		}
	}
	sums, ok := q.Flush()
	if !ok {
		t.Fatal("expected summary")
	}
	// window holds 3, 4, 5
	if sums[0].Count != 3 || sums[0].Min != 3 || sums[0].Max != 5 {
		t.Errorf("window mismatch: %+v", sums[0])
	}
	again, ok := q.Flush()
	if !ok || again[0].Count != 3 {
		t.Errorf("window should survive flush: %v %v", again, ok)
	}
}

func TestHistogram_Quantiles(t *testing.T) {
	h := NewHistogram("grad", true)
	for i := 1; i <= 100; i++ {
		if err := h.Collect(float64(i)); err != nil {
			t.Fatalf("collect: %v", err)
		}
	}
	sums, ok := h.Flush()
	if !ok {
		t.Fatal("expected summary")
	}
	qs := sums[0].Quantiles
	if qs == nil {
		t.Fatal("missing quantiles")
	}
	if math.Abs(qs["p50"]-50) > 1 || math.Abs(qs["p90"]-90) > 1 {
		t.Errorf("quantiles mismatch: %v", qs)
	}
	if _, ok := h.Flush(); ok {
		t.Error("values not drained by flush")
	}
}

func TestSummarize_Std(t *testing.T) {
	s := Summarize("x", false, []float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.Mean != 5 {
		t.Errorf("mean %v", s.Mean)
	}
	if math.Abs(s.Std-2.138) > 0.01 {
		t.Errorf("std %v", s.Std)
	}
	one := Summarize("x", false, []float64{3})
	if one.Std != 0 {
		t.Errorf("single-sample std %v", one.Std)
	}
}
