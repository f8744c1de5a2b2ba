package sink

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kilianp07/tracelab/core/indicator"
	coresink "github.com/kilianp07/tracelab/core/sink"
)

func TestPromSink_RecordStep(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	rec := coresink.StepRecord{
		RunID: "run1",
		Step:  1,
		Time:  time.Now(),
		Summaries: []indicator.Summary{
			{Name: "loss", Count: 2, Mean: 0.5, Last: 0.4},
			{Name: "accuracy", Count: 2, Mean: 0.9, Last: 0.95},
		},
	}
	if err := sink.RecordStep(rec); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP tracelab_indicator_mean Mean of the indicator's values at the last flush
# TYPE tracelab_indicator_mean gauge
tracelab_indicator_mean{indicator="accuracy",run_id="run1"} 0.9
tracelab_indicator_mean{indicator="loss",run_id="run1"} 0.5
`
	if err := testutil.CollectAndCompare(sink.mean, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if got := testutil.ToFloat64(sink.samples.WithLabelValues("run1", "loss")); got != 2 {
		t.Errorf("samples counter: %v", got)
	}
}

func TestNewPromSinkWithRegistry_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second create should reuse collectors: %v", err)
	}
}
