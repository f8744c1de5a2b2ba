package sink

import (
	"github.com/prometheus/client_golang/prometheus"

	coresink "github.com/kilianp07/tracelab/core/sink"
)

// PromSink exposes flushed summaries as Prometheus metrics.
type PromSink struct {
	mean    *prometheus.GaugeVec
	last    *prometheus.GaugeVec
	samples *prometheus.CounterVec
}

// NewPromSink registers tracking metrics on the default Prometheus registerer.
// The Prometheus server should be started separately via StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Already
// registered collectors are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	mean := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tracelab_indicator_mean",
		Help: "Mean of the indicator's values at the last flush",
	}, []string{"run_id", "indicator"})
	last := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tracelab_indicator_last",
		Help: "Last value collected before the flush",
	}, []string{"run_id", "indicator"})
	samples := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracelab_indicator_samples_total",
		Help: "Total number of values collected per indicator",
	}, []string{"run_id", "indicator"})

	if err := reg.Register(mean); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			mean = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(last); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			last = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(samples); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			samples = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{mean: mean, last: last, samples: samples}, nil
}

// RecordStep updates the gauges and counters for every summary.
func (s *PromSink) RecordStep(rec coresink.StepRecord) error {
	for _, sum := range rec.Summaries {
		s.mean.WithLabelValues(rec.RunID, sum.Name).Set(sum.Mean)
		s.last.WithLabelValues(rec.RunID, sum.Name).Set(sum.Last)
		s.samples.WithLabelValues(rec.RunID, sum.Name).Add(float64(sum.Count))
	}
	return nil
}
