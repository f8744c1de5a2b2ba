// Package app wires the tracking service: store, sinks, event bus and the
// optional MQTT intake.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/tracelab/config"
	"github.com/kilianp07/tracelab/core/sink"
	"github.com/kilianp07/tracelab/core/store"
	"github.com/kilianp07/tracelab/infra/logger"
	"github.com/kilianp07/tracelab/infra/mqtt"
	infrasink "github.com/kilianp07/tracelab/infra/sink"
	"github.com/kilianp07/tracelab/internal/eventbus"
)

// Service orchestrates a tracking run.
type Service struct {
	RunID string

	store       *store.Store
	sink        sink.Sink
	bus         *eventbus.TypedBus[sink.StepRecord]
	log         logger.Logger
	client      *mqtt.PahoClient
	step        atomic.Int64
	flushEvery  time.Duration
	ingestTopic string
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	sinks := cfg.Sinks.Sinks
	if cfg.RunLog.Enabled {
		sinks = append(sinks, runLogSinkConfig(cfg.RunLog))
	}
	snk, err := sink.NewSink(sinks)
	if err != nil {
		return nil, fmt.Errorf("sinks: %w", err)
	}

	svc := &Service{
		RunID:       cfg.Run.Name + "-" + uuid.NewString(),
		store:       store.New(),
		sink:        snk,
		bus:         eventbus.NewTyped[sink.StepRecord](),
		log:         logg,
		flushEvery:  time.Duration(cfg.Run.FlushIntervalSeconds) * time.Second,
		ingestTopic: cfg.Run.IngestTopic,
		promPort:    promPort(sinks),
	}

	if cfg.MQTT.Broker != "" {
		client, err := mqtt.NewPahoClient(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt client: %w", err)
		}
		svc.client = client
	}
	return svc, nil
}

// Save folds a value into the named indicator of the run.
func (s *Service) Save(name string, value any) error {
	return s.store.Save(name, value)
}

// SaveQuiet folds a value without surfacing it in console output.
func (s *Service) SaveQuiet(name string, value any) error {
	return s.store.SaveQuiet(name, value)
}

// Step flushes all indicators and forwards the summaries to the sinks.
// Steps with nothing pending are skipped.
func (s *Service) Step() error {
	sums := s.store.Flush()
	if len(sums) == 0 {
		return nil
	}
	rec := sink.StepRecord{
		RunID:     s.RunID,
		Step:      s.step.Add(1),
		Time:      time.Now().UTC(),
		Summaries: sums,
	}
	s.bus.Publish(rec)
	return s.sink.RecordStep(rec)
}

// Steps exposes the flushed step records for live observers.
func (s *Service) Steps() <-chan sink.StepRecord { return s.bus.Subscribe() }

// Run starts the intake and the periodic flush, blocking until the context
// is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.client != nil {
		if err := s.client.Subscribe(s.ingestTopic, s.onIngest); err != nil {
			return fmt.Errorf("subscribe %s: %w", s.ingestTopic, err)
		}
		s.log.Infof("ingesting values from %s", s.ingestTopic)
	}
	if s.promPort != "" {
		go func() {
			if err := infrasink.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	ticker := time.NewTicker(s.flushEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Step(); err != nil {
				s.log.Errorf("step flush: %v", err)
			}
		}
	}
}

// Close flushes pending values and releases resources.
func (s *Service) Close() error {
	err := s.Step()
	if c, ok := s.sink.(sink.Closer); ok {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if s.client != nil {
		s.client.Disconnect()
	}
	s.bus.Close()
	return err
}

type ingestMessage struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
	Quiet bool   `json:"quiet"`
}

func (s *Service) onIngest(_ string, payload []byte) {
	var msg ingestMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		s.log.Errorf("bad ingest payload: %v", err)
		return
	}
	if msg.Name == "" {
		s.log.Warnf("ingest message without a name")
		return
	}
	save := s.Save
	if msg.Quiet {
		save = s.SaveQuiet
	}
	if err := save(msg.Name, msg.Value); err != nil {
		s.log.Errorf("ingest %s: %v", msg.Name, err)
	}
}
