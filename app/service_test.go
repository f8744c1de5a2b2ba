package app

import (
	"strings"
	"testing"

	"github.com/kilianp07/tracelab/config"
	"github.com/kilianp07/tracelab/core/factory"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Run: config.RunConfig{
			Name:                 "test",
			FlushIntervalSeconds: 60,
			IngestTopic:          "tracelab/ingest",
		},
	}
}

func TestServiceStepPublishesRecord(t *testing.T) {
	svc, err := New(newTestConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer svc.Close()

	if !strings.HasPrefix(svc.RunID, "test-") {
		t.Errorf("run ID not prefixed with run name: %s", svc.RunID)
	}

	steps := svc.Steps()
	if err := svc.Save("loss", 0.5); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.Save("loss", 0.3); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	rec := <-steps
	if rec.Step != 1 {
		t.Errorf("expected step 1, got %d", rec.Step)
	}
	if len(rec.Summaries) != 1 || rec.Summaries[0].Name != "loss" {
		t.Fatalf("unexpected summaries: %+v", rec.Summaries)
	}
	if rec.Summaries[0].Count != 2 {
		t.Errorf("expected 2 samples, got %d", rec.Summaries[0].Count)
	}
}

func TestServiceEmptyStepSkipped(t *testing.T) {
	svc, err := New(newTestConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer svc.Close()

	steps := svc.Steps()
	if err := svc.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	select {
	case rec := <-steps:
		t.Fatalf("empty step produced a record: %+v", rec)
	default:
	}
}

func TestServiceIngest(t *testing.T) {
	svc, err := New(newTestConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer svc.Close()

	svc.onIngest("tracelab/ingest", []byte(`{"name":"accuracy","value":0.91}`))
	svc.onIngest("tracelab/ingest", []byte(`{"name":"grads","value":[1,2,3],"quiet":true}`))
	svc.onIngest("tracelab/ingest", []byte(`not json`))
	svc.onIngest("tracelab/ingest", []byte(`{"value":1}`))

	steps := svc.Steps()
	if err := svc.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	rec := <-steps
	if len(rec.Summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %+v", rec.Summaries)
	}
	byName := map[string]bool{}
	for _, s := range rec.Summaries {
		byName[s.Name] = s.Print
	}
	if !byName["accuracy"] {
		t.Errorf("accuracy should be printable")
	}
	if quiet, ok := byName["grads"]; !ok || quiet {
		t.Errorf("grads should be registered quiet, got %v ok=%v", quiet, ok)
	}
}

func TestPromPort(t *testing.T) {
	sinks := []factory.ComponentConfig{
		{Type: "console"},
		{Type: "prometheus", Conf: map[string]any{"port": "9300"}},
	}
	if got := promPort(sinks); got != "9300" {
		t.Errorf("expected 9300, got %s", got)
	}
	if got := promPort([]factory.ComponentConfig{{Type: "prometheus"}}); got != "2112" {
		t.Errorf("expected default port, got %s", got)
	}
	if got := promPort(nil); got != "" {
		t.Errorf("expected empty port, got %s", got)
	}
}
