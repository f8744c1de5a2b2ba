package sink

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kilianp07/tracelab/core/indicator"
	coresink "github.com/kilianp07/tracelab/core/sink"
)

func TestInfluxSink_RecordStep(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	now := time.Now()
	rec := coresink.StepRecord{
		RunID: "run1",
		Step:  3,
		Time:  now,
		Summaries: []indicator.Summary{{
			Name:  "loss",
			Count: 4,
			Mean:  0.5,
			Min:   0.1,
			Max:   0.9,
			Std:   0.2,
			Last:  0.4,
			Print: true,
		}},
	}
	if err := sink.RecordStep(rec); err != nil {
		t.Fatalf("record error: %v", err)
	}
	p := write.NewPointWithMeasurement("indicator").
		AddTag("run_id", "run1").
		AddTag("indicator", "loss").
		AddField("step", int64(3)).
		AddField("count", 4).
		AddField("mean", 0.5).
		AddField("min", 0.1).
		AddField("max", 0.9).
		AddField("std", 0.2).
		AddField("last", 0.4).
		SetTime(now)
	expected := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if strings.TrimSpace(body) != expected {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(srv.URL+"/api/v2/write", "tok", "org", "bucket")
	if _, ok := sink.(*InfluxSink); ok {
		t.Fatalf("expected NopSink on failing health check")
	}
	if !called {
		t.Fatalf("health endpoint not called")
	}
}
