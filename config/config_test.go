package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `run:
  name: "mnist-baseline"
  flush_interval_seconds: 5
mqtt:
  broker: "tcp://localhost:1883"
  client_id: "cli"
  username: "user"
  password: "pass"
  use_tls: false
sinks:
  sinks:
    - type: "nop"
runlog:
  enabled: true
  path: "out/run.jsonl"
  max_size_mb: 8
  max_backups: 2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"run.name", cfg.Run.Name, "mnist-baseline"},
		{"run.flush_interval_seconds", cfg.Run.FlushIntervalSeconds, 5},
		{"run.ingest_topic default", cfg.Run.IngestTopic, "tracelab/ingest"},
		{"broker", cfg.MQTT.Broker, "tcp://localhost:1883"},
		{"client_id", cfg.MQTT.ClientID, "cli"},
		{"username", cfg.MQTT.Username, "user"},
		{"password", cfg.MQTT.Password, "pass"},
		{"use_tls", cfg.MQTT.UseTLS, false},
		{"sinks", len(cfg.Sinks.Sinks) == 1 && cfg.Sinks.Sinks[0].Type == "nop", true},
		{"runlog.enabled", cfg.RunLog.Enabled, true},
		{"runlog.path", cfg.RunLog.Path, "out/run.jsonl"},
		{"runlog.max_size_mb", cfg.RunLog.MaxSizeMB, 8},
		{"runlog.max_backups", cfg.RunLog.MaxBackups, 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"run": {"name": "base"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TL_RUN__NAME", "override")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Run.Name != "override" {
		t.Errorf("env override not applied: %s", cfg.Run.Name)
	}
}
