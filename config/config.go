package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/tracelab/core/sink"
	"github.com/kilianp07/tracelab/infra/mqtt"
)

type Config struct {
	Run    RunConfig    `json:"run"`
	MQTT   mqtt.Config  `json:"mqtt"`
	Sinks  sink.Config  `json:"sinks"`
	RunLog RunLogConfig `json:"runlog"`
}

// RunConfig defines the tracking session parameters.
type RunConfig struct {
	// Name labels the run; the run ID stays unique across restarts.
	Name string `json:"name"`
	// FlushIntervalSeconds is the period of the automatic step flush.
	FlushIntervalSeconds int `json:"flush_interval_seconds"`
	// IngestTopic is the MQTT topic the daemon reads values from.
	IngestTopic string `json:"ingest_topic"`
}

// SetDefaults applies sane defaults.
func (c *RunConfig) SetDefaults() {
	if c.Name == "" {
		c.Name = "run"
	}
	if c.FlushIntervalSeconds <= 0 {
		c.FlushIntervalSeconds = 10
	}
	if c.IngestTopic == "" {
		c.IngestTopic = "tracelab/ingest"
	}
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("TL_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tl_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Run.SetDefaults()
	cfg.RunLog.SetDefaults()
	if err := cfg.RunLog.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
