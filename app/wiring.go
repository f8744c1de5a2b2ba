package app

import (
	"github.com/kilianp07/tracelab/config"
	"github.com/kilianp07/tracelab/core/factory"
)

// runLogSinkConfig maps the runlog section onto the jsonl sink.
func runLogSinkConfig(c config.RunLogConfig) factory.ComponentConfig {
	return factory.ComponentConfig{
		Type: "jsonl",
		Conf: map[string]any{
			"path":        c.Path,
			"max_size_mb": c.MaxSizeMB,
			"max_backups": c.MaxBackups,
		},
	}
}

// promPort returns the port of the first prometheus sink, or "" when none
// is configured.
func promPort(sinks []factory.ComponentConfig) string {
	for _, s := range sinks {
		if s.Type != "prometheus" {
			continue
		}
		if p, ok := s.Conf["port"].(string); ok && p != "" {
			return p
		}
		return "2112"
	}
	return ""
}
