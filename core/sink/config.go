package sink

import "github.com/kilianp07/tracelab/core/factory"

// Config defines the configured sinks for a run.
type Config struct {
	Sinks []factory.ComponentConfig `json:"sinks"`
}
