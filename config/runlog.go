package config

import "fmt"

// RunLogConfig defines settings for the local run log and its rotation.
type RunLogConfig struct {
	// Enabled toggles the JSONL run log.
	Enabled bool `json:"enabled"`
	// Path is the file location of the run log.
	Path string `json:"path"`
	// MaxSizeMB triggers rotation when the file exceeds this size in megabytes.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
}

// SetDefaults applies sane defaults.
func (c *RunLogConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "run.jsonl"
	}
}

// Validate checks mandatory fields.
func (c RunLogConfig) Validate() error {
	if c.Enabled && c.Path == "" {
		return fmt.Errorf("runlog path is required")
	}
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 {
		return fmt.Errorf("rotation limits must not be negative")
	}
	return nil
}
