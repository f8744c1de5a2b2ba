package sink

import (
	"github.com/kilianp07/tracelab/core/factory"
	coresink "github.com/kilianp07/tracelab/core/sink"
	"github.com/kilianp07/tracelab/infra/mqtt"
)

// init registers built-in sinks.
func init() {
	_ = coresink.RegisterSink("nop", func(map[string]any) (coresink.Sink, error) {
		return coresink.NopSink{}, nil
	})

	_ = coresink.RegisterSink("console", func(map[string]any) (coresink.Sink, error) {
		return NewConsoleSink(), nil
	})

	_ = coresink.RegisterSink("prometheus", func(conf map[string]any) (coresink.Sink, error) {
		// The port only matters to the HTTP server started by the app.
		return NewPromSink()
	})

	_ = coresink.RegisterSink("influx", func(conf map[string]any) (coresink.Sink, error) {
		var c struct {
			URL    string `json:"url"`
			Token  string `json:"token"`
			Org    string `json:"org"`
			Bucket string `json:"bucket"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	})

	_ = coresink.RegisterSink("mqtt", func(conf map[string]any) (coresink.Sink, error) {
		var c struct {
			mqtt.Config `json:",squash"`
			TopicPrefix string `json:"topic_prefix"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		cli, err := mqtt.NewPahoClient(c.Config)
		if err != nil {
			return nil, err
		}
		return NewMQTTSink(cli, c.TopicPrefix), nil
	})

	_ = coresink.RegisterSink("jsonl", func(conf map[string]any) (coresink.Sink, error) {
		var c struct {
			Path       string `json:"path"`
			MaxSizeMB  int    `json:"max_size_mb"`
			MaxBackups int    `json:"max_backups"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewJSONLSink(c.Path, c.MaxSizeMB, c.MaxBackups)
	})
}
