package sink

import (
	"encoding/json"
	"fmt"

	coresink "github.com/kilianp07/tracelab/core/sink"
)

// Publisher is the transport used by the MQTT sink; implemented by
// infra/mqtt.PahoClient.
type Publisher interface {
	Publish(topic string, payload []byte) error
	Disconnect()
}

// MQTTSink publishes step records as JSON to a per-run topic.
type MQTTSink struct {
	pub         Publisher
	topicPrefix string
}

// NewMQTTSink creates an MQTTSink. An empty prefix defaults to
// "tracelab/runs".
func NewMQTTSink(pub Publisher, topicPrefix string) *MQTTSink {
	if topicPrefix == "" {
		topicPrefix = "tracelab/runs"
	}
	return &MQTTSink{pub: pub, topicPrefix: topicPrefix}
}

// RecordStep publishes the record to <prefix>/<run_id>/steps.
func (s *MQTTSink) RecordStep(rec coresink.StepRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	topic := fmt.Sprintf("%s/%s/steps", s.topicPrefix, rec.RunID)
	return s.pub.Publish(topic, payload)
}

// Close disconnects the underlying client.
func (s *MQTTSink) Close() error {
	s.pub.Disconnect()
	return nil
}
