package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/vidyonnati/foundation-backend/pkg/metrics"
)

const (
	TypeApplicationSubmitted     = "application.submitted"
	TypeApplicationStatusChanged = "application.status_changed"
	TypeDonationRecorded         = "donation.recorded"
	TypeLeadRecorded             = "lead.recorded"
)

// Event is what lands on the admin event topic.
type Event struct {
	Type          string    `json:"type"`
	ApplicationID string    `json:"application_id,omitempty"`
	Variant       string    `json:"variant,omitempty"`
	Status        string    `json:"status,omitempty"`
	At            time.Time `json:"at"`
}

// Publisher pushes admin events to Kafka. Publishing is best effort: the
// caller logs failures and moves on.
type Publisher interface {
	Publish(ctx context.Context, key string, event Event) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(brokers, topic string) *KafkaPublisher {
	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  strings.Split(brokers, ","),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})
	return &KafkaPublisher{writer: w, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		metrics.KafkaMessagesTotal.WithLabelValues("vidyonnati-backend", p.topic, "failed").Inc()
		return err
	}
	metrics.KafkaMessagesTotal.WithLabelValues("vidyonnati-backend", p.topic, "success").Inc()
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, key string, event Event) error { return nil }
func (NopPublisher) Close() error                                               { return nil }
