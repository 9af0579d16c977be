package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/djerroudsalim/studious-octo-winner/internal/domain"
)

// Writer exposes the minimal kafka.Writer surface needed by the publisher.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher emits roster events to a single Kafka topic. The writer is
// created lazily on first publish.
type KafkaPublisher struct {
	brokers []string
	topic   string
	timeout time.Duration

	mu     sync.Mutex
	writer Writer
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		brokers: brokers,
		topic:   topic,
		timeout: timeout,
	}
}

// Publish encodes the event and writes it to the topic. The event type travels
// in a header so consumers can dispatch without decoding the payload.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.RosterEvent) error {
	payload, err := encodePayload(event)
	if err != nil {
		return err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(event.Activity),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	return p.getWriter().WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) getWriter() Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        p.topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		}
	}
	return p.writer
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}

func encodePayload(event domain.RosterEvent) ([]byte, error) {
	now := time.Now().UTC()
	switch event.Type {
	case domain.EventUnregistered:
		return json.Marshal(RosterUnregistered{
			Activity:   event.Activity,
			Email:      event.Email,
			RosterSize: event.RosterSize,
			OccurredAt: now,
		})
	default:
		return json.Marshal(RosterSignedUp{
			Activity:   event.Activity,
			Email:      event.Email,
			RosterSize: event.RosterSize,
			OccurredAt: now,
		})
	}
}

// NopPublisher discards events. Used when no brokers are configured.
type NopPublisher struct{}

// Publish implements domain.EventPublisher.
func (NopPublisher) Publish(context.Context, domain.RosterEvent) error { return nil }
