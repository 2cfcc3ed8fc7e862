package kafka

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

// WriteBatchTimeout caps how long a single event write waits for its batch to fill.
const WriteBatchTimeout = 10 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type DefaultKafkaPublisher struct {
	writer messageWriter
	now    func() time.Time
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           WriteBatchTimeout,
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(w messageWriter) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{writer: w, now: time.Now}
}

func (k *DefaultKafkaPublisher) Publish(ctx context.Context, topic string, msgs ...domain.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	ts := k.now()
	km := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  ts,
			Topic: topic,
		})
	}
	return k.writer.WriteMessages(ctx, km...)
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
