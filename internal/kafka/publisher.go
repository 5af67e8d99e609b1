package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Record is one JSON message to publish.
type Record struct {
	Key   string
	Value any
}

// Publisher encodes records as JSON and sends them to a single topic in one call.
type Publisher struct {
	producer Producer
	topic    string
	logger   *zap.Logger
}

func NewPublisher(producer Producer, topic string, logger *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With(zap.String("topic", topic)),
	}
}

func (p *Publisher) Publish(ctx context.Context, records ...Record) error {
	if len(records) == 0 {
		return nil
	}

	msgs := make([]Message, 0, len(records))
	for _, r := range records {
		value, err := json.Marshal(r.Value)
		if err != nil {
			p.logger.Error("skipping record that cannot be encoded", zap.String("key", r.Key), zap.Error(err))
			continue
		}
		msgs = append(msgs, Message{Key: []byte(r.Key), Value: value})
	}
	if len(msgs) == 0 {
		return fmt.Errorf("no encodable records in batch of %d", len(records))
	}

	if err := p.producer.SendMessages(ctx, p.topic, msgs...); err != nil {
		return fmt.Errorf("failed to publish batch: %w", err)
	}
	return nil
}

// Close shuts the underlying producer down.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
