package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source ./producer.go -destination=./mocks/producer.go -package=mock_kafka

type Message struct {
	Key   []byte
	Value []byte
}

type Producer interface {
	SendMessages(ctx context.Context, topic string, msgs ...Message) error
	Close() error
}

// WriterProducer writes to the brokers through a kafka-go Writer. The topic is
// chosen per call.
type WriterProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewWriterProducer(brokers []string, logger *zap.Logger) *WriterProducer {
	logger.Info("initialized kafka producer", zap.Strings("brokers", brokers))
	return &WriterProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
		logger: logger,
	}
}

func (p *WriterProducer) SendMessages(ctx context.Context, topic string, msgs ...Message) error {
	out := make([]kafka.Message, len(msgs))
	for i, m := range msgs {
		out[i] = kafka.Message{Topic: topic, Key: m.Key, Value: m.Value}
	}
	if err := p.writer.WriteMessages(ctx, out...); err != nil {
		return fmt.Errorf("failed to write %d messages to %s: %w", len(msgs), topic, err)
	}
	return nil
}

func (p *WriterProducer) Close() error {
	p.logger.Info("closing kafka producer")
	return p.writer.Close()
}

// LogProducer writes messages to the log instead of a broker.
type LogProducer struct {
	logger *zap.Logger
}

func NewLogProducer(logger *zap.Logger) *LogProducer {
	return &LogProducer{logger: logger.With(zap.String("producer", "log"))}
}

func (p *LogProducer) SendMessages(ctx context.Context, topic string, msgs ...Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, m := range msgs {
		p.logger.Info("audit record",
			zap.String("topic", topic),
			zap.ByteString("key", m.Key),
			zap.ByteString("value", m.Value),
		)
	}
	return nil
}

func (p *LogProducer) Close() error {
	return p.logger.Sync()
}
