package notification

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Consumer relays changes from the Kafka topic to a local sink, normally Redis pub/sub, so
// every server instance streams every change to its own SSE clients.
type Consumer struct {
	reader MessageReader
	sink   Publisher
}

func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 1 << 20,
	})
}

func NewConsumer(reader MessageReader, sink Publisher) *Consumer {
	return &Consumer{reader: reader, sink: sink}
}

// Run reads until ctx is canceled. Malformed messages are logged and skipped.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().Msg("🚀 registration change consumer started")
	defer func() {
		if err := c.reader.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️ kafka reader close")
		}
	}()

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info().Msg("🛑 registration change consumer stopped")
				return nil
			}
			return err
		}

		var ch Change
		if err := json.Unmarshal(msg.Value, &ch); err != nil {
			log.Warn().Err(err).Int64("offset", msg.Offset).Msg("⚠️ skipping malformed change message")
			continue
		}
		Notify(ctx, c.sink, ch)
	}
}
