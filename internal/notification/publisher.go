package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Publisher hands a Change to whatever transport is configured.
type Publisher interface {
	Publish(ctx context.Context, ch Change) error
}

// NopPublisher drops every change. Used when neither Redis nor Kafka is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Change) error { return nil }

// ===========================
// 🔴 Redis pub/sub
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client, channel: Channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, ch Change) error {
	payload, err := json.Marshal(ch)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, payload).Err()
}

// ===========================
// 📨 Kafka topic
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		WriteTimeout:           PublishTimeout,
		AllowAutoTopicCreation: true,
	}}
}

// Publish keys messages by registration so changes to one registration stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, ch Change) error {
	payload, err := json.Marshal(ch)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ch.RegistrationID),
		Value: payload,
		Time:  ch.At,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Notify publishes ch and logs instead of failing: a lost notification must not fail the
// write that caused it.
func Notify(ctx context.Context, p Publisher, ch Change) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, ch); err != nil {
		log.Warn().Err(err).Str("registration_id", ch.RegistrationID).Str("type", string(ch.Type)).
			Msg("⚠️ failed to publish registration change")
	}
}

// Describe names the transport behind p for startup logs.
func Describe(p Publisher) string {
	switch p := p.(type) {
	case *QueuedPublisher:
		return Describe(p.next)
	case *KafkaPublisher:
		return "kafka"
	case *RedisPublisher:
		return "redis"
	case NopPublisher, *NopPublisher:
		return "none"
	}
	return fmt.Sprintf("%T", p)
}
