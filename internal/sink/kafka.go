package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"solana-buy-tracker/internal/discovery"
	"solana-buy-tracker/internal/domain"
)

// MessageWriter is the subset of *kafka.Writer used by Kafka.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// BuyEvent is the message value published for each discovered buy.
type BuyEvent struct {
	Token        string               `json:"token"`
	Buy          domain.DiscoveredBuy `json:"buy"`
	DiscoveredAt int64                `json:"discoveredAt"` // Unix ms
}

// Kafka publishes discovered buys to a topic, keyed by token.
type Kafka struct {
	writer MessageWriter
	topic  string
	now    func() time.Time
}

// NewKafka creates a publisher writing to topic on brokers.
func NewKafka(brokers []string, topic string) *Kafka {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return NewKafkaWithWriter(writer, topic)
}

// NewKafkaWithWriter creates a publisher over an existing writer.
func NewKafkaWithWriter(writer MessageWriter, topic string) *Kafka {
	return &Kafka{writer: writer, topic: topic, now: time.Now}
}

var _ discovery.BuySink = (*Kafka)(nil)

// Name returns the sink name used in logs and metrics.
func (k *Kafka) Name() string {
	return "kafka"
}

// Record publishes buy. The token is the message key so buys of one token
// land on one partition in discovery order.
func (k *Kafka) Record(ctx context.Context, token string, buy *domain.DiscoveredBuy) error {
	now := k.now()
	value, err := json.Marshal(BuyEvent{
		Token:        token,
		Buy:          *buy,
		DiscoveredAt: now.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("marshal buy event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(token),
		Value: value,
		Time:  now,
		Headers: []kafka.Header{
			{Key: "tx_hash", Value: []byte(buy.Hash)},
		},
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write buy event to %s: %w", k.topic, err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (k *Kafka) Close() error {
	return k.writer.Close()
}
