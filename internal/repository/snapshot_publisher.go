package repository

import (
	"context"
	"fmt"
	"time"

	"FinPlan/internal/domain/models"
	drepo "FinPlan/internal/domain/repository"
)

// SnapshotEventType tags market context messages.
const SnapshotEventType = "market_context"

type messagePublisher interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
	Close() error
}

// KafkaSnapshotPublisher publishes market contexts keyed by country.
type KafkaSnapshotPublisher struct {
	producer messagePublisher
	topic    string
	timeout  time.Duration
}

// SnapshotEvent is the wire payload.
type SnapshotEvent struct {
	Type        string               `json:"type"`
	PublishedAt time.Time            `json:"published_at"`
	Context     models.MarketContext `json:"context"`
}

func NewKafkaSnapshotPublisher(p messagePublisher, topic string, timeout time.Duration) drepo.SnapshotPublisher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &KafkaSnapshotPublisher{producer: p, topic: topic, timeout: timeout}
}

func (k *KafkaSnapshotPublisher) PublishSnapshot(ctx context.Context, mc models.MarketContext) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), k.timeout)
	defer cancel()
	ev := SnapshotEvent{Type: SnapshotEventType, PublishedAt: time.Now().UTC(), Context: mc}
	if err := k.producer.Publish(ctx, k.topic, []byte(mc.Country), ev); err != nil {
		return fmt.Errorf("publish snapshot %s: %w", mc.Country, err)
	}
	return nil
}

func (k *KafkaSnapshotPublisher) Close() error {
	return k.producer.Close()
}
