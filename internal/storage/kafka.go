package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"emenu-backend/internal/domain"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish keys messages by table number so per-table event order is preserved
// within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, ev domain.Event) error {
	payload, _ := json.Marshal(ev)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.TableNumber),
		Value: payload,
	})
}
