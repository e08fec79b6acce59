package analytics

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"emenu-backend/internal/domain"
)

type EventStore interface {
	RecordOrder(ctx context.Context, ev domain.Event) error
}

var _ EventStore = (*Store)(nil)

// Consumer drains the event topic and feeds order events into the store.
type Consumer struct {
	Reader *kafka.Reader
	Store  EventStore
}

func NewConsumer(reader *kafka.Reader, store EventStore) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[analytics] starting consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[analytics] error reading message: %v", err)
			continue
		}

		var ev domain.Event
		if err := json.Unmarshal(message.Value, &ev); err != nil {
			log.Printf("[analytics] error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, ev)
	}
}

// Process dispatches a single event. Only order placements move counters;
// other event types are audit noise for now.
func (c *Consumer) Process(ctx context.Context, ev domain.Event) {
	if ev.Type != domain.EventOrderCreated {
		return
	}
	if err := c.Store.RecordOrder(ctx, ev); err != nil {
		log.Printf("[analytics] error recording order %d: %v", ev.EntityID, err)
		return
	}
	log.Printf("[analytics] recorded order %d for table %s", ev.EntityID, ev.TableNumber)
}
