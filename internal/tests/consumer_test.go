package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"emenu-backend/internal/analytics"
	"emenu-backend/internal/domain"
	"emenu-backend/internal/mocks"

	"github.com/stretchr/testify/mock"
)

func TestConsumer_Process(t *testing.T) {
	ctx := context.Background()

	orderEvent := domain.Event{
		Type:        domain.EventOrderCreated,
		EntityID:    7,
		TableID:     3,
		TableNumber: "05",
		TotalAmount: 130000,
		Items:       []domain.EventItem{{MenuItemID: 1, Quantity: 2, UnitPrice: 65000}},
		Timestamp:   time.Now(),
	}

	tests := []struct {
		name       string
		event      domain.Event
		setupStore func(*mocks.EventStore)
	}{
		{
			name:  "order_created_recorded",
			event: orderEvent,
			setupStore: func(store *mocks.EventStore) {
				store.On("RecordOrder", ctx, mock.MatchedBy(func(ev domain.Event) bool {
					return ev.EntityID == 7 && ev.TotalAmount == 130000
				})).Return(nil).Once()
			},
		},
		{
			name:  "store_error_is_swallowed",
			event: orderEvent,
			setupStore: func(store *mocks.EventStore) {
				store.On("RecordOrder", ctx, mock.Anything).Return(errors.New("redis down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewEventStore(t)
			testCase.setupStore(store)

			consumer := &analytics.Consumer{Store: store}
			consumer.Process(ctx, testCase.event)
		})
	}
}

func TestConsumer_IgnoresOtherEventTypes(t *testing.T) {
	store := mocks.NewEventStore(t)
	consumer := &analytics.Consumer{Store: store}

	for _, eventType := range []string{
		domain.EventOrderStatusChanged,
		domain.EventStaffCallCreated,
		domain.EventPaymentRequested,
	} {
		consumer.Process(context.Background(), domain.Event{Type: eventType, EntityID: 1})
	}
	store.AssertNotCalled(t, "RecordOrder")
}
