package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"emenu-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	table    domain.Table
	orders   []domain.Order
	calls    []domain.StaffCall
	payments []domain.PaymentRequest
}

func (f *stubFetcher) Table(ctx context.Context, tableNumber string) (*domain.Table, error) {
	t := f.table
	return &t, nil
}

func (f *stubFetcher) ActiveOrders(ctx context.Context, tableNumber string) ([]domain.Order, error) {
	return f.orders, nil
}

func (f *stubFetcher) StaffCalls(ctx context.Context, tableNumber string) ([]domain.StaffCall, error) {
	return f.calls, nil
}

func (f *stubFetcher) PaymentRequests(ctx context.Context, tableNumber string) ([]domain.PaymentRequest, error) {
	return f.payments, nil
}

type recorder struct {
	mu       sync.Mutex
	messages []Message
}

func (r *recorder) record(msg Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *recorder) all() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

func newTestPoller(fetcher *stubFetcher) (*Poller, *recorder, *MemoryCache) {
	rec := &recorder{}
	cache := NewMemoryCache()
	p := NewPoller("05", fetcher, cache, rec.record)
	p.AckDelay = 5 * time.Millisecond
	return p, rec, cache
}

func TestPoller_OrderConfirmedEmitsExactlyOnce(t *testing.T) {
	ctx := context.Background()
	fetcher := &stubFetcher{
		table:  domain.Table{ID: 3, TableNumber: "05", Status: domain.TableOccupied},
		orders: []domain.Order{{ID: 7, OrderNumber: "ORD-20260831-0042", Status: domain.OrderPending}},
	}
	p, rec, _ := newTestPoller(fetcher)

	// First tick only registers the baseline.
	require.NoError(t, p.Tick(ctx))
	assert.Empty(t, rec.all())

	fetcher.orders[0].Status = domain.OrderConfirmed
	require.NoError(t, p.Tick(ctx))

	messages := rec.all()
	require.Len(t, messages, 1)
	assert.Equal(t, FromRestaurant, messages[0].From)
	assert.Equal(t, CategoryOrder, messages[0].Category)
	assert.Contains(t, messages[0].Content, "ORD-20260831-0042")

	// Same status again must not re-announce.
	require.NoError(t, p.Tick(ctx))
	assert.Len(t, rec.all(), 1)
}

func TestPoller_OrderCancelled(t *testing.T) {
	ctx := context.Background()
	fetcher := &stubFetcher{
		table:  domain.Table{ID: 3, TableNumber: "05", Status: domain.TableOccupied},
		orders: []domain.Order{{ID: 7, OrderNumber: "ORD-20260831-0042", Status: domain.OrderConfirmed}},
	}
	p, rec, _ := newTestPoller(fetcher)

	require.NoError(t, p.Tick(ctx))
	fetcher.orders[0].Status = domain.OrderCancelled
	require.NoError(t, p.Tick(ctx))

	messages := rec.all()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Content, "cancelled")
}

func TestPoller_StaffCallAndPaymentTransitions(t *testing.T) {
	ctx := context.Background()
	fetcher := &stubFetcher{
		table:    domain.Table{ID: 3, TableNumber: "05", Status: domain.TableOccupied},
		calls:    []domain.StaffCall{{ID: 4, Status: domain.CallPending}},
		payments: []domain.PaymentRequest{{ID: 9, Status: domain.PaymentPending}},
	}
	p, rec, _ := newTestPoller(fetcher)

	require.NoError(t, p.Tick(ctx))
	fetcher.calls[0].Status = domain.CallAcknowledged
	fetcher.payments[0].Status = domain.PaymentProcessing
	require.NoError(t, p.Tick(ctx))

	messages := rec.all()
	require.Len(t, messages, 2)
	assert.Equal(t, CategoryStaffCall, messages[0].Category)
	assert.Equal(t, CategoryPaymentCall, messages[1].Category)

	// Completed staff call makes no further noise.
	fetcher.calls[0].Status = domain.CallCompleted
	require.NoError(t, p.Tick(ctx))
	assert.Len(t, rec.all(), 2)
}

func TestPoller_TableAvailableResetsEverything(t *testing.T) {
	ctx := context.Background()
	fetcher := &stubFetcher{
		table:  domain.Table{ID: 3, TableNumber: "05", Status: domain.TableOccupied},
		orders: []domain.Order{{ID: 7, OrderNumber: "ORD-20260831-0042", Status: domain.OrderPending}},
	}
	p, rec, cache := newTestPoller(fetcher)

	require.NoError(t, p.Tick(ctx))
	fetcher.orders[0].Status = domain.OrderConfirmed
	require.NoError(t, p.Tick(ctx))
	require.Len(t, rec.all(), 1)
	assert.NotEmpty(t, p.Messages())

	// Payment completed: table flips back, the visit is over.
	fetcher.table.Status = domain.TableAvailable
	fetcher.orders = nil
	require.NoError(t, p.Tick(ctx))

	assert.Empty(t, p.Messages())

	state, err := cache.Load(ctx, "05")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Empty(t, state.Messages)
	assert.Equal(t, domain.TableAvailable, state.TableStatus)

	// The confirmation already announced must not resurface for the next guest.
	fetcher.orders = []domain.Order{{ID: 7, OrderNumber: "ORD-20260831-0042", Status: domain.OrderConfirmed}}
	fetcher.table.Status = domain.TableOccupied
	require.NoError(t, p.Tick(ctx))
	assert.Len(t, rec.all(), 1)
}

func TestPoller_RecordOrderPlaced(t *testing.T) {
	ctx := context.Background()
	fetcher := &stubFetcher{
		table:  domain.Table{ID: 3, TableNumber: "05", Status: domain.TableOccupied},
		orders: []domain.Order{{ID: 7, OrderNumber: "ORD-20260831-0042", Status: domain.OrderPending}},
	}
	p, rec, _ := newTestPoller(fetcher)

	p.RecordOrderPlaced(&domain.Order{ID: 7, OrderNumber: "ORD-20260831-0042", Status: domain.OrderPending})

	messages := rec.all()
	require.Len(t, messages, 1)
	assert.Equal(t, FromCustomer, messages[0].From)

	// Canned acknowledgement arrives after the configured delay.
	assert.Eventually(t, func() bool {
		return len(rec.all()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, FromRestaurant, rec.all()[1].From)

	// The locally registered PENDING state suppresses re-announcing it.
	require.NoError(t, p.Tick(ctx))
	assert.Len(t, rec.all(), 2)
}

func TestPoller_StatePersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	fetcher := &stubFetcher{
		table:  domain.Table{ID: 3, TableNumber: "05", Status: domain.TableOccupied},
		orders: []domain.Order{{ID: 7, OrderNumber: "ORD-20260831-0042", Status: domain.OrderPending}},
	}
	p, _, cache := newTestPoller(fetcher)
	require.NoError(t, p.Tick(ctx))

	state, err := cache.Load(ctx, "05")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, domain.OrderPending, state.Orders[7])
	assert.Equal(t, domain.TableOccupied, state.TableStatus)
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	loaded, err := cache.Load(ctx, "05")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	state := NewState()
	state.TableStatus = domain.TableOccupied
	state.Orders[7] = domain.OrderPending
	require.NoError(t, cache.Save(ctx, "05", state))

	loaded, err = cache.Load(ctx, "05")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, domain.OrderPending, loaded.Orders[7])

	require.NoError(t, cache.Clear(ctx, "05"))
	loaded, err = cache.Load(ctx, "05")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
