package notify

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"emenu-backend/internal/domain"
)

const (
	defaultInterval = 5 * time.Second
	defaultAckDelay = 1500 * time.Millisecond
)

// Poller watches one table and converts observed status transitions into
// chat messages. Messages are delivered through the OnMessage callback and
// the full log is persisted via the Cache after every tick.
type Poller struct {
	tableNumber string
	fetcher     Fetcher
	cache       Cache
	onMessage   func(Message)

	Interval time.Duration
	AckDelay time.Duration

	mu    sync.Mutex
	state *State
}

func NewPoller(tableNumber string, fetcher Fetcher, cache Cache, onMessage func(Message)) *Poller {
	return &Poller{
		tableNumber: tableNumber,
		fetcher:     fetcher,
		cache:       cache,
		onMessage:   onMessage,
		Interval:    defaultInterval,
		AckDelay:    defaultAckDelay,
		state:       NewState(),
	}
}

// Run restores persisted state, then ticks until the context is cancelled.
// Individual tick failures are logged and the loop keeps going.
func (p *Poller) Run(ctx context.Context) {
	if cached, err := p.cache.Load(ctx, p.tableNumber); err != nil {
		log.Printf("[notify] table %s: failed to load cached state: %v", p.tableNumber, err)
	} else if cached != nil {
		p.mu.Lock()
		p.state = cached
		p.mu.Unlock()
	}

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Tick(ctx); err != nil {
				log.Printf("[notify] table %s: %v", p.tableNumber, err)
			}
		}
	}
}

// Tick performs one poll cycle.
func (p *Poller) Tick(ctx context.Context) error {
	table, err := p.fetcher.Table(ctx, p.tableNumber)
	if err != nil {
		return fmt.Errorf("fetch table: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// A flip back to AVAILABLE means the visit ended: the payment went
	// through and the next guest starts from a clean log.
	if p.state.TableStatus != "" && p.state.TableStatus != table.Status && table.Status == domain.TableAvailable {
		p.state = NewState()
		if err := p.cache.Clear(ctx, p.tableNumber); err != nil {
			log.Printf("[notify] table %s: failed to clear cache: %v", p.tableNumber, err)
		}
	}
	p.state.TableStatus = table.Status

	orders, err := p.fetcher.ActiveOrders(ctx, p.tableNumber)
	if err != nil {
		return fmt.Errorf("fetch orders: %w", err)
	}
	for _, order := range orders {
		prev, seen := p.state.Orders[order.ID]
		if seen && prev != order.Status {
			switch {
			case prev == domain.OrderPending && order.Status == domain.OrderConfirmed:
				p.emit(Message{
					From:      FromRestaurant,
					Content:   fmt.Sprintf("Your order %s has been confirmed and is being prepared.", order.OrderNumber),
					Category:  CategoryOrder,
					RelatedID: order.ID,
					Status:    order.Status,
				})
			case order.Status == domain.OrderCancelled:
				p.emit(Message{
					From:      FromRestaurant,
					Content:   fmt.Sprintf("Your order %s has been cancelled. Please contact our staff if you have questions.", order.OrderNumber),
					Category:  CategoryOrder,
					RelatedID: order.ID,
					Status:    order.Status,
				})
			}
		}
		p.state.Orders[order.ID] = order.Status
	}

	calls, err := p.fetcher.StaffCalls(ctx, p.tableNumber)
	if err != nil {
		return fmt.Errorf("fetch staff calls: %w", err)
	}
	for _, call := range calls {
		prev, seen := p.state.StaffCalls[call.ID]
		if seen && prev != call.Status && call.Status == domain.CallAcknowledged {
			p.emit(Message{
				From:      FromRestaurant,
				Content:   "Our staff is on the way to your table.",
				Category:  CategoryStaffCall,
				RelatedID: call.ID,
				Status:    call.Status,
			})
		}
		p.state.StaffCalls[call.ID] = call.Status
	}

	payments, err := p.fetcher.PaymentRequests(ctx, p.tableNumber)
	if err != nil {
		return fmt.Errorf("fetch payment requests: %w", err)
	}
	for _, payment := range payments {
		prev, seen := p.state.Payments[payment.ID]
		if seen && prev != payment.Status && payment.Status == domain.PaymentProcessing {
			p.emit(Message{
				From:      FromRestaurant,
				Content:   "Our staff is coming to process your payment.",
				Category:  CategoryPaymentCall,
				RelatedID: payment.ID,
				Status:    payment.Status,
			})
		}
		p.state.Payments[payment.ID] = payment.Status
	}

	if err := p.cache.Save(ctx, p.tableNumber, p.state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// RecordOrderPlaced registers an order created from this table so the next
// tick does not re-announce its initial status, and acknowledges it locally.
func (p *Poller) RecordOrderPlaced(order *domain.Order) {
	p.mu.Lock()
	p.state.Orders[order.ID] = order.Status
	p.emit(Message{
		From:      FromCustomer,
		Content:   fmt.Sprintf("Order %s placed.", order.OrderNumber),
		Category:  CategoryOrder,
		RelatedID: order.ID,
		Status:    order.Status,
	})
	p.mu.Unlock()

	p.delayedAck(Message{
		From:      FromRestaurant,
		Content:   "We have received your order and will confirm it shortly.",
		Category:  CategoryOrder,
		RelatedID: order.ID,
	})
}

func (p *Poller) RecordStaffCall(call *domain.StaffCall) {
	p.mu.Lock()
	p.state.StaffCalls[call.ID] = call.Status
	p.emit(Message{
		From:      FromCustomer,
		Content:   fmt.Sprintf("Staff called: %s.", call.Reason),
		Category:  CategoryStaffCall,
		RelatedID: call.ID,
		Status:    call.Status,
	})
	p.mu.Unlock()

	p.delayedAck(Message{
		From:      FromRestaurant,
		Content:   "We have received your request. Staff will be with you shortly.",
		Category:  CategoryStaffCall,
		RelatedID: call.ID,
	})
}

func (p *Poller) RecordPaymentRequest(request *domain.PaymentRequest) {
	p.mu.Lock()
	p.state.Payments[request.ID] = request.Status
	p.emit(Message{
		From:      FromCustomer,
		Content:   fmt.Sprintf("Payment requested (%s).", request.PaymentMethod),
		Category:  CategoryPaymentCall,
		RelatedID: request.ID,
		Status:    request.Status,
	})
	p.mu.Unlock()

	p.delayedAck(Message{
		From:      FromRestaurant,
		Content:   "We have received your payment request. Staff will be with you shortly.",
		Category:  CategoryPaymentCall,
		RelatedID: request.ID,
	})
}

// Messages returns a copy of the current chat log.
func (p *Poller) Messages() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Message, len(p.state.Messages))
	copy(out, p.state.Messages)
	return out
}

// emit appends to the log and notifies the callback. Caller holds p.mu.
func (p *Poller) emit(msg Message) {
	msg.ID = p.state.NextID
	p.state.NextID++
	msg.Timestamp = time.Now()
	p.state.Messages = append(p.state.Messages, msg)
	if p.onMessage != nil {
		p.onMessage(msg)
	}
}

func (p *Poller) delayedAck(msg Message) {
	time.AfterFunc(p.AckDelay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.emit(msg)
	})
}
