// Package notify reimplements the table-side chat feed: it polls the API for
// a single table, diffs record statuses against the last observed ones, and
// turns transitions into chat messages.
package notify

import "time"

const (
	FromCustomer   = "customer"
	FromRestaurant = "restaurant"

	CategoryOrder       = "order"
	CategoryStaffCall   = "staff-call"
	CategoryPaymentCall = "payment-call"
)

// Message is one entry of a table's chat log.
type Message struct {
	ID        int       `json:"id"`
	From      string    `json:"from"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	RelatedID int       `json:"relatedId,omitempty"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// State is everything a poller remembers between ticks. It round-trips
// through the Cache so a restarted client resumes where it left off.
type State struct {
	TableStatus string         `json:"tableStatus"`
	Orders      map[int]string `json:"orders"`
	StaffCalls  map[int]string `json:"staffCalls"`
	Payments    map[int]string `json:"payments"`
	Messages    []Message      `json:"messages"`
	NextID      int            `json:"nextId"`
}

func NewState() *State {
	return &State{
		Orders:     make(map[int]string),
		StaffCalls: make(map[int]string),
		Payments:   make(map[int]string),
		NextID:     1,
	}
}
