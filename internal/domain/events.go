package domain

import "time"

// Event types published to the events topic.
const (
	EventOrderCreated           = "order_created"
	EventOrderStatusChanged     = "order_status_changed"
	EventStaffCallCreated       = "staff_call_created"
	EventStaffCallStatusChanged = "staff_call_status_changed"
	EventPaymentRequested       = "payment_requested"
	EventPaymentStatusChanged   = "payment_status_changed"
)

type EventItem struct {
	MenuItemID int `json:"menuItemId"`
	Quantity   int `json:"quantity"`
	UnitPrice  int `json:"unitPrice"`
}

type Event struct {
	Type        string      `json:"type"`
	EntityID    int         `json:"entityId"`
	TableID     int         `json:"tableId"`
	TableNumber string      `json:"tableNumber"`
	Status      string      `json:"status"`
	TotalAmount int         `json:"totalAmount,omitempty"`
	Items       []EventItem `json:"items,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}
