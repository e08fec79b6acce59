package domain

import "time"

// Table statuses.
const (
	TableAvailable = "AVAILABLE"
	TableOccupied  = "OCCUPIED"
)

// Order statuses.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

// Staff call statuses.
const (
	CallPending      = "PENDING"
	CallAcknowledged = "ACKNOWLEDGED"
	CallCompleted    = "COMPLETED"
)

// Payment request statuses.
const (
	PaymentPending    = "PENDING"
	PaymentProcessing = "PROCESSING"
	PaymentCompleted  = "COMPLETED"
)

func ValidTableStatus(s string) bool {
	return s == TableAvailable || s == TableOccupied
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

func ValidStaffCallStatus(s string) bool {
	switch s {
	case CallPending, CallAcknowledged, CallCompleted:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentCompleted:
		return true
	}
	return false
}

type Category struct {
	ID        int        `json:"id"`
	Slug      string     `json:"slug"`
	Name      string     `json:"name"`
	SortOrder int        `json:"sortOrder"`
	IsActive  bool       `json:"isActive"`
	MenuItems []MenuItem `json:"menuItems,omitempty"`
}

type CategoryRef struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Prices are whole VND.
type MenuItem struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       int          `json:"price"`
	Image       string       `json:"image"`
	CategoryID  int          `json:"categoryId"`
	IsActive    bool         `json:"isActive"`
	IsAvailable bool         `json:"isAvailable"`
	Category    *CategoryRef `json:"category,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type Table struct {
	ID          int       `json:"id"`
	TableNumber string    `json:"tableNumber"`
	TableName   string    `json:"tableName"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TableRef struct {
	ID          int    `json:"id"`
	TableNumber string `json:"tableNumber"`
	TableName   string `json:"tableName"`
}

// TableDetail is the consolidated "what does this table need" view for staff:
// active orders plus pending staff calls and payment requests.
type TableDetail struct {
	Table
	Orders          []Order          `json:"orders"`
	StaffCalls      []StaffCall      `json:"staffCalls"`
	PaymentRequests []PaymentRequest `json:"paymentRequests"`
}

type Order struct {
	ID           int         `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	TableID      int         `json:"tableId"`
	CustomerName string      `json:"customerName"`
	TotalAmount  int         `json:"totalAmount"`
	Notes        string      `json:"notes,omitempty"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	Table        *TableRef   `json:"table,omitempty"`
	OrderItems   []OrderItem `json:"orderItems"`
}

// OrderItem snapshots UnitPrice and ItemName at order time so history is
// unaffected by later menu edits or deletes.
type OrderItem struct {
	ID         int    `json:"id"`
	OrderID    int    `json:"orderId"`
	MenuItemID int    `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unitPrice"`
	ItemName   string `json:"itemName"`
	Notes      string `json:"notes,omitempty"`
}

type StaffCall struct {
	ID           int       `json:"id"`
	TableID      int       `json:"tableId"`
	CustomerName string    `json:"customerName"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	Table        *TableRef `json:"table,omitempty"`
}

type PaymentRequest struct {
	ID            int       `json:"id"`
	TableID       int       `json:"tableId"`
	CustomerName  string    `json:"customerName"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	Table         *TableRef `json:"table,omitempty"`
}

type MenuFilter struct {
	CategorySlug    string
	Search          string
	IncludeInactive bool
	OnlyAvailable   bool
}

// OrderQuery filters order listings. From/To bound createdAt as a half-open
// interval [From, To).
type OrderQuery struct {
	Status  string
	TableID int
	From    time.Time
	To      time.Time
}

type RequestQuery struct {
	Status  string
	TableID int
}
