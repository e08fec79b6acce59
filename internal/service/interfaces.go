package service

import (
	"context"

	"emenu-backend/internal/domain"
)

type TableRepository interface {
	CreateTable(t *domain.Table) error
	ListTables(status string) ([]domain.Table, error)
	GetTable(id int) (*domain.Table, error)
	GetTableByNumber(number string) (*domain.Table, error)
	UpdateTableName(id int, name string) (int64, error)
	SetTableStatus(id int, status string) (int64, error)
	DeleteTable(id int) (int64, error)
	GetTableQRCode(id int) ([]byte, error)
	SaveTableQRCode(id int, png []byte) error
}

type MenuRepository interface {
	CreateCategory(c *domain.Category) error
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(c *domain.Category) (int64, error)
	DeleteCategory(id int) (int64, error)
	CreateMenuItem(m *domain.MenuItem) error
	ListMenuItems(f domain.MenuFilter) ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	GetMenuItemsByIDs(ids []int) ([]domain.MenuItem, error)
	UpdateMenuItem(m *domain.MenuItem) (int64, error)
	DeleteMenuItem(id int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(o *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders(q domain.OrderQuery) ([]domain.Order, error)
	ListActiveOrdersByTable(tableID int) ([]domain.Order, error)
	UpdateOrder(o *domain.Order) (int64, error)
	DeleteOrder(id int) (int64, error)
}

type StaffCallRepository interface {
	CreateStaffCall(c *domain.StaffCall) error
	ListStaffCalls(q domain.RequestQuery) ([]domain.StaffCall, error)
	ListPendingStaffCalls() ([]domain.StaffCall, error)
	ListStaffCallsByTable(tableID int) ([]domain.StaffCall, error)
	GetStaffCall(id int) (*domain.StaffCall, error)
	UpdateStaffCallStatus(id int, status string) (int64, error)
	DeleteStaffCall(id int) (int64, error)
}

type PaymentRequestRepository interface {
	CreatePaymentRequest(p *domain.PaymentRequest) error
	ListPaymentRequests(q domain.RequestQuery) ([]domain.PaymentRequest, error)
	ListPendingPaymentRequests() ([]domain.PaymentRequest, error)
	ListPaymentRequestsByTable(tableID int) ([]domain.PaymentRequest, error)
	GetPaymentRequest(id int) (*domain.PaymentRequest, error)
	UpdatePaymentRequestStatus(id int, status string) (int64, error)
	DeletePaymentRequest(id int) (int64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

type QRGenerator interface {
	Generate(tableNumber string) ([]byte, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	Get(id int) (*domain.Order, error)
	List(status string, tableID int, date string) ([]domain.Order, error)
	ActiveForTable(tableNumber string) ([]domain.Order, error)
	Update(ctx context.Context, id int, in UpdateOrderInput) (*domain.Order, error)
	Delete(id int) error
}

type TableServiceInterface interface {
	Create(tableNumber, tableName string) (*domain.Table, error)
	List(status string) ([]domain.Table, error)
	GetByNumber(number string) (*domain.Table, error)
	Detail(id int) (*domain.TableDetail, error)
	Update(id int, in UpdateTableInput) (*domain.Table, error)
	Delete(id int) error
	QRCode(id int) ([]byte, error)
}

type MenuServiceInterface interface {
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	CreateCategory(slug, name string, sortOrder int) (*domain.Category, error)
	UpdateCategory(id int, in UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(id int) error
	ListItems(f domain.MenuFilter) ([]domain.MenuItem, error)
	GetItem(id int) (*domain.MenuItem, error)
	CreateItem(in CreateMenuItemInput) (*domain.MenuItem, error)
	UpdateItem(id int, in UpdateMenuItemInput) (*domain.MenuItem, error)
	DeleteItem(id int) error
}

type StaffCallServiceInterface interface {
	Create(ctx context.Context, tableNumber, customerName, reason string) (*domain.StaffCall, error)
	List(status string, tableID int) ([]domain.StaffCall, error)
	ListPending() ([]domain.StaffCall, error)
	ListForTable(tableNumber string) ([]domain.StaffCall, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.StaffCall, error)
	Delete(id int) error
}

type PaymentRequestServiceInterface interface {
	Create(ctx context.Context, tableNumber, customerName, paymentMethod string) (*domain.PaymentRequest, error)
	List(status string, tableID int) ([]domain.PaymentRequest, error)
	ListPending() ([]domain.PaymentRequest, error)
	ListForTable(tableNumber string) ([]domain.PaymentRequest, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.PaymentRequest, error)
	Delete(id int) error
}
