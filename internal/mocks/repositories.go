// Package mocks holds hand-maintained testify mocks for the repository and
// service interfaces, in the shape mockery would generate.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"emenu-backend/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type TableRepository struct {
	mock.Mock
}

func NewTableRepository(t testingT) *TableRepository {
	m := &TableRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableRepository) CreateTable(table *domain.Table) error {
	return m.Called(table).Error(0)
}

func (m *TableRepository) ListTables(status string) ([]domain.Table, error) {
	args := m.Called(status)
	var r0 []domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableRepository) GetTable(id int) (*domain.Table, error) {
	args := m.Called(id)
	var r0 *domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableRepository) GetTableByNumber(number string) (*domain.Table, error) {
	args := m.Called(number)
	var r0 *domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableRepository) UpdateTableName(id int, name string) (int64, error) {
	args := m.Called(id, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TableRepository) SetTableStatus(id int, status string) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TableRepository) DeleteTable(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TableRepository) GetTableQRCode(id int) ([]byte, error) {
	args := m.Called(id)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}

func (m *TableRepository) SaveTableQRCode(id int, png []byte) error {
	return m.Called(id, png).Error(0)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) CreateCategory(c *domain.Category) error {
	return m.Called(c).Error(0)
}

func (m *MenuRepository) ListCategories() ([]domain.Category, error) {
	args := m.Called()
	var r0 []domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Category)
	}
	return r0, args.Error(1)
}

func (m *MenuRepository) GetCategory(id int) (*domain.Category, error) {
	args := m.Called(id)
	var r0 *domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Category)
	}
	return r0, args.Error(1)
}

func (m *MenuRepository) UpdateCategory(c *domain.Category) (int64, error) {
	args := m.Called(c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuRepository) DeleteCategory(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuRepository) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuRepository) ListMenuItems(f domain.MenuFilter) ([]domain.MenuItem, error) {
	args := m.Called(f)
	var r0 []domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	args := m.Called(id)
	var r0 *domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuRepository) GetMenuItemsByIDs(ids []int) ([]domain.MenuItem, error) {
	args := m.Called(ids)
	var r0 []domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuRepository) UpdateMenuItem(item *domain.MenuItem) (int64, error) {
	args := m.Called(item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuRepository) DeleteMenuItem(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(o *domain.Order) error {
	return m.Called(o).Error(0)
}

func (m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	args := m.Called(id)
	var r0 *domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderRepository) ListOrders(q domain.OrderQuery) ([]domain.Order, error) {
	args := m.Called(q)
	var r0 []domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderRepository) ListActiveOrdersByTable(tableID int) ([]domain.Order, error) {
	args := m.Called(tableID)
	var r0 []domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderRepository) UpdateOrder(o *domain.Order) (int64, error) {
	args := m.Called(o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) DeleteOrder(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type StaffCallRepository struct {
	mock.Mock
}

func NewStaffCallRepository(t testingT) *StaffCallRepository {
	m := &StaffCallRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StaffCallRepository) CreateStaffCall(c *domain.StaffCall) error {
	return m.Called(c).Error(0)
}

func (m *StaffCallRepository) ListStaffCalls(q domain.RequestQuery) ([]domain.StaffCall, error) {
	args := m.Called(q)
	var r0 []domain.StaffCall
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.StaffCall)
	}
	return r0, args.Error(1)
}

func (m *StaffCallRepository) ListPendingStaffCalls() ([]domain.StaffCall, error) {
	args := m.Called()
	var r0 []domain.StaffCall
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.StaffCall)
	}
	return r0, args.Error(1)
}

func (m *StaffCallRepository) ListStaffCallsByTable(tableID int) ([]domain.StaffCall, error) {
	args := m.Called(tableID)
	var r0 []domain.StaffCall
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.StaffCall)
	}
	return r0, args.Error(1)
}

func (m *StaffCallRepository) GetStaffCall(id int) (*domain.StaffCall, error) {
	args := m.Called(id)
	var r0 *domain.StaffCall
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.StaffCall)
	}
	return r0, args.Error(1)
}

func (m *StaffCallRepository) UpdateStaffCallStatus(id int, status string) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StaffCallRepository) DeleteStaffCall(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type PaymentRequestRepository struct {
	mock.Mock
}

func NewPaymentRequestRepository(t testingT) *PaymentRequestRepository {
	m := &PaymentRequestRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentRequestRepository) CreatePaymentRequest(p *domain.PaymentRequest) error {
	return m.Called(p).Error(0)
}

func (m *PaymentRequestRepository) ListPaymentRequests(q domain.RequestQuery) ([]domain.PaymentRequest, error) {
	args := m.Called(q)
	var r0 []domain.PaymentRequest
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.PaymentRequest)
	}
	return r0, args.Error(1)
}

func (m *PaymentRequestRepository) ListPendingPaymentRequests() ([]domain.PaymentRequest, error) {
	args := m.Called()
	var r0 []domain.PaymentRequest
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.PaymentRequest)
	}
	return r0, args.Error(1)
}

func (m *PaymentRequestRepository) ListPaymentRequestsByTable(tableID int) ([]domain.PaymentRequest, error) {
	args := m.Called(tableID)
	var r0 []domain.PaymentRequest
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.PaymentRequest)
	}
	return r0, args.Error(1)
}

func (m *PaymentRequestRepository) GetPaymentRequest(id int) (*domain.PaymentRequest, error) {
	args := m.Called(id)
	var r0 *domain.PaymentRequest
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.PaymentRequest)
	}
	return r0, args.Error(1)
}

func (m *PaymentRequestRepository) UpdatePaymentRequestStatus(id int, status string) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PaymentRequestRepository) DeletePaymentRequest(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) Publish(ctx context.Context, ev domain.Event) error {
	return m.Called(ctx, ev).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(tableNumber string) ([]byte, error) {
	args := m.Called(tableNumber)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}
