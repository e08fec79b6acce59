package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"emenu-backend/internal/domain"
	"emenu-backend/internal/service"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Create(ctx context.Context, in service.CreateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, in)
	var r0 *domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderServiceInterface) Get(id int) (*domain.Order, error) {
	args := m.Called(id)
	var r0 *domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderServiceInterface) List(status string, tableID int, date string) ([]domain.Order, error) {
	args := m.Called(status, tableID, date)
	var r0 []domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderServiceInterface) ActiveForTable(tableNumber string) ([]domain.Order, error) {
	args := m.Called(tableNumber)
	var r0 []domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderServiceInterface) Update(ctx context.Context, id int, in service.UpdateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, id, in)
	var r0 *domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderServiceInterface) Delete(id int) error {
	return m.Called(id).Error(0)
}

type TableServiceInterface struct {
	mock.Mock
}

func NewTableServiceInterface(t testingT) *TableServiceInterface {
	m := &TableServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableServiceInterface) Create(tableNumber, tableName string) (*domain.Table, error) {
	args := m.Called(tableNumber, tableName)
	var r0 *domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableServiceInterface) List(status string) ([]domain.Table, error) {
	args := m.Called(status)
	var r0 []domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableServiceInterface) GetByNumber(number string) (*domain.Table, error) {
	args := m.Called(number)
	var r0 *domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableServiceInterface) Detail(id int) (*domain.TableDetail, error) {
	args := m.Called(id)
	var r0 *domain.TableDetail
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.TableDetail)
	}
	return r0, args.Error(1)
}

func (m *TableServiceInterface) Update(id int, in service.UpdateTableInput) (*domain.Table, error) {
	args := m.Called(id, in)
	var r0 *domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableServiceInterface) Delete(id int) error {
	return m.Called(id).Error(0)
}

func (m *TableServiceInterface) QRCode(id int) ([]byte, error) {
	args := m.Called(id)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuServiceInterface) ListCategories() ([]domain.Category, error) {
	args := m.Called()
	var r0 []domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Category)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) GetCategory(id int) (*domain.Category, error) {
	args := m.Called(id)
	var r0 *domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Category)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) CreateCategory(slug, name string, sortOrder int) (*domain.Category, error) {
	args := m.Called(slug, name, sortOrder)
	var r0 *domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Category)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) UpdateCategory(id int, in service.UpdateCategoryInput) (*domain.Category, error) {
	args := m.Called(id, in)
	var r0 *domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Category)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) DeleteCategory(id int) error {
	return m.Called(id).Error(0)
}

func (m *MenuServiceInterface) ListItems(f domain.MenuFilter) ([]domain.MenuItem, error) {
	args := m.Called(f)
	var r0 []domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) GetItem(id int) (*domain.MenuItem, error) {
	args := m.Called(id)
	var r0 *domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) CreateItem(in service.CreateMenuItemInput) (*domain.MenuItem, error) {
	args := m.Called(in)
	var r0 *domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) UpdateItem(id int, in service.UpdateMenuItemInput) (*domain.MenuItem, error) {
	args := m.Called(id, in)
	var r0 *domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) DeleteItem(id int) error {
	return m.Called(id).Error(0)
}

type StaffCallServiceInterface struct {
	mock.Mock
}

func NewStaffCallServiceInterface(t testingT) *StaffCallServiceInterface {
	m := &StaffCallServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StaffCallServiceInterface) Create(ctx context.Context, tableNumber, customerName, reason string) (*domain.StaffCall, error) {
	args := m.Called(ctx, tableNumber, customerName, reason)
	var r0 *domain.StaffCall
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.StaffCall)
	}
	return r0, args.Error(1)
}

func (m *StaffCallServiceInterface) List(status string, tableID int) ([]domain.StaffCall, error) {
	args := m.Called(status, tableID)
	var r0 []domain.StaffCall
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.StaffCall)
	}
	return r0, args.Error(1)
}

func (m *StaffCallServiceInterface) ListPending() ([]domain.StaffCall, error) {
	args := m.Called()
	var r0 []domain.StaffCall
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.StaffCall)
	}
	return r0, args.Error(1)
}

func (m *StaffCallServiceInterface) ListForTable(tableNumber string) ([]domain.StaffCall, error) {
	args := m.Called(tableNumber)
	var r0 []domain.StaffCall
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.StaffCall)
	}
	return r0, args.Error(1)
}

func (m *StaffCallServiceInterface) UpdateStatus(ctx context.Context, id int, status string) (*domain.StaffCall, error) {
	args := m.Called(ctx, id, status)
	var r0 *domain.StaffCall
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.StaffCall)
	}
	return r0, args.Error(1)
}

func (m *StaffCallServiceInterface) Delete(id int) error {
	return m.Called(id).Error(0)
}

type PaymentRequestServiceInterface struct {
	mock.Mock
}

func NewPaymentRequestServiceInterface(t testingT) *PaymentRequestServiceInterface {
	m := &PaymentRequestServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentRequestServiceInterface) Create(ctx context.Context, tableNumber, customerName, paymentMethod string) (*domain.PaymentRequest, error) {
	args := m.Called(ctx, tableNumber, customerName, paymentMethod)
	var r0 *domain.PaymentRequest
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.PaymentRequest)
	}
	return r0, args.Error(1)
}

func (m *PaymentRequestServiceInterface) List(status string, tableID int) ([]domain.PaymentRequest, error) {
	args := m.Called(status, tableID)
	var r0 []domain.PaymentRequest
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.PaymentRequest)
	}
	return r0, args.Error(1)
}

func (m *PaymentRequestServiceInterface) ListPending() ([]domain.PaymentRequest, error) {
	args := m.Called()
	var r0 []domain.PaymentRequest
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.PaymentRequest)
	}
	return r0, args.Error(1)
}

func (m *PaymentRequestServiceInterface) ListForTable(tableNumber string) ([]domain.PaymentRequest, error) {
	args := m.Called(tableNumber)
	var r0 []domain.PaymentRequest
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.PaymentRequest)
	}
	return r0, args.Error(1)
}

func (m *PaymentRequestServiceInterface) UpdateStatus(ctx context.Context, id int, status string) (*domain.PaymentRequest, error) {
	args := m.Called(ctx, id, status)
	var r0 *domain.PaymentRequest
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.PaymentRequest)
	}
	return r0, args.Error(1)
}

func (m *PaymentRequestServiceInterface) Delete(id int) error {
	return m.Called(id).Error(0)
}

type EventStore struct {
	mock.Mock
}

func NewEventStore(t testingT) *EventStore {
	m := &EventStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventStore) RecordOrder(ctx context.Context, ev domain.Event) error {
	return m.Called(ctx, ev).Error(0)
}
