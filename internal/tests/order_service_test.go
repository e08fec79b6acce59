package tests

import (
	"context"
	"database/sql"
	"testing"

	"emenu-backend/internal/domain"
	"emenu-backend/internal/mocks"
	"emenu-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderService(t *testing.T) (*service.OrderService, *mocks.OrderRepository, *mocks.TableRepository, *mocks.MenuRepository, *mocks.EventPublisher) {
	orders := mocks.NewOrderRepository(t)
	tables := mocks.NewTableRepository(t)
	menu := mocks.NewMenuRepository(t)
	publisher := mocks.NewEventPublisher(t)
	return service.NewOrderService(orders, tables, menu, publisher), orders, tables, menu, publisher
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	table := &domain.Table{ID: 3, TableNumber: "05", TableName: "Window seat", Status: domain.TableAvailable}
	pho := domain.MenuItem{ID: 1, Name: "Pho Bo", Price: 65000, IsActive: true, IsAvailable: true}
	tea := domain.MenuItem{ID: 2, Name: "Iced Tea", Price: 15000, IsActive: true, IsAvailable: true}

	input := service.CreateOrderInput{
		TableNumber:  "05",
		CustomerName: "Linh",
		Items: []service.CreateOrderItemInput{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	}

	t.Run("success_snapshots_prices_and_occupies_table", func(t *testing.T) {
		svc, orders, tables, menu, publisher := newOrderService(t)

		tables.On("GetTableByNumber", "05").Return(table, nil).Once()
		menu.On("GetMenuItemsByIDs", []int{1, 2}).Return([]domain.MenuItem{pho, tea}, nil).Once()
		orders.On("CreateOrder", mock.MatchedBy(func(o *domain.Order) bool {
			return o.TotalAmount == 2*65000+15000 &&
				len(o.OrderItems) == 2 &&
				o.OrderItems[0].UnitPrice == 65000 &&
				o.OrderItems[0].ItemName == "Pho Bo"
		})).Return(nil).Once()
		tables.On("SetTableStatus", 3, domain.TableOccupied).Return(int64(1), nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
			return ev.Type == domain.EventOrderCreated && ev.TableNumber == "05" && len(ev.Items) == 2
		})).Return(nil).Once()

		order, err := svc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, 145000, order.TotalAmount)
		assert.Regexp(t, `^ORD-\d{8}-\d{4}$`, order.OrderNumber)
	})

	t.Run("unknown_menu_item_aborts_order", func(t *testing.T) {
		svc, orders, tables, menu, _ := newOrderService(t)

		tables.On("GetTableByNumber", "05").Return(table, nil).Once()
		menu.On("GetMenuItemsByIDs", []int{1, 2}).Return([]domain.MenuItem{pho}, nil).Once()

		_, err := svc.Create(ctx, input)
		assert.True(t, service.IsValidation(err))
		assert.Contains(t, err.Error(), "menu item 2")
		orders.AssertNotCalled(t, "CreateOrder")
		tables.AssertNotCalled(t, "SetTableStatus")
	})

	t.Run("inactive_menu_item_aborts_order", func(t *testing.T) {
		svc, _, tables, menu, _ := newOrderService(t)

		inactive := pho
		inactive.IsActive = false
		tables.On("GetTableByNumber", "05").Return(table, nil).Once()
		menu.On("GetMenuItemsByIDs", []int{1, 2}).Return([]domain.MenuItem{inactive, tea}, nil).Once()

		_, err := svc.Create(ctx, input)
		assert.True(t, service.IsValidation(err))
	})

	t.Run("unavailable_menu_item_aborts_order", func(t *testing.T) {
		svc, orders, tables, menu, _ := newOrderService(t)

		soldOut := pho
		soldOut.IsAvailable = false
		tables.On("GetTableByNumber", "05").Return(table, nil).Once()
		menu.On("GetMenuItemsByIDs", []int{1, 2}).Return([]domain.MenuItem{soldOut, tea}, nil).Once()

		_, err := svc.Create(ctx, input)
		assert.True(t, service.IsValidation(err))
		assert.Contains(t, err.Error(), "unavailable")
		orders.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("table_not_found", func(t *testing.T) {
		svc, _, tables, _, _ := newOrderService(t)

		tables.On("GetTableByNumber", "99").Return(nil, sql.ErrNoRows).Once()

		in := input
		in.TableNumber = "99"
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, service.ErrTableNotFound)
	})

	t.Run("missing_fields", func(t *testing.T) {
		svc, _, _, _, _ := newOrderService(t)

		_, err := svc.Create(ctx, service.CreateOrderInput{TableNumber: "05"})
		assert.True(t, service.IsValidation(err))
	})

	t.Run("non_positive_quantity", func(t *testing.T) {
		svc, _, _, _, _ := newOrderService(t)

		_, err := svc.Create(ctx, service.CreateOrderInput{
			TableNumber:  "05",
			CustomerName: "Linh",
			Items:        []service.CreateOrderItemInput{{MenuItemID: 1, Quantity: 0}},
		})
		assert.True(t, service.IsValidation(err))
	})

	t.Run("order_number_conflict_retries", func(t *testing.T) {
		svc, orders, tables, menu, publisher := newOrderService(t)

		tables.On("GetTableByNumber", "05").Return(table, nil).Once()
		menu.On("GetMenuItemsByIDs", []int{1, 2}).Return([]domain.MenuItem{pho, tea}, nil).Once()
		orders.On("CreateOrder", mock.Anything).Return(domain.ErrDuplicate).Once()
		orders.On("CreateOrder", mock.Anything).Return(nil).Once()
		tables.On("SetTableStatus", 3, domain.TableOccupied).Return(int64(1), nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.Create(ctx, input)
		assert.NoError(t, err)
	})

	t.Run("order_number_conflict_exhausted", func(t *testing.T) {
		svc, orders, tables, menu, _ := newOrderService(t)

		tables.On("GetTableByNumber", "05").Return(table, nil).Once()
		menu.On("GetMenuItemsByIDs", []int{1, 2}).Return([]domain.MenuItem{pho, tea}, nil).Once()
		orders.On("CreateOrder", mock.Anything).Return(domain.ErrDuplicate).Times(5)

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, service.ErrOrderNumberExhausted)
		tables.AssertNotCalled(t, "SetTableStatus")
	})
}

func TestOrderService_List(t *testing.T) {
	t.Run("date_filter_is_half_open_day", func(t *testing.T) {
		svc, orders, _, _, _ := newOrderService(t)

		orders.On("ListOrders", mock.MatchedBy(func(q domain.OrderQuery) bool {
			return q.Status == domain.OrderPending &&
				q.TableID == 3 &&
				q.To.Sub(q.From).Hours() == 24
		})).Return([]domain.Order{}, nil).Once()

		_, err := svc.List(domain.OrderPending, 3, "2026-08-31")
		assert.NoError(t, err)
	})

	t.Run("invalid_date_rejected", func(t *testing.T) {
		svc, orders, _, _, _ := newOrderService(t)

		_, err := svc.List("", 0, "31-08-2026")
		assert.True(t, service.IsValidation(err))
		orders.AssertNotCalled(t, "ListOrders")
	})
}

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()
	confirmed := domain.OrderConfirmed

	stored := func() *domain.Order {
		return &domain.Order{
			ID:          7,
			OrderNumber: "ORD-20260831-0042",
			TableID:     3,
			Status:      domain.OrderPending,
			Table:       &domain.TableRef{ID: 3, TableNumber: "05"},
		}
	}

	t.Run("status_change_publishes_event", func(t *testing.T) {
		svc, orders, _, _, publisher := newOrderService(t)

		orders.On("GetOrder", 7).Return(stored(), nil).Once()
		orders.On("UpdateOrder", mock.Anything).Return(int64(1), nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
			return ev.Type == domain.EventOrderStatusChanged && ev.Status == domain.OrderConfirmed
		})).Return(nil).Once()

		order, err := svc.Update(ctx, 7, service.UpdateOrderInput{Status: &confirmed})
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderConfirmed, order.Status)
	})

	t.Run("same_status_publishes_nothing", func(t *testing.T) {
		svc, orders, _, _, publisher := newOrderService(t)

		pending := domain.OrderPending
		orders.On("GetOrder", 7).Return(stored(), nil).Once()
		orders.On("UpdateOrder", mock.Anything).Return(int64(1), nil).Once()

		_, err := svc.Update(ctx, 7, service.UpdateOrderInput{Status: &pending})
		assert.NoError(t, err)
		publisher.AssertNotCalled(t, "Publish")
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		svc, orders, _, _, _ := newOrderService(t)

		bogus := "DELIVERED"
		_, err := svc.Update(ctx, 7, service.UpdateOrderInput{Status: &bogus})
		assert.True(t, service.IsValidation(err))
		orders.AssertNotCalled(t, "GetOrder")
	})
}

func TestOrderService_Delete(t *testing.T) {
	svc, orders, _, _, _ := newOrderService(t)

	orders.On("DeleteOrder", 7).Return(int64(1), nil).Once()
	assert.NoError(t, svc.Delete(7))

	orders.On("DeleteOrder", 8).Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.Delete(8), service.ErrOrderNotFound)
}
