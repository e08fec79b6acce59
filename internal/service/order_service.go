package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"emenu-backend/internal/domain"
)

// orderNumberAttempts bounds the regenerate-and-retry loop when a random
// order number collides with an existing one.
const orderNumberAttempts = 5

type CreateOrderInput struct {
	TableNumber  string                 `json:"tableNumber"`
	CustomerName string                 `json:"customerName"`
	Notes        string                 `json:"notes"`
	Items        []CreateOrderItemInput `json:"items"`
}

type CreateOrderItemInput struct {
	MenuItemID int    `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
}

// UpdateOrderInput is a partial update: nil fields are left untouched.
type UpdateOrderInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type OrderService struct {
	orders    OrderRepository
	tables    TableRepository
	menu      MenuRepository
	publisher EventPublisher
}

func NewOrderService(orders OrderRepository, tables TableRepository, menu MenuRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		tables:    tables,
		menu:      menu,
		publisher: publisher,
	}
}

func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if in.TableNumber == "" || in.CustomerName == "" || len(in.Items) == 0 {
		return nil, validationf("table number, customer name, and items are required")
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, validationf("quantity for menu item %d must be positive", item.MenuItemID)
		}
	}

	table, err := s.tables.GetTableByNumber(in.TableNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	ids := make([]int, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.MenuItemID)
	}
	menuItems, err := s.menu.GetMenuItemsByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]domain.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}

	// Unit price and item name are snapshotted here; the order is immune to
	// later menu edits. An unknown, disabled or sold-out id aborts the whole
	// order.
	order := &domain.Order{
		TableID:      table.ID,
		CustomerName: in.CustomerName,
		Notes:        in.Notes,
	}
	for _, item := range in.Items {
		menuItem, ok := byID[item.MenuItemID]
		if !ok || !menuItem.IsActive {
			return nil, validationf("menu item %d not found", item.MenuItemID)
		}
		if !menuItem.IsAvailable {
			return nil, validationf("menu item %d is currently unavailable", item.MenuItemID)
		}
		order.OrderItems = append(order.OrderItems, domain.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  menuItem.Price,
			ItemName:   menuItem.Name,
			Notes:      item.Notes,
		})
		order.TotalAmount += menuItem.Price * item.Quantity
	}

	for attempt := 0; ; attempt++ {
		order.OrderNumber = generateOrderNumber()
		err = s.orders.CreateOrder(order)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicate) && attempt < orderNumberAttempts-1 {
			continue
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, ErrOrderNumberExhausted
		}
		return nil, err
	}

	// Unconditional flip: placing an order always marks the table occupied,
	// even when it already is.
	if _, err := s.tables.SetTableStatus(table.ID, domain.TableOccupied); err != nil {
		return nil, err
	}

	order.Table = &domain.TableRef{ID: table.ID, TableNumber: table.TableNumber, TableName: table.TableName}

	publish(ctx, s.publisher, domain.Event{
		Type:        domain.EventOrderCreated,
		EntityID:    order.ID,
		TableID:     table.ID,
		TableNumber: table.TableNumber,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Items:       eventItems(order.OrderItems),
	})

	return order, nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List(status string, tableID int, date string) ([]domain.Order, error) {
	q := domain.OrderQuery{Status: status, TableID: tableID}
	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, validationf("invalid date %q, expected YYYY-MM-DD", date)
		}
		q.From = day
		q.To = day.AddDate(0, 0, 1)
	}
	return s.orders.ListOrders(q)
}

func (s *OrderService) ActiveForTable(tableNumber string) ([]domain.Order, error) {
	table, err := s.tables.GetTableByNumber(tableNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return s.orders.ListActiveOrdersByTable(table.ID)
}

func (s *OrderService) Update(ctx context.Context, id int, in UpdateOrderInput) (*domain.Order, error) {
	if in.Status != nil && !domain.ValidOrderStatus(*in.Status) {
		return nil, validationf("invalid order status %q", *in.Status)
	}

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	if in.Status != nil && *in.Status != order.Status {
		order.Status = *in.Status
		statusChanged = true
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}

	if _, err := s.orders.UpdateOrder(order); err != nil {
		return nil, err
	}

	if statusChanged {
		publish(ctx, s.publisher, domain.Event{
			Type:        domain.EventOrderStatusChanged,
			EntityID:    order.ID,
			TableID:     order.TableID,
			TableNumber: order.Table.TableNumber,
			Status:      order.Status,
		})
	}

	return order, nil
}

func (s *OrderService) Delete(id int) error {
	rows, err := s.orders.DeleteOrder(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func eventItems(items []domain.OrderItem) []domain.EventItem {
	out := make([]domain.EventItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.EventItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	return out
}

// generateOrderNumber produces ORD-YYYYMMDD-NNNN with a random 4-digit
// suffix. Collisions are handled by the caller retrying on ErrDuplicate.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%04d", time.Now().Format("20060102"), rand.Intn(10000))
}

var _ OrderServiceInterface = (*OrderService)(nil)
