package storage

import (
	"strconv"
	"strings"

	"emenu-backend/internal/domain"
)

// CreateOrder persists the order and its items as a single transaction.
// A duplicate order number surfaces as ErrDuplicate so the caller can retry
// with a fresh number.
func (r *PostgresRepository) CreateOrder(o *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (order_number, table_id, customer_name, total_amount, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		o.OrderNumber, o.TableID, o.CustomerName, o.TotalAmount, o.Notes, domain.OrderPending,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return wrapUnique(err)
	}
	o.Status = domain.OrderPending

	for i := range o.OrderItems {
		item := &o.OrderItems[i]
		item.OrderID = o.ID
		err = tx.QueryRow(`
			INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price, item_name, notes)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			item.OrderID, item.MenuItemID, item.Quantity, item.UnitPrice, item.ItemName, item.Notes,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `
	o.id, o.order_number, o.table_id, o.customer_name, o.total_amount,
	o.notes, o.status, o.created_at,
	t.id, t.table_number, t.table_name`

func scanOrder(scan func(dest ...interface{}) error) (domain.Order, error) {
	var o domain.Order
	var ref domain.TableRef
	err := scan(&o.ID, &o.OrderNumber, &o.TableID, &o.CustomerName, &o.TotalAmount,
		&o.Notes, &o.Status, &o.CreatedAt,
		&ref.ID, &ref.TableNumber, &ref.TableName)
	if err != nil {
		return o, err
	}
	o.Table = &ref
	return o, nil
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	row := r.DB.QueryRow("SELECT "+orderColumns+`
		FROM orders o
		JOIN tables t ON o.table_id = t.id
		WHERE o.id = $1`, id)
	o, err := scanOrder(row.Scan)
	if err != nil {
		return nil, err
	}
	if err := r.loadOrderItems(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) ListOrders(q domain.OrderQuery) ([]domain.Order, error) {
	var conditions []string
	var args []interface{}

	if q.Status != "" {
		args = append(args, q.Status)
		conditions = append(conditions, "o.status = $"+strconv.Itoa(len(args)))
	}
	if q.TableID != 0 {
		args = append(args, q.TableID)
		conditions = append(conditions, "o.table_id = $"+strconv.Itoa(len(args)))
	}
	if !q.From.IsZero() {
		args = append(args, q.From)
		conditions = append(conditions, "o.created_at >= $"+strconv.Itoa(len(args)))
	}
	if !q.To.IsZero() {
		args = append(args, q.To)
		conditions = append(conditions, "o.created_at < $"+strconv.Itoa(len(args)))
	}

	query := "SELECT " + orderColumns + `
		FROM orders o
		JOIN tables t ON o.table_id = t.id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY o.created_at DESC"

	return r.queryOrders(query, args...)
}

func (r *PostgresRepository) ListActiveOrdersByTable(tableID int) ([]domain.Order, error) {
	return r.queryOrders("SELECT "+orderColumns+`
		FROM orders o
		JOIN tables t ON o.table_id = t.id
		WHERE o.table_id = $1 AND o.status NOT IN ($2, $3)
		ORDER BY o.created_at DESC`,
		tableID, domain.OrderCompleted, domain.OrderCancelled)
}

func (r *PostgresRepository) queryOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadOrderItems(&orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *PostgresRepository) loadOrderItems(o *domain.Order) error {
	rows, err := r.DB.Query(`
		SELECT id, order_id, menu_item_id, quantity, unit_price, item_name, notes
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	o.OrderItems = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID,
			&item.Quantity, &item.UnitPrice, &item.ItemName, &item.Notes); err != nil {
			return err
		}
		o.OrderItems = append(o.OrderItems, item)
	}
	return rows.Err()
}

func (r *PostgresRepository) UpdateOrder(o *domain.Order) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE orders SET status = $1, notes = $2 WHERE id = $3",
		o.Status, o.Notes, o.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteOrder removes the order; order_items cascade via the foreign key.
func (r *PostgresRepository) DeleteOrder(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
