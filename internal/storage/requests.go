package storage

import (
	"strconv"
	"strings"

	"emenu-backend/internal/domain"
)

const staffCallColumns = `
	s.id, s.table_id, s.customer_name, s.reason, s.status, s.created_at,
	t.id, t.table_number, t.table_name`

func (r *PostgresRepository) CreateStaffCall(c *domain.StaffCall) error {
	err := r.DB.QueryRow(`
		INSERT INTO staff_calls (table_id, customer_name, reason)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at`,
		c.TableID, c.CustomerName, c.Reason,
	).Scan(&c.ID, &c.Status, &c.CreatedAt)
	return err
}

func (r *PostgresRepository) ListStaffCalls(q domain.RequestQuery) ([]domain.StaffCall, error) {
	query, args := requestListQuery("staff_calls s", staffCallColumns, q, "s.created_at DESC")
	return r.queryStaffCalls(query, args...)
}

func (r *PostgresRepository) ListPendingStaffCalls() ([]domain.StaffCall, error) {
	return r.queryStaffCalls("SELECT "+staffCallColumns+`
		FROM staff_calls s
		JOIN tables t ON s.table_id = t.id
		WHERE s.status = $1
		ORDER BY s.created_at ASC`, domain.CallPending)
}

func (r *PostgresRepository) ListStaffCallsByTable(tableID int) ([]domain.StaffCall, error) {
	return r.queryStaffCalls("SELECT "+staffCallColumns+`
		FROM staff_calls s
		JOIN tables t ON s.table_id = t.id
		WHERE s.table_id = $1
		ORDER BY s.created_at DESC`, tableID)
}

func (r *PostgresRepository) GetStaffCall(id int) (*domain.StaffCall, error) {
	row := r.DB.QueryRow("SELECT "+staffCallColumns+`
		FROM staff_calls s
		JOIN tables t ON s.table_id = t.id
		WHERE s.id = $1`, id)
	c, err := scanStaffCall(row.Scan)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateStaffCallStatus(id int, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE staff_calls SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteStaffCall(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM staff_calls WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanStaffCall(scan func(dest ...interface{}) error) (domain.StaffCall, error) {
	var c domain.StaffCall
	var ref domain.TableRef
	err := scan(&c.ID, &c.TableID, &c.CustomerName, &c.Reason, &c.Status, &c.CreatedAt,
		&ref.ID, &ref.TableNumber, &ref.TableName)
	if err != nil {
		return c, err
	}
	c.Table = &ref
	return c, nil
}

func (r *PostgresRepository) queryStaffCalls(query string, args ...interface{}) ([]domain.StaffCall, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calls := []domain.StaffCall{}
	for rows.Next() {
		c, err := scanStaffCall(rows.Scan)
		if err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}
	return calls, rows.Err()
}

const paymentColumns = `
	p.id, p.table_id, p.customer_name, p.payment_method, p.status, p.created_at,
	t.id, t.table_number, t.table_name`

func (r *PostgresRepository) CreatePaymentRequest(p *domain.PaymentRequest) error {
	err := r.DB.QueryRow(`
		INSERT INTO payment_requests (table_id, customer_name, payment_method)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at`,
		p.TableID, p.CustomerName, p.PaymentMethod,
	).Scan(&p.ID, &p.Status, &p.CreatedAt)
	return err
}

func (r *PostgresRepository) ListPaymentRequests(q domain.RequestQuery) ([]domain.PaymentRequest, error) {
	query, args := requestListQuery("payment_requests p", paymentColumns, q, "p.created_at DESC")
	return r.queryPaymentRequests(query, args...)
}

func (r *PostgresRepository) ListPendingPaymentRequests() ([]domain.PaymentRequest, error) {
	return r.queryPaymentRequests("SELECT "+paymentColumns+`
		FROM payment_requests p
		JOIN tables t ON p.table_id = t.id
		WHERE p.status = $1
		ORDER BY p.created_at ASC`, domain.PaymentPending)
}

func (r *PostgresRepository) ListPaymentRequestsByTable(tableID int) ([]domain.PaymentRequest, error) {
	return r.queryPaymentRequests("SELECT "+paymentColumns+`
		FROM payment_requests p
		JOIN tables t ON p.table_id = t.id
		WHERE p.table_id = $1
		ORDER BY p.created_at DESC`, tableID)
}

func (r *PostgresRepository) GetPaymentRequest(id int) (*domain.PaymentRequest, error) {
	row := r.DB.QueryRow("SELECT "+paymentColumns+`
		FROM payment_requests p
		JOIN tables t ON p.table_id = t.id
		WHERE p.id = $1`, id)
	p, err := scanPaymentRequest(row.Scan)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) UpdatePaymentRequestStatus(id int, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE payment_requests SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeletePaymentRequest(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM payment_requests WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanPaymentRequest(scan func(dest ...interface{}) error) (domain.PaymentRequest, error) {
	var p domain.PaymentRequest
	var ref domain.TableRef
	err := scan(&p.ID, &p.TableID, &p.CustomerName, &p.PaymentMethod, &p.Status, &p.CreatedAt,
		&ref.ID, &ref.TableNumber, &ref.TableName)
	if err != nil {
		return p, err
	}
	p.Table = &ref
	return p, nil
}

func (r *PostgresRepository) queryPaymentRequests(query string, args ...interface{}) ([]domain.PaymentRequest, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []domain.PaymentRequest{}
	for rows.Next() {
		p, err := scanPaymentRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		requests = append(requests, p)
	}
	return requests, rows.Err()
}

func requestListQuery(from, columns string, q domain.RequestQuery, orderBy string) (string, []interface{}) {
	alias := from[strings.LastIndex(from, " ")+1:]
	var conditions []string
	var args []interface{}

	if q.Status != "" {
		args = append(args, q.Status)
		conditions = append(conditions, alias+".status = $"+strconv.Itoa(len(args)))
	}
	if q.TableID != 0 {
		args = append(args, q.TableID)
		conditions = append(conditions, alias+".table_id = $"+strconv.Itoa(len(args)))
	}

	query := "SELECT " + columns + " FROM " + from +
		" JOIN tables t ON " + alias + ".table_id = t.id"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY " + orderBy
	return query, args
}
