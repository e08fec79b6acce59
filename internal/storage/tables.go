package storage

import (
	"emenu-backend/internal/domain"
)

func (r *PostgresRepository) CreateTable(t *domain.Table) error {
	err := r.DB.QueryRow(
		"INSERT INTO tables (table_number, table_name, status) VALUES ($1, $2, $3) RETURNING id, created_at",
		t.TableNumber, t.TableName, domain.TableAvailable,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return wrapUnique(err)
	}
	t.Status = domain.TableAvailable
	return nil
}

func (r *PostgresRepository) ListTables(status string) ([]domain.Table, error) {
	query := `
		SELECT id, table_number, table_name, status, created_at
		FROM tables`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY table_number ASC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.TableName, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) GetTable(id int) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRow(`
		SELECT id, table_number, table_name, status, created_at
		FROM tables
		WHERE id = $1`, id).
		Scan(&t.ID, &t.TableNumber, &t.TableName, &t.Status, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) GetTableByNumber(number string) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRow(`
		SELECT id, table_number, table_name, status, created_at
		FROM tables
		WHERE table_number = $1`, number).
		Scan(&t.ID, &t.TableNumber, &t.TableName, &t.Status, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) UpdateTableName(id int, name string) (int64, error) {
	result, err := r.DB.Exec("UPDATE tables SET table_name = $1 WHERE id = $2", name, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// SetTableStatus is the single mutation path for table occupancy: order
// creation, payment completion and manual staff updates all go through it.
func (r *PostgresRepository) SetTableStatus(id int, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE tables SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteTable(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM tables WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) GetTableQRCode(id int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM tables WHERE id = $1", id).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) SaveTableQRCode(id int, png []byte) error {
	_, err := r.DB.Exec("UPDATE tables SET qr_code = $1 WHERE id = $2", png, id)
	return err
}
