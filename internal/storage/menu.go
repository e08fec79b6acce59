package storage

import (
	"strconv"
	"strings"

	"github.com/lib/pq"

	"emenu-backend/internal/domain"
)

func (r *PostgresRepository) CreateCategory(c *domain.Category) error {
	err := r.DB.QueryRow(
		"INSERT INTO categories (slug, name, sort_order) VALUES ($1, $2, $3) RETURNING id",
		c.Slug, c.Name, c.SortOrder,
	).Scan(&c.ID)
	if err != nil {
		return wrapUnique(err)
	}
	c.IsActive = true
	return nil
}

func (r *PostgresRepository) ListCategories() ([]domain.Category, error) {
	rows, err := r.DB.Query(`
		SELECT id, slug, name, sort_order, is_active
		FROM categories
		WHERE is_active = TRUE
		ORDER BY sort_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.SortOrder, &c.IsActive); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(id int) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRow(`
		SELECT id, slug, name, sort_order, is_active
		FROM categories
		WHERE id = $1`, id).
		Scan(&c.ID, &c.Slug, &c.Name, &c.SortOrder, &c.IsActive)
	if err != nil {
		return nil, err
	}

	items, err := r.ListMenuItems(domain.MenuFilter{CategorySlug: c.Slug, OnlyAvailable: true})
	if err != nil {
		return nil, err
	}
	c.MenuItems = items
	return &c, nil
}

func (r *PostgresRepository) UpdateCategory(c *domain.Category) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE categories SET slug = $1, name = $2, sort_order = $3, is_active = $4 WHERE id = $5",
		c.Slug, c.Name, c.SortOrder, c.IsActive, c.ID)
	if err != nil {
		return 0, wrapUnique(err)
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteCategory(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateMenuItem(m *domain.MenuItem) error {
	err := r.DB.QueryRow(`
		INSERT INTO menu_items (name, description, price, image, category_id, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		m.Name, m.Description, m.Price, m.Image, m.CategoryID, m.IsAvailable,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return wrapForeignKey(err)
	}
	m.IsActive = true
	return r.attachCategory(m)
}

const menuItemColumns = `
	m.id, m.name, m.description, m.price, m.image, m.category_id,
	m.is_active, m.is_available, m.created_at,
	c.id, c.slug, c.name`

func scanMenuItem(scan func(dest ...interface{}) error) (domain.MenuItem, error) {
	var m domain.MenuItem
	var ref domain.CategoryRef
	err := scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Image, &m.CategoryID,
		&m.IsActive, &m.IsAvailable, &m.CreatedAt,
		&ref.ID, &ref.Slug, &ref.Name)
	if err != nil {
		return m, err
	}
	m.Category = &ref
	return m, nil
}

func (r *PostgresRepository) ListMenuItems(f domain.MenuFilter) ([]domain.MenuItem, error) {
	var conditions []string
	var args []interface{}

	if !f.IncludeInactive {
		conditions = append(conditions, "m.is_active = TRUE")
	}
	if f.OnlyAvailable {
		conditions = append(conditions, "m.is_available = TRUE")
	}
	if f.CategorySlug != "" {
		args = append(args, f.CategorySlug)
		conditions = append(conditions, "c.slug = $"+strconv.Itoa(len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(m.name ILIKE $"+n+" OR m.description ILIKE $"+n+")")
	}

	query := "SELECT " + menuItemColumns + `
		FROM menu_items m
		JOIN categories c ON m.category_id = c.id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY c.sort_order ASC, m.name ASC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	row := r.DB.QueryRow("SELECT "+menuItemColumns+`
		FROM menu_items m
		JOIN categories c ON m.category_id = c.id
		WHERE m.id = $1`, id)
	m, err := scanMenuItem(row.Scan)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMenuItemsByIDs resolves a batch of item ids in one query; missing ids
// are simply absent from the result, callers decide whether that is an error.
func (r *PostgresRepository) GetMenuItemsByIDs(ids []int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query("SELECT "+menuItemColumns+`
		FROM menu_items m
		JOIN categories c ON m.category_id = c.id
		WHERE m.id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) UpdateMenuItem(m *domain.MenuItem) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, image = $4,
			category_id = $5, is_active = $6, is_available = $7
		WHERE id = $8`,
		m.Name, m.Description, m.Price, m.Image, m.CategoryID, m.IsActive, m.IsAvailable, m.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteMenuItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) attachCategory(m *domain.MenuItem) error {
	var ref domain.CategoryRef
	err := r.DB.QueryRow("SELECT id, slug, name FROM categories WHERE id = $1", m.CategoryID).
		Scan(&ref.ID, &ref.Slug, &ref.Name)
	if err != nil {
		return err
	}
	m.Category = &ref
	return nil
}
