package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"emenu-backend/internal/domain"
)

const counterTTL = 30 * 24 * time.Hour

// ItemCount is one row of the top-items leaderboard.
type ItemCount struct {
	MenuItemID int    `json:"menuItemId"`
	ItemName   string `json:"itemName"`
	Quantity   int    `json:"quantity"`
}

// DailySummary aggregates one calendar day of orders.
type DailySummary struct {
	Date       string `json:"date"`
	OrderCount int    `json:"orderCount"`
	Revenue    int    `json:"revenue"`
}

// Store keeps per-day order counters in Redis and falls back to Postgres
// aggregation when the counters are missing (cold start, expired keys).
type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

func itemsKey(date string) string   { return fmt.Sprintf("analytics:items:%s", date) }
func revenueKey(date string) string { return fmt.Sprintf("analytics:revenue:%s", date) }
func ordersKey(date string) string  { return fmt.Sprintf("analytics:orders:%s", date) }

// RecordOrder bumps the day's counters for a placed order.
func (s *Store) RecordOrder(ctx context.Context, ev domain.Event) error {
	date := ev.Timestamp.Format("2006-01-02")

	for _, item := range ev.Items {
		if err := s.rdb.ZIncrBy(ctx, itemsKey(date), float64(item.Quantity), strconv.Itoa(item.MenuItemID)).Err(); err != nil {
			return err
		}
	}
	if err := s.rdb.IncrBy(ctx, revenueKey(date), int64(ev.TotalAmount)).Err(); err != nil {
		return err
	}
	if err := s.rdb.Incr(ctx, ordersKey(date)).Err(); err != nil {
		return err
	}

	s.rdb.Expire(ctx, itemsKey(date), counterTTL)
	s.rdb.Expire(ctx, revenueKey(date), counterTTL)
	s.rdb.Expire(ctx, ordersKey(date), counterTTL)
	return nil
}

// TopItems returns the day's most ordered menu items, best first.
func (s *Store) TopItems(ctx context.Context, date string, limit int) ([]ItemCount, error) {
	if limit <= 0 {
		limit = 10
	}

	entries, err := s.rdb.ZRevRangeWithScores(ctx, itemsKey(date), 0, int64(limit-1)).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if len(entries) == 0 {
		return s.topItemsFromDB(date, limit)
	}

	counts := make([]ItemCount, 0, len(entries))
	ids := make([]int, 0, len(entries))
	for _, entry := range entries {
		id, err := strconv.Atoi(entry.Member.(string))
		if err != nil {
			continue
		}
		counts = append(counts, ItemCount{MenuItemID: id, Quantity: int(entry.Score)})
		ids = append(ids, id)
	}

	names, err := s.itemNames(ids)
	if err != nil {
		return nil, err
	}
	for i := range counts {
		counts[i].ItemName = names[counts[i].MenuItemID]
	}
	return counts, nil
}

// Summary returns the day's order count and revenue.
func (s *Store) Summary(ctx context.Context, date string) (*DailySummary, error) {
	orders, ordersErr := s.rdb.Get(ctx, ordersKey(date)).Int()
	if ordersErr != nil && ordersErr != redis.Nil {
		return nil, ordersErr
	}
	revenue, revenueErr := s.rdb.Get(ctx, revenueKey(date)).Int()
	if revenueErr != nil && revenueErr != redis.Nil {
		return nil, revenueErr
	}

	// The counters carry independent TTLs; a miss on either one means the
	// day must be recomputed from Postgres.
	if coldCache(ordersErr, revenueErr) {
		return s.summaryFromDB(date)
	}
	return &DailySummary{Date: date, OrderCount: orders, Revenue: revenue}, nil
}

func coldCache(errs ...error) bool {
	for _, err := range errs {
		if err == redis.Nil {
			return true
		}
	}
	return false
}

func (s *Store) topItemsFromDB(date string, limit int) ([]ItemCount, error) {
	from, to, err := dayBounds(date)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT oi.menu_item_id, oi.item_name, SUM(oi.quantity)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= $1 AND o.created_at < $2 AND o.status <> 'CANCELLED'
		GROUP BY oi.menu_item_id, oi.item_name
		ORDER BY SUM(oi.quantity) DESC
		LIMIT $3
	`, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []ItemCount{}
	for rows.Next() {
		var c ItemCount
		if err := rows.Scan(&c.MenuItemID, &c.ItemName, &c.Quantity); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (s *Store) summaryFromDB(date string) (*DailySummary, error) {
	from, to, err := dayBounds(date)
	if err != nil {
		return nil, err
	}

	summary := &DailySummary{Date: date}
	err = s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at >= $1 AND created_at < $2 AND status <> 'CANCELLED'
	`, from, to).Scan(&summary.OrderCount, &summary.Revenue)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *Store) itemNames(ids []int) (map[int]string, error) {
	names := make(map[int]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := s.db.Query(`SELECT id, name FROM menu_items WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

func dayBounds(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day, day.AddDate(0, 0, 1), nil
}
