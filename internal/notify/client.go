package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"emenu-backend/internal/domain"
)

// Fetcher is what the poller needs from the API for one table.
type Fetcher interface {
	Table(ctx context.Context, tableNumber string) (*domain.Table, error)
	ActiveOrders(ctx context.Context, tableNumber string) ([]domain.Order, error)
	StaffCalls(ctx context.Context, tableNumber string) ([]domain.StaffCall, error)
	PaymentRequests(ctx context.Context, tableNumber string) ([]domain.PaymentRequest, error)
}

// APIClient fetches table state over the REST API.
type APIClient struct {
	BaseURL string
	Client  *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *APIClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if !env.Success {
		return fmt.Errorf("%s: %s", path, env.Message)
	}
	return json.Unmarshal(env.Data, out)
}

func (c *APIClient) Table(ctx context.Context, tableNumber string) (*domain.Table, error) {
	var table domain.Table
	if err := c.get(ctx, "/api/tables/number/"+url.PathEscape(tableNumber), &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *APIClient) ActiveOrders(ctx context.Context, tableNumber string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/api/orders/table/"+url.PathEscape(tableNumber), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *APIClient) StaffCalls(ctx context.Context, tableNumber string) ([]domain.StaffCall, error) {
	var calls []domain.StaffCall
	if err := c.get(ctx, "/api/staff-calls/table/"+url.PathEscape(tableNumber), &calls); err != nil {
		return nil, err
	}
	return calls, nil
}

func (c *APIClient) PaymentRequests(ctx context.Context, tableNumber string) ([]domain.PaymentRequest, error) {
	var requests []domain.PaymentRequest
	if err := c.get(ctx, "/api/payment-requests/table/"+url.PathEscape(tableNumber), &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

var _ Fetcher = (*APIClient)(nil)
