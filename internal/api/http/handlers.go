package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"emenu-backend/internal/analytics"
	"emenu-backend/internal/service"
)

// AnalyticsProvider is the read side of the analytics store.
type AnalyticsProvider interface {
	TopItems(ctx context.Context, date string, limit int) ([]analytics.ItemCount, error)
	Summary(ctx context.Context, date string) (*analytics.DailySummary, error)
}

type Handler struct {
	Tables    service.TableServiceInterface
	Menu      service.MenuServiceInterface
	Orders    service.OrderServiceInterface
	Calls     service.StaffCallServiceInterface
	Payments  service.PaymentRequestServiceInterface
	Analytics AnalyticsProvider
	Auth      *Auth
}

func NewHandler(
	tables service.TableServiceInterface,
	menu service.MenuServiceInterface,
	orders service.OrderServiceInterface,
	calls service.StaffCallServiceInterface,
	payments service.PaymentRequestServiceInterface,
	analyticsStore AnalyticsProvider,
	auth *Auth,
) *Handler {
	return &Handler{
		Tables:    tables,
		Menu:      menu,
		Orders:    orders,
		Calls:     calls,
		Payments:  payments,
		Analytics: analyticsStore,
		Auth:      auth,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	staff := h.Auth.RequireStaff
	admin := h.Auth.RequireAdmin

	r.HandleFunc("/api/health", h.HealthCheck).Methods("GET")

	r.HandleFunc("/api/categories", h.ListCategories).Methods("GET")
	r.HandleFunc("/api/categories", admin(h.CreateCategory)).Methods("POST")
	r.HandleFunc("/api/categories/{id}", h.GetCategory).Methods("GET")
	r.HandleFunc("/api/categories/{id}", admin(h.UpdateCategory)).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", admin(h.DeleteCategory)).Methods("DELETE")

	r.HandleFunc("/api/menu-items", h.ListMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items", admin(h.CreateMenuItem)).Methods("POST")
	r.HandleFunc("/api/menu-items/{id}", h.GetMenuItem).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}", admin(h.UpdateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/menu-items/{id}", admin(h.DeleteMenuItem)).Methods("DELETE")

	r.HandleFunc("/api/tables", staff(h.ListTables)).Methods("GET")
	r.HandleFunc("/api/tables", admin(h.CreateTable)).Methods("POST")
	r.HandleFunc("/api/tables/number/{tableNumber}", h.GetTableByNumber).Methods("GET")
	r.HandleFunc("/api/tables/{id}", staff(h.GetTableDetail)).Methods("GET")
	r.HandleFunc("/api/tables/{id}", staff(h.UpdateTable)).Methods("PUT")
	r.HandleFunc("/api/tables/{id}", admin(h.DeleteTable)).Methods("DELETE")
	r.HandleFunc("/api/tables/{id}/qrcode", h.GetTableQRCode).Methods("GET")

	r.HandleFunc("/api/orders", h.CreateOrder).Methods("POST")
	r.HandleFunc("/api/orders", staff(h.ListOrders)).Methods("GET")
	r.HandleFunc("/api/orders/table/{tableNumber}", h.ListActiveOrdersByTable).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.GetOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", staff(h.UpdateOrder)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}", admin(h.DeleteOrder)).Methods("DELETE")

	r.HandleFunc("/api/staff-calls", h.CreateStaffCall).Methods("POST")
	r.HandleFunc("/api/staff-calls", staff(h.ListStaffCalls)).Methods("GET")
	r.HandleFunc("/api/staff-calls/pending", staff(h.ListPendingStaffCalls)).Methods("GET")
	r.HandleFunc("/api/staff-calls/table/{tableNumber}", h.ListStaffCallsByTable).Methods("GET")
	r.HandleFunc("/api/staff-calls/{id}", staff(h.UpdateStaffCall)).Methods("PUT")
	r.HandleFunc("/api/staff-calls/{id}", staff(h.DeleteStaffCall)).Methods("DELETE")

	r.HandleFunc("/api/payment-requests", h.CreatePaymentRequest).Methods("POST")
	r.HandleFunc("/api/payment-requests", staff(h.ListPaymentRequests)).Methods("GET")
	r.HandleFunc("/api/payment-requests/pending", staff(h.ListPendingPaymentRequests)).Methods("GET")
	r.HandleFunc("/api/payment-requests/table/{tableNumber}", h.ListPaymentRequestsByTable).Methods("GET")
	r.HandleFunc("/api/payment-requests/{id}", staff(h.UpdatePaymentRequest)).Methods("PUT")
	r.HandleFunc("/api/payment-requests/{id}", staff(h.DeletePaymentRequest)).Methods("DELETE")

	r.HandleFunc("/api/analytics/top-items", admin(h.AnalyticsTopItems)).Methods("GET")
	r.HandleFunc("/api/analytics/summary", admin(h.AnalyticsSummary)).Methods("GET")
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}
