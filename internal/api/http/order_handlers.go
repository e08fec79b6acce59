package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"emenu-backend/internal/service"
)

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var in service.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.Orders.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondCreated(w, "Order created successfully", order)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders, err := h.Orders.List(q.Get("status"), queryInt(r, "tableId"), q.Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, orders)
}

func (h *Handler) ListActiveOrdersByTable(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ActiveForTable(mux.Vars(r)["tableNumber"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}
	order, err := h.Orders.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, order)
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}
	var in service.UpdateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.Orders.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondUpdated(w, "Order updated successfully", order)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}
	if err := h.Orders.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	respondMessage(w, "Order deleted successfully")
}
