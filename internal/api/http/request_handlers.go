package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type createRequestBody struct {
	TableNumber   string `json:"tableNumber"`
	CustomerName  string `json:"customerName"`
	Reason        string `json:"reason"`
	PaymentMethod string `json:"paymentMethod"`
}

type updateStatusBody struct {
	Status string `json:"status"`
}

func (h *Handler) CreateStaffCall(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	call, err := h.Calls.Create(r.Context(), body.TableNumber, body.CustomerName, body.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondCreated(w, "Staff call created successfully", call)
}

func (h *Handler) ListStaffCalls(w http.ResponseWriter, r *http.Request) {
	calls, err := h.Calls.List(r.URL.Query().Get("status"), queryInt(r, "tableId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, calls)
}

func (h *Handler) ListPendingStaffCalls(w http.ResponseWriter, r *http.Request) {
	calls, err := h.Calls.ListPending()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, calls)
}

func (h *Handler) ListStaffCallsByTable(w http.ResponseWriter, r *http.Request) {
	calls, err := h.Calls.ListForTable(mux.Vars(r)["tableNumber"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, calls)
}

func (h *Handler) UpdateStaffCall(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid staff call ID")
		return
	}
	var body updateStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	call, err := h.Calls.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondUpdated(w, "Staff call updated successfully", call)
}

func (h *Handler) DeleteStaffCall(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid staff call ID")
		return
	}
	if err := h.Calls.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	respondMessage(w, "Staff call deleted successfully")
}

func (h *Handler) CreatePaymentRequest(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	request, err := h.Payments.Create(r.Context(), body.TableNumber, body.CustomerName, body.PaymentMethod)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondCreated(w, "Payment request created successfully", request)
}

func (h *Handler) ListPaymentRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Payments.List(r.URL.Query().Get("status"), queryInt(r, "tableId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, requests)
}

func (h *Handler) ListPendingPaymentRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Payments.ListPending()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, requests)
}

func (h *Handler) ListPaymentRequestsByTable(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Payments.ListForTable(mux.Vars(r)["tableNumber"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, requests)
}

func (h *Handler) UpdatePaymentRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid payment request ID")
		return
	}
	var body updateStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	request, err := h.Payments.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondUpdated(w, "Payment request updated successfully", request)
}

func (h *Handler) DeletePaymentRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid payment request ID")
		return
	}
	if err := h.Payments.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	respondMessage(w, "Payment request deleted successfully")
}
