package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"emenu-backend/internal/service"
)

func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List(r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, tables)
}

func (h *Handler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TableNumber string `json:"tableNumber"`
		TableName   string `json:"tableName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	table, err := h.Tables.Create(body.TableNumber, body.TableName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondCreated(w, "Table created successfully", table)
}

// GetTableByNumber backs the QR landing page; customers hit it before any
// authentication exists, so it stays public.
func (h *Handler) GetTableByNumber(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.GetByNumber(mux.Vars(r)["tableNumber"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, table)
}

func (h *Handler) GetTableDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid table ID")
		return
	}
	detail, err := h.Tables.Detail(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, detail)
}

func (h *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid table ID")
		return
	}
	var in service.UpdateTableInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	table, err := h.Tables.Update(id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondUpdated(w, "Table updated successfully", table)
}

func (h *Handler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid table ID")
		return
	}
	if err := h.Tables.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	respondMessage(w, "Table deleted successfully")
}

func (h *Handler) GetTableQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid table ID")
		return
	}
	png, err := h.Tables.QRCode(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
