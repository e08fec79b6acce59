package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"emenu-backend/internal/service"
)

// Every endpoint answers with the same envelope; data and message are both
// optional depending on the route.
type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, code int, data interface{}) {
	writeJSON(w, code, apiResponse{Success: true, Data: data})
}

func respondCreated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, apiResponse{Success: true, Message: message, Data: data})
}

func respondUpdated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: message, Data: data})
}

func respondMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, apiResponse{Success: false, Message: message})
}

// writeServiceError translates the service error taxonomy into HTTP status
// codes: validation/conflict 400, not-found 404, anything else 500 with the
// detail kept server-side.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case service.IsValidation(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDuplicateTableNumber),
		errors.Is(err, service.ErrDuplicateCategorySlug),
		errors.Is(err, service.ErrOrderNumberExhausted):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTableNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrStaffCallNotFound),
		errors.Is(err, service.ErrPaymentRequestNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("[api] internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
