package httpapi

import (
	"net/http"
	"time"
)

// analyticsDate returns the requested day, defaulting to today. The empty
// string return signals an already-written 400.
func analyticsDate(w http.ResponseWriter, r *http.Request) string {
	date := r.URL.Query().Get("date")
	if date == "" {
		return time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return ""
	}
	return date
}

func (h *Handler) AnalyticsTopItems(w http.ResponseWriter, r *http.Request) {
	date := analyticsDate(w, r)
	if date == "" {
		return
	}
	items, err := h.Analytics.TopItems(r.Context(), date, queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, items)
}

func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	date := analyticsDate(w, r)
	if date == "" {
		return
	}
	summary, err := h.Analytics.Summary(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, summary)
}
