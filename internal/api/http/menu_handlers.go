package httpapi

import (
	"encoding/json"
	"net/http"

	"emenu-backend/internal/domain"
	"emenu-backend/internal/service"
)

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.ListCategories()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, categories)
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	category, err := h.Menu.GetCategory(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, category)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Slug      string `json:"slug"`
		Name      string `json:"name"`
		SortOrder int    `json:"sortOrder"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	category, err := h.Menu.CreateCategory(body.Slug, body.Name, body.SortOrder)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondCreated(w, "Category created successfully", category)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	var in service.UpdateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	category, err := h.Menu.UpdateCategory(id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondUpdated(w, "Category updated successfully", category)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	if err := h.Menu.DeleteCategory(id); err != nil {
		writeServiceError(w, err)
		return
	}
	respondMessage(w, "Category deleted successfully")
}

func (h *Handler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.MenuFilter{
		CategorySlug:    q.Get("category"),
		Search:          q.Get("search"),
		IncludeInactive: q.Get("includeInactive") == "true",
		OnlyAvailable:   q.Get("available") != "false",
	}
	items, err := h.Menu.ListItems(filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, items)
}

func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}
	item, err := h.Menu.GetItem(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, item)
}

func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var in service.CreateMenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := h.Menu.CreateItem(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondCreated(w, "Menu item created successfully", item)
}

func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}
	var in service.UpdateMenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := h.Menu.UpdateItem(id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respondUpdated(w, "Menu item updated successfully", item)
}

func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}
	if err := h.Menu.DeleteItem(id); err != nil {
		writeServiceError(w, err)
		return
	}
	respondMessage(w, "Menu item deleted successfully")
}
