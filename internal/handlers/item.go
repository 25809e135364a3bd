package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"TodoKeeper/internal/middleware"
	"TodoKeeper/internal/model"
	"TodoKeeper/internal/service"
)

// ItemHandler обрабатывает операции над списком дел пользователя.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// ItemsResponse — ответ GET /api/items: список плюс отображаемое имя.
type ItemsResponse struct {
	Items model.ItemList `json:"items"`
	Name  string         `json:"name"`
}

// GetItems отдаёт список дел и имя пользователя.
func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	items, name, err := h.ItemService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Warnw("GetItems: failed", "user_id", userID, "error", err)
		http.Error(w, "cannot get items", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, ItemsResponse{Items: items, Name: name})
}

// AddItem добавляет произвольный объект клиента в конец списка.
func (h *ItemHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var item model.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.Logger.Warnw("AddItem: invalid request body", "user_id", userID, "error", err)
		http.Error(w, service.ErrEmptyItem.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.ItemService.Append(r.Context(), userID, item)
	if err != nil {
		h.Logger.Warnw("AddItem: failed", "user_id", userID, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, items)
}

// ToggleItem переключает done у элемента по индексу из пути.
func (h *ItemHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	index, err := parseIndex(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.ItemService.ToggleDone(r.Context(), userID, index)
	if err != nil {
		h.Logger.Warnw("ToggleItem: failed", "user_id", userID, "index", index, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// DeleteItem удаляет элемент по индексу из пути.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	index, err := parseIndex(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.ItemService.Remove(r.Context(), userID, index)
	if err != nil {
		h.Logger.Warnw("DeleteItem: failed", "user_id", userID, "index", index, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// parseIndex читает позиционный индекс из URL-параметра.
func parseIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid item index")
	}
	return index, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
