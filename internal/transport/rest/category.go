package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/internal/service/category"
)

type categoryService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Category, error)
	Create(ctx context.Context, input category.Input) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, input category.Input) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryHandler serves /categories.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type categoryJSON struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCategoryJSON(c *domain.Category) categoryJSON {
	return categoryJSON{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r)
	if !ok {
		return
	}

	list, err := h.svc.List(r.Context(), r.URL.Query().Get("search"), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]categoryJSON, len(list))
	for i, c := range list {
		out[i] = toCategoryJSON(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryJSON(c))
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req category.Input
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryJSON(c))
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req category.Input
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryJSON(c))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
