package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

type userService interface {
	ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, int, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Analytics(ctx context.Context) (*domain.Analytics, error)
}

// AdminHandler serves the administrator endpoints.
type AdminHandler struct {
	users userService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{users: users, log: logger.With("handler", "admin")}
}

type userJSON struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserJSON(u *domain.User) userJSON {
	return userJSON{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type analyticsResponse struct {
	UserCount     int `json:"user_count"`
	ContentCount  int `json:"content_count"`
	CategoryCount int `json:"category_count"`
}

// ListUsers handles GET /users. The total is sent in X-Total-Count.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r)
	if !ok {
		return
	}

	users, total, err := h.users.ListUsers(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]userJSON, len(users))
	for i, u := range users {
		out[i] = toUserJSON(u)
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	writeJSON(w, http.StatusOK, out)
}

// GetUser handles GET /users/{id}.
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	u, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserJSON(u))
}

// Analytics handles GET /analytics.
func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.users.Analytics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analyticsResponse{
		UserCount:     a.UserCount,
		ContentCount:  a.ContentCount,
		CategoryCount: a.CategoryCount,
	})
}
