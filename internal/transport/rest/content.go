package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/internal/service/content"
	"github.com/heartmarshall/curator-backend/internal/transport/dataloader"
)

type contentService interface {
	Create(ctx context.Context, input content.CreateInput) (*domain.Content, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	List(ctx context.Context, input content.ListInput) ([]*domain.Content, error)
	Update(ctx context.Context, id uuid.UUID, input content.UpdateInput) (*domain.Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryLookup interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error)
}

// ContentHandler serves /content.
type ContentHandler struct {
	svc        contentService
	categories categoryLookup
	log        *slog.Logger
}

// NewContentHandler creates a ContentHandler. categories backs the nested
// category object in responses.
func NewContentHandler(svc contentService, categories categoryLookup, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, categories: categories, log: logger.With("handler", "content")}
}

type contentJSON struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Body            string          `json:"body"`
	Category        *categoryJSON   `json:"category"`
	Metadata        json.RawMessage `json:"metadata"`
	Owner           string          `json:"owner"`
	IsPublic        bool            `json:"is_public"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Summary         string          `json:"summary"`
	Sentiment       string          `json:"sentiment"`
	Topics          json.RawMessage `json:"topics"`
	Recommendations string          `json:"recommendations"`
}

func toContentJSON(c *domain.Content, categories map[uuid.UUID]*domain.Category) contentJSON {
	out := contentJSON{
		ID:              c.ID,
		Title:           c.Title,
		Body:            c.Body,
		Metadata:        c.Metadata,
		Owner:           c.OwnerUsername,
		IsPublic:        c.IsPublic,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		Summary:         c.Analysis.Summary,
		Sentiment:       c.Analysis.Sentiment,
		Topics:          c.Analysis.Topics,
		Recommendations: c.Analysis.Recommendations,
	}
	if c.CategoryID != nil {
		if cat, ok := categories[*c.CategoryID]; ok {
			cj := toCategoryJSON(cat)
			out.Category = &cj
		}
	}
	return out
}

func (h *ContentHandler) render(ctx context.Context, items ...*domain.Content) ([]contentJSON, error) {
	ids := make([]*uuid.UUID, len(items))
	for i, c := range items {
		ids[i] = c.CategoryID
	}
	categories, err := dataloader.LoadCategories(ctx, h.categories, ids)
	if err != nil {
		return nil, err
	}

	out := make([]contentJSON, len(items))
	for i, c := range items {
		out[i] = toContentJSON(c, categories)
	}
	return out, nil
}

func (h *ContentHandler) writeOne(w http.ResponseWriter, r *http.Request, status int, c *domain.Content) {
	out, err := h.render(r.Context(), c)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, out[0])
}

// List handles GET /content.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	liftWriteDeadline(w)

	limit, offset, ok := paging(w, r)
	if !ok {
		return
	}

	items, err := h.svc.List(r.Context(), content.ListInput{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.render(r.Context(), items...)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /content. AI fields in the body are ignored.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	liftWriteDeadline(w)

	var req content.CreateInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusCreated, c)
}

// Get handles GET /content/{id}.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	liftWriteDeadline(w)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, c)
}

// Update handles PUT and PATCH /content/{id}.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	liftWriteDeadline(w)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	patch, err := parsePatch(raw)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, content.UpdateInput{
		Patch:   patch,
		Replace: r.Method == http.MethodPut,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, c)
}

// Delete handles DELETE /content/{id}.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// parsePatch turns a JSON object into a ContentPatch. Presence matters:
// an explicit null category_id clears the category, an absent one keeps it.
func parsePatch(raw map[string]json.RawMessage) (domain.ContentPatch, error) {
	var (
		p    domain.ContentPatch
		errs []domain.FieldError
	)
	isNull := func(v json.RawMessage) bool { return string(v) == "null" }

	if v, ok := raw["title"]; ok {
		if err := json.Unmarshal(v, &p.Title); err != nil || p.Title == nil {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must be a string"})
		}
	}
	if v, ok := raw["body"]; ok {
		if err := json.Unmarshal(v, &p.Body); err != nil || p.Body == nil {
			errs = append(errs, domain.FieldError{Field: "body", Message: "must be a string"})
		}
	}
	if v, ok := raw["category_id"]; ok {
		p.CategorySet = true
		if !isNull(v) {
			var id uuid.UUID
			if err := json.Unmarshal(v, &id); err != nil {
				errs = append(errs, domain.FieldError{Field: "category_id", Message: "must be a UUID"})
			} else {
				p.CategoryID = &id
			}
		}
	}
	if v, ok := raw["metadata"]; ok {
		p.MetadataSet = true
		if !isNull(v) {
			p.Metadata = v
		}
	}
	if v, ok := raw["is_public"]; ok {
		if err := json.Unmarshal(v, &p.IsPublic); err != nil || p.IsPublic == nil {
			errs = append(errs, domain.FieldError{Field: "is_public", Message: "must be a boolean"})
		}
	}

	if len(errs) > 0 {
		return p, domain.NewValidationErrors(errs)
	}
	return p, nil
}
