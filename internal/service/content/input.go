package content

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/internal/validate"
)

// Default and maximum page sizes for List.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// CreateInput holds the client-writable fields of a new content item.
type CreateInput struct {
	Title      string          `json:"title"       validate:"notblank,max=255"`
	Body       string          `json:"body"        validate:"notblank"`
	CategoryID *uuid.UUID      `json:"category_id"`
	Metadata   json.RawMessage `json:"metadata"`
	IsPublic   *bool           `json:"is_public"`
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	if err := validate.Struct(i); err != nil {
		return err
	}
	return validateMetadata(i.Metadata)
}

// UpdateInput is a partial update. Replace marks a PUT, which must carry
// title and body.
type UpdateInput struct {
	Patch   domain.ContentPatch
	Replace bool
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	p := i.Patch

	switch {
	case p.Title == nil && i.Replace:
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case p.Title != nil && strings.TrimSpace(*p.Title) == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case p.Title != nil && utf8.RuneCountInString(*p.Title) > domain.TitleMaxLen:
		errs = append(errs, domain.FieldError{Field: "title", Message: "must be at most 255 characters"})
	}

	if (p.Body == nil && i.Replace) || (p.Body != nil && strings.TrimSpace(*p.Body) == "") {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}

	if p.MetadataSet {
		if err := validateMetadata(p.Metadata); err != nil {
			errs = append(errs, domain.FieldError{Field: "metadata", Message: "must be valid JSON"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds list parameters.
type ListInput struct {
	Search string
	Limit  int
	Offset int
}

func (i ListInput) normalized() ListInput {
	i.Search = strings.TrimSpace(i.Search)
	if i.Limit <= 0 {
		i.Limit = DefaultLimit
	}
	if i.Limit > MaxLimit {
		i.Limit = MaxLimit
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
	return i
}

func validateMetadata(raw json.RawMessage) error {
	if len(raw) == 0 || json.Valid(raw) {
		return nil
	}
	return domain.NewValidationError("metadata", "must be valid JSON")
}
