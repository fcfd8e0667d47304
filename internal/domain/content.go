package domain

import (
	"bytes"
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Column limits mirrored from the schema.
const (
	TitleMaxLen     = 255
	SentimentMaxLen = 128
)

// Content is a user-authored item whose body feeds the language model analysis.
type Content struct {
	ID            uuid.UUID
	Title         string
	Body          string
	CategoryID    *uuid.UUID
	Metadata      json.RawMessage
	OwnerID       uuid.UUID
	OwnerUsername string
	IsPublic      bool
	Analysis      Analysis
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VisibleTo reports whether the given user may read the item.
// uuid.Nil is an anonymous caller.
func (c *Content) VisibleTo(userID uuid.UUID, admin bool) bool {
	return c.IsPublic || admin || (userID != uuid.Nil && c.OwnerID == userID)
}

// Analysis holds the four model-derived fields of a content item.
// Topics keeps whatever JSON shape the model returned; nil means NULL.
type Analysis struct {
	Summary         string
	Sentiment       string
	Topics          json.RawMessage
	Recommendations string
}

// Complete reports whether every field carries a value.
// An incomplete analysis is refreshed on the next read.
func (a Analysis) Complete() bool {
	return a.Summary != "" &&
		a.Sentiment != "" &&
		a.Recommendations != "" &&
		JSONPresent(a.Topics)
}

// Normalized clips values to their column limits and turns a JSON null
// into a nil Topics.
func (a Analysis) Normalized() Analysis {
	a.Sentiment = truncateRunes(a.Sentiment, SentimentMaxLen)
	if t := bytes.TrimSpace(a.Topics); len(t) == 0 || bytes.Equal(t, []byte("null")) {
		a.Topics = nil
	}
	return a
}

// JSONPresent reports whether raw holds a non-empty JSON value.
// null, false, 0, "", [] and {} count as empty.
func JSONPresent(raw json.RawMessage) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	return true
}

// ContentPatch carries the client-writable fields of an update.
// Nil pointers leave the stored value untouched.
type ContentPatch struct {
	Title       *string
	Body        *string
	CategorySet bool
	CategoryID  *uuid.UUID
	MetadataSet bool
	Metadata    json.RawMessage
	IsPublic    *bool
}

// ContentFilter narrows a content listing.
type ContentFilter struct {
	Search   string
	// ViewerID sees their own private items in addition to public ones.
	ViewerID uuid.UUID
	// All disables visibility filtering (admin listings, maintenance jobs).
	All      bool
	Limit    int
	Offset   int
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
