package domain

import (
	"time"

	"github.com/google/uuid"
)

// CategoryNameMaxLen is the column limit for Category.Name.
const CategoryNameMaxLen = 100

// Category groups content items. Names are unique.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}
