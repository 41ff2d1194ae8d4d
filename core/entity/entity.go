package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity holds the columns shared by every table.
type BaseEntity struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Archivable adds soft-delete. Archived rows stay queryable by ID but
// drop out of listings.
type Archivable struct {
	ArchivedAt *time.Time `db:"archived_at" json:"archived_at,omitempty"`
}

func (a *Archivable) IsArchived() bool {
	return a.ArchivedAt != nil
}

// Pagination wraps a page of items with its envelope.
type Pagination[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}
