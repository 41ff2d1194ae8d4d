package entity

import (
	coreentity "roadwise/core/entity"

	"github.com/google/uuid"
)

// Notification is one in-app message. UserID nil means an operations
// broadcast visible to every signed-in user.
type Notification struct {
	UserID  *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	Title   string     `db:"title" json:"title"`
	Message string     `db:"message" json:"message"`
	Type    string     `db:"type" json:"type"`
	Data    []byte     `db:"data" json:"data,omitempty"`
	IsRead  bool       `db:"is_read" json:"is_read"`
	coreentity.BaseEntity
}

type PaginatedNotificationEntity = coreentity.Pagination[Notification]
