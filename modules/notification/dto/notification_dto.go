package dto

import (
	"encoding/json"
	"time"

	"roadwise/modules/notification/entity"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

// CreateNotificationRequest creates one in-app notification. A nil
// UserID makes it a broadcast.
type CreateNotificationRequest struct {
	UserID  *uuid.UUID     `json:"user_id"`
	Title   string         `json:"title" validate:"required"`
	Message string         `json:"message" validate:"required"`
	Type    string         `json:"type" validate:"required"`
	Data    map[string]any `json:"data"`
}

type MarkAsReadRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required"`
}

// ConflictAlertPayload is the task payload raised when a schedule write
// leaves a truck double-booked.
type ConflictAlertPayload struct {
	TruckID       string   `json:"truck_id"`
	DayOfWeek     string   `json:"day_of_week"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	SlotName      string   `json:"slot_name"`
	ConflictCount int      `json:"conflict_count"`
	ConflictIDs   []string `json:"conflict_ids"`
}

// ===================== Response DTOs =====================

type NotificationResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}

type PaginatedNotificationResponse struct {
	Items      []NotificationResponse `json:"items"`
	TotalItems int                    `json:"total_items"`
	PageNumber int                    `json:"page_number"`
	PageSize   int                    `json:"page_size"`
}

// ===================== Mapper Functions =====================

func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		var data map[string]any
		if err := json.Unmarshal(n.Data, &data); err == nil {
			resp.Data = data
		}
	}
	return resp
}
