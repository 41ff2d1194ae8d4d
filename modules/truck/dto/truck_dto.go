package dto

import (
	"time"

	"roadwise/modules/truck/entity"
)

// ===================== Request DTOs =====================

type TruckRequest struct {
	Name  string `json:"name" validate:"required"`
	Plate string `json:"plate" validate:"required"`
	Notes string `json:"notes"`
}

// ===================== Response DTOs =====================

type TruckResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plate     string    `json:"plate"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type PaginatedTruckResponse struct {
	Items      []TruckResponse `json:"items"`
	TotalItems int             `json:"total_items"`
	PageNumber int             `json:"page_number"`
	PageSize   int             `json:"page_size"`
}

// ===================== Mapper Functions =====================

func ToTruckResponse(t *entity.Truck) *TruckResponse {
	return &TruckResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Plate:     t.Plate,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
	}
}
