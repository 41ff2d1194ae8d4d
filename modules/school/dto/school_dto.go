package dto

import (
	"time"

	"roadwise/modules/school/entity"
)

// ===================== Request DTOs =====================

type SchoolRequest struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

// ===================== Response DTOs =====================

type SchoolResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Address      string    `json:"address"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaginatedSchoolResponse struct {
	Items      []SchoolResponse `json:"items"`
	TotalItems int              `json:"total_items"`
	PageNumber int              `json:"page_number"`
	PageSize   int              `json:"page_size"`
}

// ===================== Mapper Functions =====================

func ToSchoolResponse(s *entity.School) *SchoolResponse {
	return &SchoolResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		Slug:         s.Slug,
		Address:      s.Address,
		ContactName:  s.ContactName,
		ContactPhone: s.ContactPhone,
		CreatedAt:    s.CreatedAt,
	}
}
