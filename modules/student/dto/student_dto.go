package dto

import (
	"strings"
	"time"

	"roadwise/modules/student/entity"
)

// ===================== Request DTOs =====================

type StudentRequest struct {
	SchoolID      string `json:"school_id" validate:"required"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
}

// ===================== Response DTOs =====================

type StudentResponse struct {
	ID            string    `json:"id"`
	SchoolID      string    `json:"school_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	FullName      string    `json:"full_name"`
	GuardianName  string    `json:"guardian_name"`
	GuardianPhone string    `json:"guardian_phone"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaginatedStudentResponse struct {
	Items      []StudentResponse `json:"items"`
	TotalItems int               `json:"total_items"`
	PageNumber int               `json:"page_number"`
	PageSize   int               `json:"page_size"`
}

// ===================== Mapper Functions =====================

func ToStudentResponse(s *entity.Student) *StudentResponse {
	return &StudentResponse{
		ID:            s.ID.String(),
		SchoolID:      s.SchoolID.String(),
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		FullName:      strings.TrimSpace(s.FirstName + " " + s.LastName),
		GuardianName:  s.GuardianName,
		GuardianPhone: s.GuardianPhone,
		CreatedAt:     s.CreatedAt,
	}
}
