package dto

import (
	"roadwise/modules/attendance/entity"
)

// ===================== Request DTOs =====================

// SessionEntryRequest is one student's outcome within a recorded session.
type SessionEntryRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	Status    string  `json:"status" validate:"required"`
	Score     *int    `json:"score"`
	Remark    *string `json:"remark"`
}

// RecordSessionRequest records or corrects a whole session at once.
// Re-submitting a (group, student, date) entry overwrites the earlier
// outcome.
type RecordSessionRequest struct {
	ClassGroupID string                `json:"class_group_id" validate:"required"`
	SessionDate  string                `json:"session_date" validate:"required"`
	Entries      []SessionEntryRequest `json:"entries" validate:"required"`
}

// ===================== Response DTOs =====================

type AttendanceRecordResponse struct {
	ID           string  `json:"id"`
	ClassGroupID string  `json:"class_group_id"`
	StudentID    string  `json:"student_id"`
	SessionDate  string  `json:"session_date"`
	Status       string  `json:"status"`
	Score        *int    `json:"score,omitempty"`
	Remark       *string `json:"remark,omitempty"`
}

type SessionResponse struct {
	ClassGroupID string                     `json:"class_group_id"`
	SessionDate  string                     `json:"session_date"`
	Records      []AttendanceRecordResponse `json:"records"`
}

type StudentSummaryResponse struct {
	StudentID    string   `json:"student_id"`
	TotalRecords int      `json:"total_records"`
	Present      int      `json:"present"`
	Absent       int      `json:"absent"`
	Late         int      `json:"late"`
	Excused      int      `json:"excused"`
	AverageScore *float64 `json:"average_score,omitempty"`
}

// ===================== Mapper Functions =====================

const sessionDateLayout = "2006-01-02"

func ToAttendanceRecordResponse(r *entity.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:           r.ID.String(),
		ClassGroupID: r.ClassGroupID.String(),
		StudentID:    r.StudentID.String(),
		SessionDate:  r.SessionDate.Format(sessionDateLayout),
		Status:       string(r.Status),
		Score:        r.Score,
		Remark:       r.Remark,
	}
}

func ToStudentSummaryResponse(s *entity.StudentSummary) *StudentSummaryResponse {
	return &StudentSummaryResponse{
		StudentID:    s.StudentID.String(),
		TotalRecords: s.TotalRecords,
		Present:      s.Present,
		Absent:       s.Absent,
		Late:         s.Late,
		Excused:      s.Excused,
		AverageScore: s.AverageScore,
	}
}
