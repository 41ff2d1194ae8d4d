package dto

import (
	"time"

	"roadwise/modules/classgroup/entity"
)

// ===================== Request DTOs =====================

// ClassGroupRequest creates or updates a class group. Times are wall
// clock "HH:MM"; truck_id may be empty for a group not yet assigned to
// a truck.
type ClassGroupRequest struct {
	SchoolID  string `json:"school_id" validate:"required"`
	TruckID   string `json:"truck_id"`
	Name      string `json:"name" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	// Force saves despite reported conflicts, once the user has seen
	// and dismissed the warning.
	Force bool `json:"force"`
}

// CheckConflictsRequest mirrors the in-progress form fields. Any of
// them may still be empty while the user is typing.
type CheckConflictsRequest struct {
	TruckID   string `json:"truck_id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	// ExcludeID is the id of the group being edited, so its own saved
	// state is filtered out of the existing set before detection.
	ExcludeID string `json:"exclude_id"`
}

// AddStudentRequest adds one student to a class-group roster.
type AddStudentRequest struct {
	StudentID string `json:"student_id" validate:"required"`
}

// ===================== Response DTOs =====================

type ClassGroupResponse struct {
	ID         string    `json:"id"`
	SchoolID   string    `json:"school_id"`
	SchoolName string    `json:"school_name,omitempty"`
	TruckID    string    `json:"truck_id,omitempty"`
	Name       string    `json:"name"`
	DayOfWeek  string    `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
}

type PaginatedClassGroupResponse struct {
	Items      []ClassGroupResponse `json:"items"`
	TotalItems int                  `json:"total_items"`
	PageNumber int                  `json:"page_number"`
	PageSize   int                  `json:"page_size"`
}

// ConflictSlotDTO describes one colliding slot for the warning banner.
type ConflictSlotDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SchoolName string `json:"school_name"`
	DayOfWeek  string `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// CheckConflictsResponse reports a candidate check. Checked false means
// the candidate was incomplete and no check ran — distinct from a clean
// check with no conflicts.
type CheckConflictsResponse struct {
	Checked      bool              `json:"checked"`
	HasConflicts bool              `json:"has_conflicts"`
	Conflicts    []ConflictSlotDTO `json:"conflicts"`
}

// GridBlockDTO is one positioned block of the weekly grid, with the
// labels the renderer needs alongside the coordinates.
type GridBlockDTO struct {
	SlotID      string `json:"slot_id"`
	DayColumn   int    `json:"day_column"`
	RowStart    int    `json:"row_start"`
	RowEnd      int    `json:"row_end"`
	HasConflict bool   `json:"has_conflict"`
	Name        string `json:"name"`
	SchoolName  string `json:"school_name"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type WeekGridResponse struct {
	Blocks []GridBlockDTO `json:"blocks"`
}

type RosterResponse struct {
	ClassGroupID string             `json:"class_group_id"`
	Students     []RosterStudentDTO `json:"students"`
}

type RosterStudentDTO struct {
	StudentID string `json:"student_id"`
	FullName  string `json:"full_name"`
}

// ===================== Mapper Functions =====================

func ToClassGroupResponse(g *entity.ClassGroup, schoolName string) *ClassGroupResponse {
	resp := &ClassGroupResponse{
		ID:         g.ID.String(),
		SchoolID:   g.SchoolID.String(),
		SchoolName: schoolName,
		Name:       g.Name,
		DayOfWeek:  string(g.Day),
		StartTime:  entity.FormatClock(g.StartMinute),
		EndTime:    entity.FormatClock(g.EndMinute),
		CreatedAt:  g.CreatedAt,
	}
	if g.TruckID != nil {
		resp.TruckID = g.TruckID.String()
	}
	return resp
}

func ToConflictSlotDTO(s entity.ScheduleSlot) ConflictSlotDTO {
	return ConflictSlotDTO{
		ID:         s.ID.String(),
		Name:       s.DisplayName,
		SchoolName: s.SchoolDisplayName,
		DayOfWeek:  string(s.Day),
		StartTime:  entity.FormatClock(s.Interval.StartMin),
		EndTime:    entity.FormatClock(s.Interval.EndMin),
	}
}

func ToConflictSlotDTOs(slots []entity.ScheduleSlot) []ConflictSlotDTO {
	out := make([]ConflictSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, ToConflictSlotDTO(s))
	}
	return out
}

func ToGridBlockDTO(b entity.GridBlock, s entity.ScheduleSlot) GridBlockDTO {
	return GridBlockDTO{
		SlotID:      b.SlotID.String(),
		DayColumn:   b.DayColumn,
		RowStart:    b.RowStart,
		RowEnd:      b.RowEnd,
		HasConflict: b.HasConflict,
		Name:        s.DisplayName,
		SchoolName:  s.SchoolDisplayName,
		DayOfWeek:   string(s.Day),
		StartTime:   entity.FormatClock(s.Interval.StartMin),
		EndTime:     entity.FormatClock(s.Interval.EndMin),
	}
}
