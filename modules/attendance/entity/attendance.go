package entity

import (
	"time"

	coreentity "roadwise/core/entity"

	"github.com/google/uuid"
)

// AttendanceStatus is the per-session presence outcome.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// AttendanceRecord is one student's outcome for one class-group session.
// Score and Remark carry the instructor's evaluation and are optional.
type AttendanceRecord struct {
	ClassGroupID uuid.UUID        `db:"class_group_id" json:"class_group_id"`
	StudentID    uuid.UUID        `db:"student_id" json:"student_id"`
	SessionDate  time.Time        `db:"session_date" json:"session_date"`
	Status       AttendanceStatus `db:"status" json:"status"`
	Score        *int             `db:"score" json:"score,omitempty"`
	Remark       *string          `db:"remark" json:"remark,omitempty"`
	coreentity.BaseEntity
}

// StudentSummary aggregates one student's attendance and evaluation
// across every recorded session.
type StudentSummary struct {
	StudentID    uuid.UUID `db:"student_id" json:"student_id"`
	TotalRecords int       `db:"total_records" json:"total_records"`
	Present      int       `db:"present" json:"present"`
	Absent       int       `db:"absent" json:"absent"`
	Late         int       `db:"late" json:"late"`
	Excused      int       `db:"excused" json:"excused"`
	AverageScore *float64  `db:"average_score" json:"average_score,omitempty"`
}
