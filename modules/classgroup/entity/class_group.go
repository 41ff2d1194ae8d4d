package entity

import (
	"fmt"

	coreentity "roadwise/core/entity"

	"github.com/google/uuid"
)

// Weekday enumerates the seven schedule days.
type Weekday string

const (
	DayMonday    Weekday = "monday"
	DayTuesday   Weekday = "tuesday"
	DayWednesday Weekday = "wednesday"
	DayThursday  Weekday = "thursday"
	DayFriday    Weekday = "friday"
	DaySaturday  Weekday = "saturday"
	DaySunday    Weekday = "sunday"
)

var weekdayOrder = map[Weekday]int{
	DayMonday:    0,
	DayTuesday:   1,
	DayWednesday: 2,
	DayThursday:  3,
	DayFriday:    4,
	DaySaturday:  5,
	DaySunday:    6,
}

// ParseWeekday validates a wire value against the enum.
func ParseWeekday(s string) (Weekday, bool) {
	d := Weekday(s)
	_, ok := weekdayOrder[d]
	return d, ok
}

// Ordinal returns the Monday-based position (0-6), or -1 for an
// unknown value.
func (d Weekday) Ordinal() int {
	if n, ok := weekdayOrder[d]; ok {
		return n
	}
	return -1
}

func (d Weekday) IsValid() bool {
	_, ok := weekdayOrder[d]
	return ok
}

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClassGroup is a recurring weekly teaching session tied to a school,
// an optional truck, a day of week and a time interval.
type ClassGroup struct {
	SchoolID    uuid.UUID  `db:"school_id" json:"school_id"`
	TruckID     *uuid.UUID `db:"truck_id" json:"truck_id,omitempty"`
	Name        string     `db:"name" json:"name"`
	Day         Weekday    `db:"day_of_week" json:"day_of_week"`
	StartMinute int        `db:"start_minute" json:"start_minute"`
	EndMinute   int        `db:"end_minute" json:"end_minute"`
	coreentity.Archivable
	coreentity.BaseEntity
}

// Slot projects the schedule-relevant fields for conflict detection
// and grid layout.
func (g *ClassGroup) Slot(schoolName string) ScheduleSlot {
	return ScheduleSlot{
		ID:                g.ID,
		TruckID:           g.TruckID,
		Day:               g.Day,
		Interval:          TimeInterval{StartMin: g.StartMinute, EndMin: g.EndMinute},
		DisplayName:       g.Name,
		SchoolDisplayName: schoolName,
	}
}

// PaginatedClassGroupEntity is a page of class groups.
type PaginatedClassGroupEntity = coreentity.Pagination[ClassGroup]
