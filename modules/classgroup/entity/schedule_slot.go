package entity

import "github.com/google/uuid"

// TimeInterval is a wall-clock interval in minutes since midnight,
// half-open: [StartMin, EndMin).
type TimeInterval struct {
	StartMin int `json:"start_min"`
	EndMin   int `json:"end_min"`
}

// IsValid reports the interval invariant: end strictly after start.
func (t TimeInterval) IsValid() bool {
	return t.EndMin > t.StartMin
}

// Overlaps applies the half-open rule: [s1,e1) and [s2,e2) overlap iff
// s1 < e2 && s2 < e1. Touching intervals do not overlap, so
// back-to-back sessions on the same truck are legal.
func (t TimeInterval) Overlaps(o TimeInterval) bool {
	return t.StartMin < o.EndMin && o.StartMin < t.EndMin
}

// ScheduleSlot carries one class group's schedule-relevant fields.
// A zero ID marks an unsaved candidate; a nil TruckID means no truck is
// assigned, which by definition can never conflict with anything.
type ScheduleSlot struct {
	ID                uuid.UUID    `json:"id"`
	TruckID           *uuid.UUID   `json:"truck_id,omitempty"`
	Day               Weekday      `json:"day_of_week"`
	Interval          TimeInterval `json:"interval"`
	DisplayName       string       `json:"display_name"`
	SchoolDisplayName string       `json:"school_display_name"`
}

// ConflictResult reports every existing slot a candidate collides with.
// Conflicts keeps the input order of the existing set.
type ConflictResult struct {
	HasConflicts bool           `json:"has_conflicts"`
	Conflicts    []ScheduleSlot `json:"conflicts"`
}

// GridBlock is the display-only placement of one slot on the weekly
// grid. Recomputed on every render, never persisted.
type GridBlock struct {
	SlotID      uuid.UUID `json:"slot_id"`
	DayColumn   int       `json:"day_column"`
	RowStart    int       `json:"row_start"`
	RowEnd      int       `json:"row_end"`
	HasConflict bool      `json:"has_conflict"`
}
