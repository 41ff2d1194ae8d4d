package service

import (
	"fmt"

	"roadwise/modules/classgroup/entity"
)

// GridConfig fixes the weekly grid geometry at construction time.
type GridConfig struct {
	DayStartMin    int
	DayEndMin      int
	GranularityMin int
	WorkingDays    []entity.Weekday
	// LabelColumns and HeaderRows shift every block past the leading
	// time-label column(s) and the day-header row(s).
	LabelColumns int
	HeaderRows   int
}

// GridLayout positions a week's worth of slots onto (day column, time
// row) coordinates and pre-computes each slot's conflict flag.
type GridLayout struct {
	cfg       GridConfig
	dayColumn map[entity.Weekday]int
}

func NewGridLayout(cfg GridConfig) (*GridLayout, error) {
	if cfg.GranularityMin <= 0 {
		return nil, fmt.Errorf("grid granularity must be positive, got %d", cfg.GranularityMin)
	}
	if cfg.DayEndMin <= cfg.DayStartMin {
		return nil, fmt.Errorf("grid day end %d must be after day start %d", cfg.DayEndMin, cfg.DayStartMin)
	}
	if len(cfg.WorkingDays) == 0 {
		return nil, fmt.Errorf("grid needs at least one working day")
	}

	columns := make(map[entity.Weekday]int, len(cfg.WorkingDays))
	for i, day := range cfg.WorkingDays {
		if !day.IsValid() {
			return nil, fmt.Errorf("unknown working day %q", day)
		}
		columns[day] = cfg.LabelColumns + i + 1
	}

	return &GridLayout{cfg: cfg, dayColumn: columns}, nil
}

// Layout returns one GridBlock per input slot, in input order. Slots on
// non-working days and slots outside the visible time range are still
// positioned; clipping is the renderer's business, not the layout's.
func (g *GridLayout) Layout(slots []entity.ScheduleSlot) []entity.GridBlock {
	conflicted := g.markConflicts(slots)

	blocks := make([]entity.GridBlock, len(slots))
	for i, slot := range slots {
		blocks[i] = entity.GridBlock{
			SlotID:      slot.ID,
			DayColumn:   g.columnFor(slot.Day),
			RowStart:    g.rowFor(slot.Interval.StartMin),
			RowEnd:      g.rowFor(slot.Interval.EndMin),
			HasConflict: conflicted[i],
		}
	}
	return blocks
}

// markConflicts runs the per-day pairwise scan. O(n²) within a day is
// fine at this scale (tens of slots, not thousands). Both sides of each
// overlapping same-truck pair are flagged so every double-booked party
// is visibly highlighted.
func (g *GridLayout) markConflicts(slots []entity.ScheduleSlot) []bool {
	flags := make([]bool, len(slots))

	byDay := make(map[entity.Weekday][]int)
	for i, slot := range slots {
		byDay[slot.Day] = append(byDay[slot.Day], i)
	}

	for _, idxs := range byDay {
		for a := 0; a < len(idxs); a++ {
			for b := a + 1; b < len(idxs); b++ {
				sa, sb := slots[idxs[a]], slots[idxs[b]]
				if sa.TruckID == nil || sb.TruckID == nil || *sa.TruckID != *sb.TruckID {
					continue
				}
				if sa.Interval.Overlaps(sb.Interval) {
					flags[idxs[a]] = true
					flags[idxs[b]] = true
				}
			}
		}
	}
	return flags
}

func (g *GridLayout) columnFor(day entity.Weekday) int {
	if col, ok := g.dayColumn[day]; ok {
		return col
	}
	// Non-working days land after the visible columns, ordered by
	// weekday, so callers can render or ignore them.
	return g.cfg.LabelColumns + len(g.cfg.WorkingDays) + 1 + day.Ordinal()
}

func (g *GridLayout) rowFor(minute int) int {
	return floorDiv(minute-g.cfg.DayStartMin, g.cfg.GranularityMin) + g.cfg.HeaderRows + 1
}

// floorDiv floors toward negative infinity; plain Go division truncates
// toward zero, which misplaces slots starting before the configured day
// start.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
