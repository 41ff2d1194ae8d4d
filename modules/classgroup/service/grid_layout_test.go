package service

import (
	"testing"

	"roadwise/modules/classgroup/entity"

	"github.com/google/uuid"
)

// testGrid mirrors the default deployment: 08:00-18:00, 30 minute rows,
// Monday through Friday, one label column and one header row.
func testGrid(t *testing.T) *GridLayout {
	t.Helper()
	grid, err := NewGridLayout(GridConfig{
		DayStartMin:    480,
		DayEndMin:      1080,
		GranularityMin: 30,
		WorkingDays: []entity.Weekday{
			entity.DayMonday, entity.DayTuesday, entity.DayWednesday,
			entity.DayThursday, entity.DayFriday,
		},
		LabelColumns: 1,
		HeaderRows:   1,
	})
	if err != nil {
		t.Fatalf("NewGridLayout: %v", err)
	}
	return grid
}

func TestNewGridLayoutValidation(t *testing.T) {
	base := GridConfig{
		DayStartMin:    480,
		DayEndMin:      1080,
		GranularityMin: 30,
		WorkingDays:    []entity.Weekday{entity.DayMonday},
	}

	t.Run("zero granularity", func(t *testing.T) {
		cfg := base
		cfg.GranularityMin = 0
		if _, err := NewGridLayout(cfg); err == nil {
			t.Error("expected error for zero granularity")
		}
	})

	t.Run("end before start", func(t *testing.T) {
		cfg := base
		cfg.DayEndMin = 480
		if _, err := NewGridLayout(cfg); err == nil {
			t.Error("expected error for end <= start")
		}
	})

	t.Run("no working days", func(t *testing.T) {
		cfg := base
		cfg.WorkingDays = nil
		if _, err := NewGridLayout(cfg); err == nil {
			t.Error("expected error for empty working days")
		}
	})

	t.Run("unknown working day", func(t *testing.T) {
		cfg := base
		cfg.WorkingDays = []entity.Weekday{"someday"}
		if _, err := NewGridLayout(cfg); err == nil {
			t.Error("expected error for unknown day")
		}
	})
}

func TestGridLayoutPlacement(t *testing.T) {
	grid := testGrid(t)
	truck := uuid.New()

	t.Run("day columns follow working day order", func(t *testing.T) {
		slots := []entity.ScheduleSlot{
			slot(uuid.New(), &truck, entity.DayMonday, 480, 510),
			slot(uuid.New(), &truck, entity.DayWednesday, 480, 510),
			slot(uuid.New(), &truck, entity.DayFriday, 480, 510),
		}
		blocks := grid.Layout(slots)
		if blocks[0].DayColumn != 2 {
			t.Errorf("monday column = %d, want 2", blocks[0].DayColumn)
		}
		if blocks[1].DayColumn != 4 {
			t.Errorf("wednesday column = %d, want 4", blocks[1].DayColumn)
		}
		if blocks[2].DayColumn != 6 {
			t.Errorf("friday column = %d, want 6", blocks[2].DayColumn)
		}
	})

	t.Run("rows floor to granularity", func(t *testing.T) {
		// 09:10-10:05 on a 30 minute grid starting 08:00: start floors to
		// the 09:00 row, end floors to the 10:00 row.
		blocks := grid.Layout([]entity.ScheduleSlot{
			slot(uuid.New(), &truck, entity.DayMonday, 550, 605),
		})
		if blocks[0].RowStart != 4 {
			t.Errorf("RowStart = %d, want 4", blocks[0].RowStart)
		}
		if blocks[0].RowEnd != 6 {
			t.Errorf("RowEnd = %d, want 6", blocks[0].RowEnd)
		}
	})

	t.Run("start before day start floors toward negative infinity", func(t *testing.T) {
		// 07:45 is 15 minutes before the 08:00 day start; the row lands
		// one above the first visible row, not on it.
		blocks := grid.Layout([]entity.ScheduleSlot{
			slot(uuid.New(), &truck, entity.DayMonday, 465, 510),
		})
		if blocks[0].RowStart != 1 {
			t.Errorf("RowStart = %d, want 1", blocks[0].RowStart)
		}
	})

	t.Run("slot past day end is positioned, not clipped", func(t *testing.T) {
		blocks := grid.Layout([]entity.ScheduleSlot{
			slot(uuid.New(), &truck, entity.DayMonday, 1080, 1140),
		})
		if blocks[0].RowStart != 22 {
			t.Errorf("RowStart = %d, want 22", blocks[0].RowStart)
		}
		if blocks[0].RowEnd != 24 {
			t.Errorf("RowEnd = %d, want 24", blocks[0].RowEnd)
		}
	})

	t.Run("non working day lands after visible columns", func(t *testing.T) {
		blocks := grid.Layout([]entity.ScheduleSlot{
			slot(uuid.New(), &truck, entity.DaySaturday, 480, 510),
			slot(uuid.New(), &truck, entity.DaySunday, 480, 510),
		})
		// LabelColumns(1) + 5 working days + 1 + ordinal.
		if blocks[0].DayColumn != 12 {
			t.Errorf("saturday column = %d, want 12", blocks[0].DayColumn)
		}
		if blocks[1].DayColumn != 13 {
			t.Errorf("sunday column = %d, want 13", blocks[1].DayColumn)
		}
	})

	t.Run("invalid interval renders zero height", func(t *testing.T) {
		blocks := grid.Layout([]entity.ScheduleSlot{
			slot(uuid.New(), &truck, entity.DayMonday, 600, 600),
		})
		if blocks[0].RowStart != blocks[0].RowEnd {
			t.Errorf("zero-length slot should have RowStart == RowEnd, got %d..%d",
				blocks[0].RowStart, blocks[0].RowEnd)
		}
	})

	t.Run("blocks keep input order", func(t *testing.T) {
		a := slot(uuid.New(), &truck, entity.DayFriday, 900, 960)
		b := slot(uuid.New(), &truck, entity.DayMonday, 480, 540)
		blocks := grid.Layout([]entity.ScheduleSlot{a, b})
		if blocks[0].SlotID != a.ID || blocks[1].SlotID != b.ID {
			t.Error("layout must preserve input order")
		}
	})
}

func TestGridLayoutConflictFlags(t *testing.T) {
	grid := testGrid(t)
	truckA := uuid.New()
	truckB := uuid.New()

	t.Run("both sides of an overlap are flagged", func(t *testing.T) {
		blocks := grid.Layout([]entity.ScheduleSlot{
			slot(uuid.New(), &truckA, entity.DayMonday, 540, 630),
			slot(uuid.New(), &truckA, entity.DayMonday, 600, 660),
		})
		if !blocks[0].HasConflict || !blocks[1].HasConflict {
			t.Errorf("both blocks should be flagged, got %v %v",
				blocks[0].HasConflict, blocks[1].HasConflict)
		}
	})

	t.Run("different trucks are clean", func(t *testing.T) {
		blocks := grid.Layout([]entity.ScheduleSlot{
			slot(uuid.New(), &truckA, entity.DayMonday, 540, 630),
			slot(uuid.New(), &truckB, entity.DayMonday, 540, 630),
		})
		if blocks[0].HasConflict || blocks[1].HasConflict {
			t.Error("different trucks should not be flagged")
		}
	})

	t.Run("same time different day is clean", func(t *testing.T) {
		blocks := grid.Layout([]entity.ScheduleSlot{
			slot(uuid.New(), &truckA, entity.DayMonday, 540, 630),
			slot(uuid.New(), &truckA, entity.DayTuesday, 540, 630),
		})
		if blocks[0].HasConflict || blocks[1].HasConflict {
			t.Error("different days should not be flagged")
		}
	})

	t.Run("unassigned slots are never flagged", func(t *testing.T) {
		blocks := grid.Layout([]entity.ScheduleSlot{
			slot(uuid.New(), nil, entity.DayMonday, 540, 630),
			slot(uuid.New(), nil, entity.DayMonday, 540, 630),
		})
		if blocks[0].HasConflict || blocks[1].HasConflict {
			t.Error("slots without a truck should not be flagged")
		}
	})

	t.Run("three way overlap flags all three", func(t *testing.T) {
		blocks := grid.Layout([]entity.ScheduleSlot{
			slot(uuid.New(), &truckA, entity.DayWednesday, 540, 660),
			slot(uuid.New(), &truckA, entity.DayWednesday, 600, 720),
			slot(uuid.New(), &truckA, entity.DayWednesday, 630, 690),
		})
		for i, b := range blocks {
			if !b.HasConflict {
				t.Errorf("block %d should be flagged", i)
			}
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		slots := []entity.ScheduleSlot{
			slot(uuid.New(), &truckA, entity.DayMonday, 540, 630),
			slot(uuid.New(), &truckA, entity.DayTuesday, 600, 660),
			slot(uuid.New(), &truckB, entity.DayMonday, 540, 630),
		}
		first := grid.Layout(slots)
		for run := 0; run < 5; run++ {
			again := grid.Layout(slots)
			for i := range first {
				if first[i] != again[i] {
					t.Fatalf("run %d block %d differs: %+v vs %+v", run, i, first[i], again[i])
				}
			}
		}
	})
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{60, 30, 2},
		{45, 30, 1},
		{0, 30, 0},
		{-15, 30, -1},
		{-30, 30, -1},
		{-45, 30, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
