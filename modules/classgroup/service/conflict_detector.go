package service

import (
	"roadwise/modules/classgroup/entity"
)

// FindConflicts decides which of the existing slots collide with the
// candidate. Pure function: same-truck filter, then same-day filter,
// then the half-open overlap test, keeping the input order of existing.
//
// The candidate's own saved state must be excluded from existing by the
// caller (the repository takes an exclude ID); no identity-based
// exclusion happens here, so passing a slot's prior version will report
// a conflict against itself.
func FindConflicts(candidate entity.ScheduleSlot, existing []entity.ScheduleSlot) entity.ConflictResult {
	conflicts := make([]entity.ScheduleSlot, 0)

	if candidate.TruckID == nil {
		// No truck assigned, nothing to collide with.
		return entity.ConflictResult{HasConflicts: false, Conflicts: conflicts}
	}

	for _, slot := range existing {
		if slot.TruckID == nil || *slot.TruckID != *candidate.TruckID {
			continue
		}
		if slot.Day != candidate.Day {
			continue
		}
		if candidate.Interval.Overlaps(slot.Interval) {
			conflicts = append(conflicts, slot)
		}
	}

	return entity.ConflictResult{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
	}
}
