package service

import (
	"context"
	"sync"
	"time"

	"roadwise/modules/classgroup/entity"

	"github.com/google/uuid"
)

// SlotSource supplies the existing-slot snapshot for one truck/day,
// already filtered and with the edited slot's identity excluded.
type SlotSource interface {
	SlotsForTruckAndDay(ctx context.Context, truckID uuid.UUID, day entity.Weekday, excludeID uuid.UUID) ([]entity.ScheduleSlot, error)
}

// CheckOutcome is what the watcher delivers after a debounced check.
// Err set means the snapshot could not be fetched: unknown conflict
// state, never to be read as "no conflicts".
type CheckOutcome struct {
	Candidate entity.ScheduleSlot
	Result    entity.ConflictResult
	Err       error
}

// ConflictWatcher coalesces bursts of schedule edits into one conflict
// check: submissions reset a quiescence timer, and a monotonically
// increasing sequence guard discards every superseded evaluation so a
// stale fetch can never overwrite a later result.
type ConflictWatcher struct {
	source   SlotSource
	delay    time.Duration
	onResult func(CheckOutcome)
	timeout  time.Duration

	mu             sync.Mutex
	timer          *time.Timer
	seq            uint64
	pending        entity.ScheduleSlot
	pendingExclude uuid.UUID
}

func NewConflictWatcher(source SlotSource, delay time.Duration, onResult func(CheckOutcome)) *ConflictWatcher {
	return &ConflictWatcher{
		source:   source,
		delay:    delay,
		onResult: onResult,
		timeout:  10 * time.Second,
	}
}

// Submit records a candidate for checking once the debounce window
// goes quiet. Incomplete candidates (missing day or an interval that
// violates end > start) are skipped outright: a conflict check without
// a target is meaningless, not an error.
func (w *ConflictWatcher) Submit(candidate entity.ScheduleSlot, excludeID uuid.UUID) {
	if !candidate.Day.IsValid() || !candidate.Interval.IsValid() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.seq++
	seq := w.seq
	w.pending = candidate
	w.pendingExclude = excludeID

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() { w.evaluate(seq) })
}

// Stop cancels any pending evaluation.
func (w *ConflictWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seq++
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *ConflictWatcher) evaluate(seq uint64) {
	w.mu.Lock()
	if seq != w.seq {
		w.mu.Unlock()
		return
	}
	candidate := w.pending
	exclude := w.pendingExclude
	w.mu.Unlock()

	if candidate.TruckID == nil {
		// Complete check with nothing to collide with.
		w.deliver(seq, CheckOutcome{
			Candidate: candidate,
			Result:    entity.ConflictResult{HasConflicts: false, Conflicts: []entity.ScheduleSlot{}},
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	existing, err := w.source.SlotsForTruckAndDay(ctx, *candidate.TruckID, candidate.Day, exclude)
	if err != nil {
		w.deliver(seq, CheckOutcome{Candidate: candidate, Err: err})
		return
	}

	w.deliver(seq, CheckOutcome{Candidate: candidate, Result: FindConflicts(candidate, existing)})
}

func (w *ConflictWatcher) deliver(seq uint64, outcome CheckOutcome) {
	w.mu.Lock()
	stale := seq != w.seq
	w.mu.Unlock()
	if stale {
		// A newer submission arrived while this snapshot was in flight.
		return
	}
	w.onResult(outcome)
}
