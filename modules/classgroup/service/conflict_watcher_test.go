package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roadwise/modules/classgroup/entity"

	"github.com/google/uuid"
)

type fakeSlotSource struct {
	mu    sync.Mutex
	slots []entity.ScheduleSlot
	err   error
	calls int
	// block, when set, holds every fetch until released.
	block chan struct{}
}

func (f *fakeSlotSource) SlotsForTruckAndDay(ctx context.Context, truckID uuid.UUID, day entity.Weekday, excludeID uuid.UUID) ([]entity.ScheduleSlot, error) {
	f.mu.Lock()
	f.calls++
	block := f.block
	slots, err := f.slots, f.err
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return slots, err
}

func (f *fakeSlotSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func collectOutcomes() (func(CheckOutcome), chan CheckOutcome) {
	ch := make(chan CheckOutcome, 16)
	return func(o CheckOutcome) { ch <- o }, ch
}

func waitOutcome(t *testing.T, ch chan CheckOutcome) CheckOutcome {
	t.Helper()
	select {
	case o := <-ch:
		return o
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a check outcome")
		return CheckOutcome{}
	}
}

func TestConflictWatcherDebounce(t *testing.T) {
	truck := uuid.New()
	source := &fakeSlotSource{
		slots: []entity.ScheduleSlot{
			slot(uuid.New(), &truck, entity.DayMonday, 600, 660),
		},
	}
	onResult, outcomes := collectOutcomes()
	w := NewConflictWatcher(source, 20*time.Millisecond, onResult)
	defer w.Stop()

	// A burst of edits within the window collapses into one check
	// against the last candidate.
	w.Submit(slot(uuid.Nil, &truck, entity.DayMonday, 480, 540), uuid.Nil)
	w.Submit(slot(uuid.Nil, &truck, entity.DayMonday, 500, 560), uuid.Nil)
	w.Submit(slot(uuid.Nil, &truck, entity.DayMonday, 540, 630), uuid.Nil)

	outcome := waitOutcome(t, outcomes)
	if outcome.Err != nil {
		t.Fatalf("unexpected error: %v", outcome.Err)
	}
	if outcome.Candidate.Interval.StartMin != 540 {
		t.Errorf("checked candidate start = %d, want the last submission (540)", outcome.Candidate.Interval.StartMin)
	}
	if !outcome.Result.HasConflicts {
		t.Error("last candidate overlaps the existing slot and should conflict")
	}

	if got := source.callCount(); got != 1 {
		t.Errorf("expected a single coalesced fetch, got %d", got)
	}

	select {
	case o := <-outcomes:
		t.Errorf("unexpected extra outcome: %+v", o)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestConflictWatcherLatestWins(t *testing.T) {
	truck := uuid.New()
	release := make(chan struct{})
	source := &fakeSlotSource{
		slots: []entity.ScheduleSlot{
			slot(uuid.New(), &truck, entity.DayMonday, 600, 660),
		},
		block: release,
	}
	onResult, outcomes := collectOutcomes()
	w := NewConflictWatcher(source, time.Millisecond, onResult)
	defer w.Stop()

	// First check fires and stalls inside the fetch.
	w.Submit(slot(uuid.Nil, &truck, entity.DayMonday, 600, 660), uuid.Nil)
	deadline := time.After(2 * time.Second)
	for source.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("first fetch never started")
		case <-time.After(time.Millisecond):
		}
	}

	// A newer submission supersedes it, then both fetches complete.
	source.mu.Lock()
	source.block = nil
	source.mu.Unlock()
	w.Submit(slot(uuid.Nil, &truck, entity.DayMonday, 700, 760), uuid.Nil)
	close(release)

	outcome := waitOutcome(t, outcomes)
	if outcome.Candidate.Interval.StartMin != 700 {
		t.Errorf("delivered candidate start = %d, want 700 (stale result must be dropped)", outcome.Candidate.Interval.StartMin)
	}
	if outcome.Result.HasConflicts {
		t.Error("the 700-760 candidate does not overlap 600-660")
	}

	select {
	case o := <-outcomes:
		t.Errorf("stale outcome leaked through: %+v", o)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestConflictWatcherNilTruck(t *testing.T) {
	source := &fakeSlotSource{}
	onResult, outcomes := collectOutcomes()
	w := NewConflictWatcher(source, time.Millisecond, onResult)
	defer w.Stop()

	w.Submit(slot(uuid.Nil, nil, entity.DayMonday, 540, 600), uuid.Nil)

	outcome := waitOutcome(t, outcomes)
	if outcome.Err != nil {
		t.Fatalf("unexpected error: %v", outcome.Err)
	}
	if outcome.Result.HasConflicts {
		t.Error("no truck means no conflicts")
	}
	if outcome.Result.Conflicts == nil {
		t.Error("Conflicts should be an empty slice, not nil")
	}
	if got := source.callCount(); got != 0 {
		t.Errorf("no fetch expected for a truckless candidate, got %d", got)
	}
}

func TestConflictWatcherFetchError(t *testing.T) {
	truck := uuid.New()
	source := &fakeSlotSource{err: errors.New("connection refused")}
	onResult, outcomes := collectOutcomes()
	w := NewConflictWatcher(source, time.Millisecond, onResult)
	defer w.Stop()

	w.Submit(slot(uuid.Nil, &truck, entity.DayMonday, 540, 600), uuid.Nil)

	outcome := waitOutcome(t, outcomes)
	if outcome.Err == nil {
		t.Fatal("fetch failure must surface as an error outcome, not a clean result")
	}
	if outcome.Result.HasConflicts {
		t.Error("an errored check must not claim conflicts either way")
	}
}

func TestConflictWatcherSkipsIncompleteCandidates(t *testing.T) {
	truck := uuid.New()
	source := &fakeSlotSource{}
	onResult, outcomes := collectOutcomes()
	w := NewConflictWatcher(source, time.Millisecond, onResult)
	defer w.Stop()

	w.Submit(slot(uuid.Nil, &truck, "", 540, 600), uuid.Nil)
	w.Submit(slot(uuid.Nil, &truck, entity.DayMonday, 600, 540), uuid.Nil)

	select {
	case o := <-outcomes:
		t.Errorf("incomplete candidates should be skipped, got %+v", o)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestConflictWatcherStop(t *testing.T) {
	truck := uuid.New()
	source := &fakeSlotSource{}
	onResult, outcomes := collectOutcomes()
	w := NewConflictWatcher(source, 20*time.Millisecond, onResult)

	w.Submit(slot(uuid.Nil, &truck, entity.DayMonday, 540, 600), uuid.Nil)
	w.Stop()

	select {
	case o := <-outcomes:
		t.Errorf("stopped watcher delivered an outcome: %+v", o)
	case <-time.After(100 * time.Millisecond):
	}
}
