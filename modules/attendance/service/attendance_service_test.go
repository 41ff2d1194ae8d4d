package service

import (
	"context"
	"testing"
	"time"

	coreerrors "roadwise/core/errors"
	"roadwise/modules/attendance/dto"
	"roadwise/modules/attendance/entity"

	"github.com/google/uuid"
)

type sessionKey struct {
	group   uuid.UUID
	student uuid.UUID
	date    string
}

// fakeAttendanceRepo mimics the upsert semantics: one row per
// (group, student, date), later writes replace earlier ones.
type fakeAttendanceRepo struct {
	records map[sessionKey]*entity.AttendanceRecord
	groups  map[uuid.UUID]bool
}

func newFakeAttendanceRepo(groups ...uuid.UUID) *fakeAttendanceRepo {
	f := &fakeAttendanceRepo{
		records: make(map[sessionKey]*entity.AttendanceRecord),
		groups:  make(map[uuid.UUID]bool),
	}
	for _, g := range groups {
		f.groups[g] = true
	}
	return f
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, record *entity.AttendanceRecord) (*entity.AttendanceRecord, error) {
	key := sessionKey{record.ClassGroupID, record.StudentID, record.SessionDate.Format("2006-01-02")}
	if existing, ok := f.records[key]; ok {
		record.ID = existing.ID
	} else {
		record.ID = uuid.New()
	}
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) ListForSession(ctx context.Context, classGroupID uuid.UUID, sessionDate time.Time) ([]entity.AttendanceRecord, error) {
	out := make([]entity.AttendanceRecord, 0)
	date := sessionDate.Format("2006-01-02")
	for key, r := range f.records {
		if key.group == classGroupID && key.date == date {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) StudentSummary(ctx context.Context, studentID uuid.UUID) (*entity.StudentSummary, error) {
	summary := &entity.StudentSummary{StudentID: studentID}
	var scoreSum, scoreCount int
	for key, r := range f.records {
		if key.student != studentID {
			continue
		}
		summary.TotalRecords++
		switch r.Status {
		case entity.StatusPresent:
			summary.Present++
		case entity.StatusAbsent:
			summary.Absent++
		case entity.StatusLate:
			summary.Late++
		case entity.StatusExcused:
			summary.Excused++
		}
		if r.Score != nil {
			scoreSum += *r.Score
			scoreCount++
		}
	}
	if scoreCount > 0 {
		avg := float64(scoreSum) / float64(scoreCount)
		summary.AverageScore = &avg
	}
	return summary, nil
}

func (f *fakeAttendanceRepo) GroupExists(ctx context.Context, classGroupID uuid.UUID) (bool, error) {
	return f.groups[classGroupID], nil
}

func intPtr(n int) *int { return &n }

func TestRecordSession(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	studentA := uuid.New()
	studentB := uuid.New()

	t.Run("records a full sheet", func(t *testing.T) {
		repo := newFakeAttendanceRepo(groupID)
		svc := NewAttendanceService(repo)

		resp, appErr := svc.RecordSession(ctx, &dto.RecordSessionRequest{
			ClassGroupID: groupID.String(),
			SessionDate:  "2026-09-07",
			Entries: []dto.SessionEntryRequest{
				{StudentID: studentA.String(), Status: "present", Score: intPtr(8)},
				{StudentID: studentB.String(), Status: "absent"},
			},
		})
		if appErr != nil {
			t.Fatalf("RecordSession: %v", appErr)
		}
		if len(resp.Records) != 2 {
			t.Fatalf("records = %d, want 2", len(resp.Records))
		}
		if resp.Records[0].SessionDate != "2026-09-07" {
			t.Errorf("session date = %s", resp.Records[0].SessionDate)
		}
	})

	t.Run("re-recording replaces the earlier outcome", func(t *testing.T) {
		repo := newFakeAttendanceRepo(groupID)
		svc := NewAttendanceService(repo)

		first, appErr := svc.RecordSession(ctx, &dto.RecordSessionRequest{
			ClassGroupID: groupID.String(),
			SessionDate:  "2026-09-07",
			Entries:      []dto.SessionEntryRequest{{StudentID: studentA.String(), Status: "absent"}},
		})
		if appErr != nil {
			t.Fatal(appErr)
		}
		second, appErr := svc.RecordSession(ctx, &dto.RecordSessionRequest{
			ClassGroupID: groupID.String(),
			SessionDate:  "2026-09-07",
			Entries:      []dto.SessionEntryRequest{{StudentID: studentA.String(), Status: "late", Score: intPtr(6)}},
		})
		if appErr != nil {
			t.Fatal(appErr)
		}
		if second.Records[0].ID != first.Records[0].ID {
			t.Error("correction should keep the same record identity")
		}

		session, appErr := svc.GetSession(ctx, groupID, "2026-09-07")
		if appErr != nil {
			t.Fatal(appErr)
		}
		if len(session.Records) != 1 || session.Records[0].Status != "late" {
			t.Errorf("session after correction = %+v", session.Records)
		}
	})

	t.Run("bad row rejects the whole sheet before any write", func(t *testing.T) {
		repo := newFakeAttendanceRepo(groupID)
		svc := NewAttendanceService(repo)

		_, appErr := svc.RecordSession(ctx, &dto.RecordSessionRequest{
			ClassGroupID: groupID.String(),
			SessionDate:  "2026-09-07",
			Entries: []dto.SessionEntryRequest{
				{StudentID: studentA.String(), Status: "present"},
				{StudentID: studentB.String(), Status: "asleep"},
			},
		})
		if appErr == nil || appErr.Code != coreerrors.ErrInvalidInput {
			t.Fatalf("expected INVALID_INPUT, got %v", appErr)
		}
		if len(repo.records) != 0 {
			t.Errorf("nothing should be written, found %d records", len(repo.records))
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		svc := NewAttendanceService(newFakeAttendanceRepo(groupID))

		cases := []*dto.RecordSessionRequest{
			{ClassGroupID: "not-a-uuid", SessionDate: "2026-09-07", Entries: []dto.SessionEntryRequest{{StudentID: studentA.String(), Status: "present"}}},
			{ClassGroupID: groupID.String(), SessionDate: "07/09/2026", Entries: []dto.SessionEntryRequest{{StudentID: studentA.String(), Status: "present"}}},
			{ClassGroupID: groupID.String(), SessionDate: "2026-09-07"},
			{ClassGroupID: groupID.String(), SessionDate: "2026-09-07", Entries: []dto.SessionEntryRequest{{StudentID: studentA.String(), Status: "present", Score: intPtr(11)}}},
			{ClassGroupID: groupID.String(), SessionDate: "2026-09-07", Entries: []dto.SessionEntryRequest{{StudentID: studentA.String(), Status: "present", Score: intPtr(-1)}}},
		}
		for i, req := range cases {
			if _, appErr := svc.RecordSession(ctx, req); appErr == nil || appErr.Code != coreerrors.ErrInvalidInput {
				t.Errorf("case %d: expected INVALID_INPUT, got %v", i, appErr)
			}
		}
	})

	t.Run("unknown group is not found", func(t *testing.T) {
		svc := NewAttendanceService(newFakeAttendanceRepo())

		_, appErr := svc.RecordSession(ctx, &dto.RecordSessionRequest{
			ClassGroupID: uuid.New().String(),
			SessionDate:  "2026-09-07",
			Entries:      []dto.SessionEntryRequest{{StudentID: studentA.String(), Status: "present"}},
		})
		if appErr == nil || appErr.Code != coreerrors.ErrNotFound {
			t.Errorf("expected NOT_FOUND, got %v", appErr)
		}
	})
}

func TestStudentSummary(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	studentID := uuid.New()

	repo := newFakeAttendanceRepo(groupID)
	svc := NewAttendanceService(repo)

	sessions := []struct {
		date   string
		status string
		score  *int
	}{
		{"2026-09-07", "present", intPtr(8)},
		{"2026-09-14", "present", intPtr(6)},
		{"2026-09-21", "late", nil},
		{"2026-09-28", "absent", nil},
	}
	for _, s := range sessions {
		_, appErr := svc.RecordSession(ctx, &dto.RecordSessionRequest{
			ClassGroupID: groupID.String(),
			SessionDate:  s.date,
			Entries:      []dto.SessionEntryRequest{{StudentID: studentID.String(), Status: s.status, Score: s.score}},
		})
		if appErr != nil {
			t.Fatalf("seed %s: %v", s.date, appErr)
		}
	}

	summary, appErr := svc.StudentSummary(ctx, studentID)
	if appErr != nil {
		t.Fatalf("StudentSummary: %v", appErr)
	}
	if summary.TotalRecords != 4 || summary.Present != 2 || summary.Late != 1 || summary.Absent != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.AverageScore == nil || *summary.AverageScore != 7 {
		t.Errorf("average score = %v, want 7", summary.AverageScore)
	}
}
