package notification

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"roadwise/core/constants"
	"roadwise/core/params"
	"roadwise/modules/notification/dto"
	"roadwise/modules/notification/entity"
	"roadwise/modules/notification/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	n.ID = uuid.New()
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListForUser(ctx context.Context, userID uuid.UUID, q params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return &entity.PaginatedNotificationEntity{}, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return 0, nil
}

func TestHandleConflictAlert(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := service.NewNotificationService(repo)
	handler := handleConflictAlert(svc)

	payload := dto.ConflictAlertPayload{
		TruckID:       uuid.New().String(),
		DayOfWeek:     "monday",
		StartTime:     "09:00",
		EndTime:       "10:30",
		SlotName:      "Year 5 Road Safety",
		ConflictCount: 2,
		ConflictIDs:   []string{uuid.New().String(), uuid.New().String()},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	if err := handler(context.Background(), asynq.NewTask(constants.TaskTypeConflictAlert, raw)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("notifications created = %d, want 1", len(repo.created))
	}
	n := repo.created[0]
	if n.UserID != nil {
		t.Error("conflict alerts are broadcast, UserID must be nil")
	}
	if n.Type != "schedule_conflict" {
		t.Errorf("type = %q", n.Type)
	}
	if !strings.Contains(n.Message, "Year 5 Road Safety") || !strings.Contains(n.Message, "monday 09:00-10:30") {
		t.Errorf("message = %q", n.Message)
	}
	if !strings.Contains(n.Message, "2 other slot(s)") {
		t.Errorf("message should carry the conflict count, got %q", n.Message)
	}
}

func TestHandleConflictAlertBadPayload(t *testing.T) {
	svc := service.NewNotificationService(&fakeNotificationRepo{})
	handler := handleConflictAlert(svc)

	err := handler(context.Background(), asynq.NewTask(constants.TaskTypeConflictAlert, []byte("{not json")))
	if err == nil {
		t.Fatal("malformed payload must fail the task")
	}
}
