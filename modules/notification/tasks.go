package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"roadwise/core/constants"
	"roadwise/core/logger"
	"roadwise/modules/notification/dto"
	"roadwise/modules/notification/service"

	"github.com/hibiken/asynq"
)

// RegisterTasks binds the notification task handlers onto the worker mux.
func RegisterTasks(mux *asynq.ServeMux, svc *service.NotificationService) {
	mux.HandleFunc(constants.TaskTypeConflictAlert, handleConflictAlert(svc))
}

// handleConflictAlert turns a confirmed truck double-booking into a
// broadcast notification for the dispatch team.
func handleConflictAlert(svc *service.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload dto.ConflictAlertPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal conflict alert payload: %w", err)
		}

		title := "Truck double-booked"
		message := fmt.Sprintf("%q overlaps %d other slot(s) on %s %s-%s",
			payload.SlotName, payload.ConflictCount,
			payload.DayOfWeek, payload.StartTime, payload.EndTime)

		_, appErr := svc.Create(ctx, &dto.CreateNotificationRequest{
			Title:   title,
			Message: message,
			Type:    "schedule_conflict",
			Data: map[string]any{
				"truck_id":     payload.TruckID,
				"day_of_week":  payload.DayOfWeek,
				"start_time":   payload.StartTime,
				"end_time":     payload.EndTime,
				"conflict_ids": payload.ConflictIDs,
			},
		})
		if appErr != nil {
			return fmt.Errorf("create conflict notification: %w", appErr)
		}

		logger.Info("Notification:ConflictAlert:Created",
			"truck_id", payload.TruckID,
			"conflicts", payload.ConflictCount,
		)
		return nil
	}
}
