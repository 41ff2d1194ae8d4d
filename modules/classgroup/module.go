package classgroup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roadwise/core/cache"
	"roadwise/core/constants"
	"roadwise/core/database"
	"roadwise/core/logger"
	"roadwise/core/middleware"
	"roadwise/core/tasks"
	"roadwise/modules/classgroup/controller"
	"roadwise/modules/classgroup/entity"
	"roadwise/modules/classgroup/repository"
	"roadwise/modules/classgroup/router"
	"roadwise/modules/classgroup/service"
	notifdto "roadwise/modules/notification/dto"

	"github.com/labstack/echo/v4"
)

// ScheduleSettings is the grid geometry and debounce configuration,
// resolved from config by the caller.
type ScheduleSettings struct {
	DayStart          string
	DayEnd            string
	GranularityMin    int
	WorkingDays       string
	RecheckDebounceMS int
}

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, cacheStore cache.ICache, taskClient tasks.Enqueuer, settings ScheduleSettings) error {
	dayStart, err := entity.ParseClock(settings.DayStart)
	if err != nil {
		return fmt.Errorf("parse schedule day start: %w", err)
	}
	dayEnd, err := entity.ParseClock(settings.DayEnd)
	if err != nil {
		return fmt.Errorf("parse schedule day end: %w", err)
	}

	var workingDays []entity.Weekday
	for _, raw := range strings.Split(settings.WorkingDays, ",") {
		day, ok := entity.ParseWeekday(strings.TrimSpace(raw))
		if !ok {
			return fmt.Errorf("unknown working day %q", raw)
		}
		workingDays = append(workingDays, day)
	}

	grid, err := service.NewGridLayout(service.GridConfig{
		DayStartMin:    dayStart,
		DayEndMin:      dayEnd,
		GranularityMin: settings.GranularityMin,
		WorkingDays:    workingDays,
		LabelColumns:   1,
		HeaderRows:     1,
	})
	if err != nil {
		return fmt.Errorf("build grid layout: %w", err)
	}

	repo := repository.NewClassGroupRepository(db)

	// Post-write revalidation: bursts of schedule edits coalesce into one
	// check, and confirmed double-bookings fan out as notifications.
	watcher := service.NewConflictWatcher(repo,
		time.Duration(settings.RecheckDebounceMS)*time.Millisecond,
		func(outcome service.CheckOutcome) {
			if outcome.Err != nil {
				logger.Error("ClassGroup:ConflictWatcher:CheckFailed", outcome.Err)
				return
			}
			if !outcome.Result.HasConflicts {
				return
			}

			conflictIDs := make([]string, 0, len(outcome.Result.Conflicts))
			for _, slot := range outcome.Result.Conflicts {
				conflictIDs = append(conflictIDs, slot.ID.String())
			}

			payload := notifdto.ConflictAlertPayload{
				TruckID:       outcome.Candidate.TruckID.String(),
				DayOfWeek:     string(outcome.Candidate.Day),
				StartTime:     entity.FormatClock(outcome.Candidate.Interval.StartMin),
				EndTime:       entity.FormatClock(outcome.Candidate.Interval.EndMin),
				SlotName:      outcome.Candidate.DisplayName,
				ConflictCount: len(outcome.Result.Conflicts),
				ConflictIDs:   conflictIDs,
			}
			if err := taskClient.Enqueue(context.Background(), constants.TaskTypeConflictAlert, payload); err != nil {
				logger.Error("ClassGroup:ConflictWatcher:EnqueueAlert", err)
			}
		})

	svc := service.NewClassGroupService(repo, grid, watcher, cacheStore)
	ctrl := controller.NewClassGroupController(svc)
	router.NewClassGroupRouter(ctrl).Setup(e, mw)
	return nil
}
