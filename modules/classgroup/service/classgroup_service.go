package service

import (
	"context"
	"strings"
	"time"

	"roadwise/core/cache"
	"roadwise/core/constants"
	"roadwise/core/errors"
	"roadwise/core/logger"
	"roadwise/core/params"
	"roadwise/modules/classgroup/dto"
	"roadwise/modules/classgroup/entity"
	"roadwise/modules/classgroup/repository"

	"github.com/google/uuid"
)

// ClassGroupService handles class-group business logic: CRUD, the
// candidate conflict check, the weekly grid and roster membership.
type ClassGroupService struct {
	repo    repository.ClassGroupRepositoryInterface
	grid    *GridLayout
	watcher *ConflictWatcher
	cache   cache.ICache
}

type ClassGroupServiceInterface interface {
	CreateClassGroup(ctx context.Context, req *dto.ClassGroupRequest) (*dto.ClassGroupResponse, *errors.AppError)
	GetClassGroupByID(ctx context.Context, id uuid.UUID) (*dto.ClassGroupResponse, *errors.AppError)
	ListClassGroups(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*dto.PaginatedClassGroupResponse, *errors.AppError)
	UpdateClassGroup(ctx context.Context, id uuid.UUID, req *dto.ClassGroupRequest) (*dto.ClassGroupResponse, *errors.AppError)
	ArchiveClassGroup(ctx context.Context, id uuid.UUID) *errors.AppError

	CheckConflicts(ctx context.Context, req *dto.CheckConflictsRequest) (*dto.CheckConflictsResponse, *errors.AppError)
	WeekGrid(ctx context.Context) (*dto.WeekGridResponse, *errors.AppError)

	AddStudent(ctx context.Context, groupID uuid.UUID, req *dto.AddStudentRequest) *errors.AppError
	RemoveStudent(ctx context.Context, groupID, studentID uuid.UUID) *errors.AppError
	Roster(ctx context.Context, groupID uuid.UUID) (*dto.RosterResponse, *errors.AppError)
}

func NewClassGroupService(
	repo repository.ClassGroupRepositoryInterface,
	grid *GridLayout,
	watcher *ConflictWatcher,
	c cache.ICache,
) ClassGroupServiceInterface {
	return &ClassGroupService{
		repo:    repo,
		grid:    grid,
		watcher: watcher,
		cache:   c,
	}
}

// ===================== CRUD =====================

func (s *ClassGroupService) CreateClassGroup(ctx context.Context, req *dto.ClassGroupRequest) (*dto.ClassGroupResponse, *errors.AppError) {
	group, appErr := s.groupFromRequest(req)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.rejectConflictingSave(ctx, group, uuid.Nil, req.Force); appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.Create(ctx, group)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create class group", err)
	}

	s.afterScheduleWrite(ctx, created)

	schoolName, _ := s.repo.SchoolName(ctx, created.SchoolID)
	return dto.ToClassGroupResponse(created, schoolName), nil
}

func (s *ClassGroupService) GetClassGroupByID(ctx context.Context, id uuid.UUID) (*dto.ClassGroupResponse, *errors.AppError) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get class group", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Class group not found", nil)
	}

	schoolName, _ := s.repo.SchoolName(ctx, group.SchoolID)
	return dto.ToClassGroupResponse(group, schoolName), nil
}

func (s *ClassGroupService) ListClassGroups(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*dto.PaginatedClassGroupResponse, *errors.AppError) {
	page, err := s.repo.List(ctx, q, schoolID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list class groups", err)
	}

	items := make([]dto.ClassGroupResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *dto.ToClassGroupResponse(&page.Items[i], ""))
	}

	return &dto.PaginatedClassGroupResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *ClassGroupService) UpdateClassGroup(ctx context.Context, id uuid.UUID, req *dto.ClassGroupRequest) (*dto.ClassGroupResponse, *errors.AppError) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Class group not found", err)
	}

	group, appErr := s.groupFromRequest(req)
	if appErr != nil {
		return nil, appErr
	}
	group.ID = id

	if appErr := s.rejectConflictingSave(ctx, group, id, req.Force); appErr != nil {
		return nil, appErr
	}

	if err := s.repo.Update(ctx, group); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update class group", err)
	}

	s.afterScheduleWrite(ctx, group)

	schoolName, _ := s.repo.SchoolName(ctx, group.SchoolID)
	return dto.ToClassGroupResponse(group, schoolName), nil
}

func (s *ClassGroupService) ArchiveClassGroup(ctx context.Context, id uuid.UUID) *errors.AppError {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get class group", err)
	}
	if group == nil {
		return errors.NewAppError(errors.ErrNotFound, "Class group not found", nil)
	}

	if err := s.repo.Archive(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to archive class group", err)
	}

	s.invalidateWeekGrid(ctx)
	return nil
}

// ===================== Conflict check =====================

// CheckConflicts runs the advisory candidate check for the schedule
// form. An incomplete candidate (missing day or times) is not an error:
// the check is skipped and reported as such, never as "no conflicts".
func (s *ClassGroupService) CheckConflicts(ctx context.Context, req *dto.CheckConflictsRequest) (*dto.CheckConflictsResponse, *errors.AppError) {
	if req.DayOfWeek == "" || req.StartTime == "" || req.EndTime == "" {
		return &dto.CheckConflictsResponse{Checked: false, Conflicts: []dto.ConflictSlotDTO{}}, nil
	}

	candidate, appErr := s.candidateFromCheck(req)
	if appErr != nil {
		return nil, appErr
	}

	if candidate.TruckID == nil {
		// No truck assigned: a complete check with nothing to collide with.
		return &dto.CheckConflictsResponse{Checked: true, HasConflicts: false, Conflicts: []dto.ConflictSlotDTO{}}, nil
	}

	excludeID := uuid.Nil
	if req.ExcludeID != "" {
		parsed, err := uuid.Parse(req.ExcludeID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid exclude_id", err)
		}
		excludeID = parsed
	}

	existing, err := s.repo.SlotsForTruckAndDay(ctx, *candidate.TruckID, candidate.Day, excludeID)
	if err != nil {
		// Unknown conflict state: surface the failure rather than
		// claiming a clean schedule.
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch existing slots", err)
	}

	result := FindConflicts(candidate, existing)
	return &dto.CheckConflictsResponse{
		Checked:      true,
		HasConflicts: result.HasConflicts,
		Conflicts:    dto.ToConflictSlotDTOs(result.Conflicts),
	}, nil
}

// ===================== Week grid =====================

func (s *ClassGroupService) WeekGrid(ctx context.Context) (*dto.WeekGridResponse, *errors.AppError) {
	if s.cache != nil {
		var cached dto.WeekGridResponse
		hit, err := s.cache.GetJSON(ctx, constants.CacheKeyWeekGrid, &cached)
		if err != nil {
			logger.Warn("ClassGroupService:WeekGrid:CacheGet:Error", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	slots, err := s.repo.SlotsForWeek(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch weekly slots", err)
	}

	for _, slot := range slots {
		if !slot.Interval.IsValid() {
			// Legacy imports occasionally carry end <= start; the layout
			// renders them zero-height instead of dropping them.
			logger.Warn("ClassGroupService:WeekGrid:InvalidInterval",
				"slot_id", slot.ID.String(),
				"start", entity.FormatClock(slot.Interval.StartMin),
				"end", entity.FormatClock(slot.Interval.EndMin),
			)
		}
	}

	blocks := s.grid.Layout(slots)

	resp := &dto.WeekGridResponse{Blocks: make([]dto.GridBlockDTO, 0, len(blocks))}
	for i, block := range blocks {
		resp.Blocks = append(resp.Blocks, dto.ToGridBlockDTO(block, slots[i]))
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, constants.CacheKeyWeekGrid, resp, constants.CacheWeekGridTTLSeconds*time.Second); err != nil {
			logger.Warn("ClassGroupService:WeekGrid:CacheSet:Error", "error", err)
		}
	}
	return resp, nil
}

// ===================== Roster =====================

func (s *ClassGroupService) AddStudent(ctx context.Context, groupID uuid.UUID, req *dto.AddStudentRequest) *errors.AppError {
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Invalid student_id", err)
	}

	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get class group", err)
	}
	if group == nil {
		return errors.NewAppError(errors.ErrNotFound, "Class group not found", nil)
	}

	if err := s.repo.AddStudent(ctx, groupID, studentID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to add student to class group", err)
	}
	return nil
}

func (s *ClassGroupService) RemoveStudent(ctx context.Context, groupID, studentID uuid.UUID) *errors.AppError {
	if err := s.repo.RemoveStudent(ctx, groupID, studentID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove student from class group", err)
	}
	return nil
}

func (s *ClassGroupService) Roster(ctx context.Context, groupID uuid.UUID) (*dto.RosterResponse, *errors.AppError) {
	entries, err := s.repo.Roster(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list roster", err)
	}

	resp := &dto.RosterResponse{
		ClassGroupID: groupID.String(),
		Students:     make([]dto.RosterStudentDTO, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Students = append(resp.Students, dto.RosterStudentDTO{
			StudentID: e.StudentID.String(),
			FullName:  strings.TrimSpace(e.FirstName + " " + e.LastName),
		})
	}
	return resp, nil
}

// ===================== Helpers =====================

func (s *ClassGroupService) groupFromRequest(req *dto.ClassGroupRequest) (*entity.ClassGroup, *errors.AppError) {
	schoolID, err := uuid.Parse(req.SchoolID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid school_id", err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}

	day, ok := entity.ParseWeekday(req.DayOfWeek)
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid day_of_week", nil)
	}

	startMin, err := entity.ParseClock(req.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid start_time", err)
	}
	endMin, err := entity.ParseClock(req.EndTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid end_time", err)
	}
	if endMin <= startMin {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "end_time must be after start_time", nil)
	}

	group := &entity.ClassGroup{
		SchoolID:    schoolID,
		Name:        strings.TrimSpace(req.Name),
		Day:         day,
		StartMinute: startMin,
		EndMinute:   endMin,
	}

	if req.TruckID != "" {
		truckID, err := uuid.Parse(req.TruckID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid truck_id", err)
		}
		group.TruckID = &truckID
	}
	return group, nil
}

func (s *ClassGroupService) candidateFromCheck(req *dto.CheckConflictsRequest) (entity.ScheduleSlot, *errors.AppError) {
	day, ok := entity.ParseWeekday(req.DayOfWeek)
	if !ok {
		return entity.ScheduleSlot{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid day_of_week", nil)
	}

	startMin, err := entity.ParseClock(req.StartTime)
	if err != nil {
		return entity.ScheduleSlot{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid start_time", err)
	}
	endMin, err := entity.ParseClock(req.EndTime)
	if err != nil {
		return entity.ScheduleSlot{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid end_time", err)
	}
	if endMin <= startMin {
		return entity.ScheduleSlot{}, errors.NewAppError(errors.ErrInvalidInput, "end_time must be after start_time", nil)
	}

	candidate := entity.ScheduleSlot{
		Day:      day,
		Interval: entity.TimeInterval{StartMin: startMin, EndMin: endMin},
	}
	if req.TruckID != "" {
		truckID, err := uuid.Parse(req.TruckID)
		if err != nil {
			return entity.ScheduleSlot{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid truck_id", err)
		}
		candidate.TruckID = &truckID
	}
	return candidate, nil
}

// rejectConflictingSave is the authoritative save-time check: the
// advisory form check may be stale by the time the user hits save.
func (s *ClassGroupService) rejectConflictingSave(ctx context.Context, group *entity.ClassGroup, excludeID uuid.UUID, force bool) *errors.AppError {
	if force || group.TruckID == nil {
		return nil
	}

	existing, err := s.repo.SlotsForTruckAndDay(ctx, *group.TruckID, group.Day, excludeID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to verify schedule availability", err)
	}

	result := FindConflicts(group.Slot(""), existing)
	if result.HasConflicts {
		logger.Info("ClassGroupService:RejectConflictingSave",
			"truck_id", group.TruckID.String(),
			"day", string(group.Day),
			"conflicts", len(result.Conflicts),
		)
		return errors.NewAppError(errors.ErrScheduleConflict,
			"The truck is already booked in this time slot; save with force to override", nil)
	}
	return nil
}

func (s *ClassGroupService) afterScheduleWrite(ctx context.Context, group *entity.ClassGroup) {
	s.invalidateWeekGrid(ctx)
	if s.watcher != nil {
		schoolName, _ := s.repo.SchoolName(ctx, group.SchoolID)
		s.watcher.Submit(group.Slot(schoolName), group.ID)
	}
}

func (s *ClassGroupService) invalidateWeekGrid(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, constants.CacheKeyWeekGrid); err != nil {
		logger.Warn("ClassGroupService:InvalidateWeekGrid:Error", "error", err)
	}
}
