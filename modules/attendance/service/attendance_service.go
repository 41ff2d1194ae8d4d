package service

import (
	"context"
	"time"

	"roadwise/core/errors"
	"roadwise/core/logger"
	"roadwise/modules/attendance/dto"
	"roadwise/modules/attendance/entity"
	"roadwise/modules/attendance/repository"

	"github.com/google/uuid"
)

const sessionDateLayout = "2006-01-02"

// AttendanceService handles session attendance and evaluation logic.
type AttendanceService struct {
	repo repository.AttendanceRepositoryInterface
}

type AttendanceServiceInterface interface {
	RecordSession(ctx context.Context, req *dto.RecordSessionRequest) (*dto.SessionResponse, *errors.AppError)
	GetSession(ctx context.Context, classGroupID uuid.UUID, sessionDate string) (*dto.SessionResponse, *errors.AppError)
	StudentSummary(ctx context.Context, studentID uuid.UUID) (*dto.StudentSummaryResponse, *errors.AppError)
}

func NewAttendanceService(repo repository.AttendanceRepositoryInterface) AttendanceServiceInterface {
	return &AttendanceService{repo: repo}
}

// RecordSession upserts the whole session sheet. Entries are validated
// up front so a bad row rejects the request before anything is written.
func (s *AttendanceService) RecordSession(ctx context.Context, req *dto.RecordSessionRequest) (*dto.SessionResponse, *errors.AppError) {
	classGroupID, err := uuid.Parse(req.ClassGroupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid class_group_id", err)
	}
	sessionDate, err := time.Parse(sessionDateLayout, req.SessionDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid session_date, expected YYYY-MM-DD", err)
	}
	if len(req.Entries) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "At least one entry is required", nil)
	}

	exists, err := s.repo.GroupExists(ctx, classGroupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to verify class group", err)
	}
	if !exists {
		return nil, errors.NewAppError(errors.ErrNotFound, "Class group not found", nil)
	}

	records := make([]entity.AttendanceRecord, 0, len(req.Entries))
	for _, e := range req.Entries {
		studentID, err := uuid.Parse(e.StudentID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid student_id", err)
		}
		status := entity.AttendanceStatus(e.Status)
		if !status.IsValid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid status: "+e.Status, nil)
		}
		if e.Score != nil && (*e.Score < 0 || *e.Score > 10) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Score must be between 0 and 10", nil)
		}

		records = append(records, entity.AttendanceRecord{
			ClassGroupID: classGroupID,
			StudentID:    studentID,
			SessionDate:  sessionDate,
			Status:       status,
			Score:        e.Score,
			Remark:       e.Remark,
		})
	}

	resp := &dto.SessionResponse{
		ClassGroupID: classGroupID.String(),
		SessionDate:  req.SessionDate,
		Records:      make([]dto.AttendanceRecordResponse, 0, len(records)),
	}
	for i := range records {
		saved, err := s.repo.Upsert(ctx, &records[i])
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to record attendance", err)
		}
		resp.Records = append(resp.Records, dto.ToAttendanceRecordResponse(saved))
	}

	logger.Info("AttendanceService:RecordSession:Success",
		"class_group_id", classGroupID.String(),
		"session_date", req.SessionDate,
		"entries", len(resp.Records),
	)
	return resp, nil
}

func (s *AttendanceService) GetSession(ctx context.Context, classGroupID uuid.UUID, sessionDate string) (*dto.SessionResponse, *errors.AppError) {
	parsed, err := time.Parse(sessionDateLayout, sessionDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid session_date, expected YYYY-MM-DD", err)
	}

	records, err := s.repo.ListForSession(ctx, classGroupID, parsed)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list attendance", err)
	}

	resp := &dto.SessionResponse{
		ClassGroupID: classGroupID.String(),
		SessionDate:  sessionDate,
		Records:      make([]dto.AttendanceRecordResponse, 0, len(records)),
	}
	for i := range records {
		resp.Records = append(resp.Records, dto.ToAttendanceRecordResponse(&records[i]))
	}
	return resp, nil
}

func (s *AttendanceService) StudentSummary(ctx context.Context, studentID uuid.UUID) (*dto.StudentSummaryResponse, *errors.AppError) {
	summary, err := s.repo.StudentSummary(ctx, studentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compute student summary", err)
	}
	return dto.ToStudentSummaryResponse(summary), nil
}
