package service

import (
	"context"
	"strings"

	"roadwise/core/errors"
	"roadwise/core/params"
	"roadwise/modules/student/dto"
	"roadwise/modules/student/entity"
	"roadwise/modules/student/repository"

	"github.com/google/uuid"
)

// StudentService handles student business logic.
type StudentService struct {
	repo repository.StudentRepositoryInterface
}

type StudentServiceInterface interface {
	CreateStudent(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, *errors.AppError)
	GetStudentByID(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, *errors.AppError)
	ListStudents(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*dto.PaginatedStudentResponse, *errors.AppError)
	UpdateStudent(ctx context.Context, id uuid.UUID, req *dto.StudentRequest) (*dto.StudentResponse, *errors.AppError)
	ArchiveStudent(ctx context.Context, id uuid.UUID) *errors.AppError
}

func NewStudentService(repo repository.StudentRepositoryInterface) StudentServiceInterface {
	return &StudentService{repo: repo}
}

func (s *StudentService) CreateStudent(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, *errors.AppError) {
	student, appErr := studentFromRequest(req)
	if appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.Create(ctx, student)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create student", err)
	}
	return dto.ToStudentResponse(created), nil
}

func (s *StudentService) GetStudentByID(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, *errors.AppError) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get student", err)
	}
	if student == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Student not found", nil)
	}
	return dto.ToStudentResponse(student), nil
}

func (s *StudentService) ListStudents(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*dto.PaginatedStudentResponse, *errors.AppError) {
	page, err := s.repo.List(ctx, q, schoolID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list students", err)
	}

	items := make([]dto.StudentResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *dto.ToStudentResponse(&page.Items[i]))
	}

	return &dto.PaginatedStudentResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, id uuid.UUID, req *dto.StudentRequest) (*dto.StudentResponse, *errors.AppError) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get student", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Student not found", nil)
	}

	student, appErr := studentFromRequest(req)
	if appErr != nil {
		return nil, appErr
	}
	student.ID = id
	student.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update student", err)
	}
	return dto.ToStudentResponse(student), nil
}

func (s *StudentService) ArchiveStudent(ctx context.Context, id uuid.UUID) *errors.AppError {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get student", err)
	}
	if student == nil {
		return errors.NewAppError(errors.ErrNotFound, "Student not found", nil)
	}

	if err := s.repo.Archive(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to archive student", err)
	}
	return nil
}

func studentFromRequest(req *dto.StudentRequest) (*entity.Student, *errors.AppError) {
	schoolID, err := uuid.Parse(req.SchoolID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid school_id", err)
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "First and last name are required", nil)
	}

	return &entity.Student{
		SchoolID:      schoolID,
		FirstName:     firstName,
		LastName:      lastName,
		GuardianName:  strings.TrimSpace(req.GuardianName),
		GuardianPhone: strings.TrimSpace(req.GuardianPhone),
	}, nil
}
