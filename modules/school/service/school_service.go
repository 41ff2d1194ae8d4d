package service

import (
	"context"
	"strings"

	"roadwise/core/errors"
	"roadwise/core/logger"
	"roadwise/core/params"
	"roadwise/core/utils"
	"roadwise/modules/school/dto"
	"roadwise/modules/school/entity"
	"roadwise/modules/school/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// SchoolService handles school business logic.
type SchoolService struct {
	repo repository.SchoolRepositoryInterface
}

type SchoolServiceInterface interface {
	CreateSchool(ctx context.Context, req *dto.SchoolRequest) (*dto.SchoolResponse, *errors.AppError)
	GetSchoolByID(ctx context.Context, id uuid.UUID) (*dto.SchoolResponse, *errors.AppError)
	GetSchoolBySlug(ctx context.Context, slug string) (*dto.SchoolResponse, *errors.AppError)
	ListSchools(ctx context.Context, q params.QueryParams) (*dto.PaginatedSchoolResponse, *errors.AppError)
	UpdateSchool(ctx context.Context, id uuid.UUID, req *dto.SchoolRequest) (*dto.SchoolResponse, *errors.AppError)
	ArchiveSchool(ctx context.Context, id uuid.UUID) *errors.AppError
}

func NewSchoolService(repo repository.SchoolRepositoryInterface) SchoolServiceInterface {
	return &SchoolService{repo: repo}
}

func (s *SchoolService) CreateSchool(ctx context.Context, req *dto.SchoolRequest) (*dto.SchoolResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}

	schoolSlug, err := s.uniqueSlug(ctx, name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate school slug", err)
	}

	created, err := s.repo.Create(ctx, &entity.School{
		Name:         name,
		Slug:         schoolSlug,
		Address:      strings.TrimSpace(req.Address),
		ContactName:  strings.TrimSpace(req.ContactName),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create school", err)
	}

	logger.Info("SchoolService:CreateSchool:Success", "school_id", created.ID.String(), "slug", created.Slug)
	return dto.ToSchoolResponse(created), nil
}

func (s *SchoolService) GetSchoolByID(ctx context.Context, id uuid.UUID) (*dto.SchoolResponse, *errors.AppError) {
	school, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get school", err)
	}
	if school == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "School not found", nil)
	}
	return dto.ToSchoolResponse(school), nil
}

func (s *SchoolService) GetSchoolBySlug(ctx context.Context, slugStr string) (*dto.SchoolResponse, *errors.AppError) {
	school, err := s.repo.GetBySlug(ctx, slugStr)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get school", err)
	}
	if school == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "School not found", nil)
	}
	return dto.ToSchoolResponse(school), nil
}

func (s *SchoolService) ListSchools(ctx context.Context, q params.QueryParams) (*dto.PaginatedSchoolResponse, *errors.AppError) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list schools", err)
	}

	items := make([]dto.SchoolResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *dto.ToSchoolResponse(&page.Items[i]))
	}

	return &dto.PaginatedSchoolResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *SchoolService) UpdateSchool(ctx context.Context, id uuid.UUID, req *dto.SchoolRequest) (*dto.SchoolResponse, *errors.AppError) {
	school, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get school", err)
	}
	if school == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "School not found", nil)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}

	school.Name = name
	school.Address = strings.TrimSpace(req.Address)
	school.ContactName = strings.TrimSpace(req.ContactName)
	school.ContactPhone = strings.TrimSpace(req.ContactPhone)

	if err := s.repo.Update(ctx, school); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update school", err)
	}
	return dto.ToSchoolResponse(school), nil
}

func (s *SchoolService) ArchiveSchool(ctx context.Context, id uuid.UUID) *errors.AppError {
	school, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get school", err)
	}
	if school == nil {
		return errors.NewAppError(errors.ErrNotFound, "School not found", nil)
	}

	if err := s.repo.Archive(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to archive school", err)
	}
	return nil
}

// uniqueSlug derives a URL slug from the name and appends a short
// random suffix when the plain slug is taken.
func (s *SchoolService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)

	exists, err := s.repo.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}
	return base + "-" + strings.ToLower(utils.GenerateID()), nil
}
