package service

import (
	"context"
	"strings"

	"roadwise/core/errors"
	"roadwise/core/params"
	"roadwise/modules/truck/dto"
	"roadwise/modules/truck/entity"
	"roadwise/modules/truck/repository"

	"github.com/google/uuid"
)

// TruckService handles truck business logic.
type TruckService struct {
	repo repository.TruckRepositoryInterface
}

type TruckServiceInterface interface {
	CreateTruck(ctx context.Context, req *dto.TruckRequest) (*dto.TruckResponse, *errors.AppError)
	GetTruckByID(ctx context.Context, id uuid.UUID) (*dto.TruckResponse, *errors.AppError)
	ListTrucks(ctx context.Context, q params.QueryParams) (*dto.PaginatedTruckResponse, *errors.AppError)
	UpdateTruck(ctx context.Context, id uuid.UUID, req *dto.TruckRequest) (*dto.TruckResponse, *errors.AppError)
	ArchiveTruck(ctx context.Context, id uuid.UUID) *errors.AppError
}

func NewTruckService(repo repository.TruckRepositoryInterface) TruckServiceInterface {
	return &TruckService{repo: repo}
}

func (s *TruckService) CreateTruck(ctx context.Context, req *dto.TruckRequest) (*dto.TruckResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	if name == "" || plate == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name and plate are required", nil)
	}

	taken, err := s.repo.PlateExists(ctx, plate, uuid.Nil)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to verify plate", err)
	}
	if taken {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A truck with this plate already exists", nil)
	}

	created, err := s.repo.Create(ctx, &entity.Truck{
		Name:  name,
		Plate: plate,
		Notes: strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create truck", err)
	}
	return dto.ToTruckResponse(created), nil
}

func (s *TruckService) GetTruckByID(ctx context.Context, id uuid.UUID) (*dto.TruckResponse, *errors.AppError) {
	truck, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get truck", err)
	}
	if truck == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Truck not found", nil)
	}
	return dto.ToTruckResponse(truck), nil
}

func (s *TruckService) ListTrucks(ctx context.Context, q params.QueryParams) (*dto.PaginatedTruckResponse, *errors.AppError) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list trucks", err)
	}

	items := make([]dto.TruckResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *dto.ToTruckResponse(&page.Items[i]))
	}

	return &dto.PaginatedTruckResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *TruckService) UpdateTruck(ctx context.Context, id uuid.UUID, req *dto.TruckRequest) (*dto.TruckResponse, *errors.AppError) {
	truck, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get truck", err)
	}
	if truck == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Truck not found", nil)
	}

	name := strings.TrimSpace(req.Name)
	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	if name == "" || plate == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name and plate are required", nil)
	}

	taken, err := s.repo.PlateExists(ctx, plate, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to verify plate", err)
	}
	if taken {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A truck with this plate already exists", nil)
	}

	truck.Name = name
	truck.Plate = plate
	truck.Notes = strings.TrimSpace(req.Notes)

	if err := s.repo.Update(ctx, truck); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update truck", err)
	}
	return dto.ToTruckResponse(truck), nil
}

func (s *TruckService) ArchiveTruck(ctx context.Context, id uuid.UUID) *errors.AppError {
	truck, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get truck", err)
	}
	if truck == nil {
		return errors.NewAppError(errors.ErrNotFound, "Truck not found", nil)
	}

	if err := s.repo.Archive(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to archive truck", err)
	}
	return nil
}
