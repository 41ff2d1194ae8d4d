package service

import (
	"context"
	"testing"

	coreerrors "roadwise/core/errors"
	"roadwise/core/params"
	"roadwise/modules/truck/dto"
	"roadwise/modules/truck/entity"

	"github.com/google/uuid"
)

type fakeTruckRepo struct {
	trucks map[uuid.UUID]*entity.Truck
}

func newFakeTruckRepo() *fakeTruckRepo {
	return &fakeTruckRepo{trucks: make(map[uuid.UUID]*entity.Truck)}
}

func (f *fakeTruckRepo) Create(ctx context.Context, truck *entity.Truck) (*entity.Truck, error) {
	truck.ID = uuid.New()
	f.trucks[truck.ID] = truck
	return truck, nil
}

func (f *fakeTruckRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Truck, error) {
	return f.trucks[id], nil
}

func (f *fakeTruckRepo) List(ctx context.Context, q params.QueryParams) (*entity.PaginatedTruckEntity, error) {
	items := make([]entity.Truck, 0, len(f.trucks))
	for _, t := range f.trucks {
		items = append(items, *t)
	}
	return &entity.PaginatedTruckEntity{Items: items, TotalItems: len(items)}, nil
}

func (f *fakeTruckRepo) Update(ctx context.Context, truck *entity.Truck) error {
	f.trucks[truck.ID] = truck
	return nil
}

func (f *fakeTruckRepo) Archive(ctx context.Context, id uuid.UUID) error {
	delete(f.trucks, id)
	return nil
}

func (f *fakeTruckRepo) PlateExists(ctx context.Context, plate string, excludeID uuid.UUID) (bool, error) {
	for id, t := range f.trucks {
		if id != excludeID && t.Plate == plate {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateTruck(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the plate", func(t *testing.T) {
		svc := NewTruckService(newFakeTruckRepo())

		resp, appErr := svc.CreateTruck(ctx, &dto.TruckRequest{Name: "Unit 7", Plate: " ab-123-cd "})
		if appErr != nil {
			t.Fatalf("CreateTruck: %v", appErr)
		}
		if resp.Plate != "AB-123-CD" {
			t.Errorf("plate = %q, want AB-123-CD", resp.Plate)
		}
	})

	t.Run("duplicate plate is rejected", func(t *testing.T) {
		svc := NewTruckService(newFakeTruckRepo())

		if _, appErr := svc.CreateTruck(ctx, &dto.TruckRequest{Name: "Unit 7", Plate: "AB-123-CD"}); appErr != nil {
			t.Fatal(appErr)
		}
		// Case variants collide after normalization.
		_, appErr := svc.CreateTruck(ctx, &dto.TruckRequest{Name: "Unit 8", Plate: "ab-123-cd"})
		if appErr == nil || appErr.Code != coreerrors.ErrAlreadyExists {
			t.Errorf("expected ALREADY_EXISTS, got %v", appErr)
		}
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		svc := NewTruckService(newFakeTruckRepo())

		if _, appErr := svc.CreateTruck(ctx, &dto.TruckRequest{Plate: "AB-123-CD"}); appErr == nil {
			t.Error("missing name should be rejected")
		}
		if _, appErr := svc.CreateTruck(ctx, &dto.TruckRequest{Name: "Unit 7"}); appErr == nil {
			t.Error("missing plate should be rejected")
		}
	})
}

func TestUpdateTruck(t *testing.T) {
	ctx := context.Background()
	svc := NewTruckService(newFakeTruckRepo())

	first, appErr := svc.CreateTruck(ctx, &dto.TruckRequest{Name: "Unit 7", Plate: "AB-123-CD"})
	if appErr != nil {
		t.Fatal(appErr)
	}
	second, appErr := svc.CreateTruck(ctx, &dto.TruckRequest{Name: "Unit 8", Plate: "EF-456-GH"})
	if appErr != nil {
		t.Fatal(appErr)
	}

	// Keeping your own plate on update is not a collision.
	updated, appErr := svc.UpdateTruck(ctx, uuid.MustParse(first.ID), &dto.TruckRequest{Name: "Unit 7 (refit)", Plate: "AB-123-CD"})
	if appErr != nil {
		t.Fatalf("self-plate update rejected: %v", appErr)
	}
	if updated.Name != "Unit 7 (refit)" {
		t.Errorf("name = %q", updated.Name)
	}

	// Taking another truck's plate is.
	_, appErr = svc.UpdateTruck(ctx, uuid.MustParse(second.ID), &dto.TruckRequest{Name: "Unit 8", Plate: "AB-123-CD"})
	if appErr == nil || appErr.Code != coreerrors.ErrAlreadyExists {
		t.Errorf("expected ALREADY_EXISTS, got %v", appErr)
	}

	if _, appErr := svc.UpdateTruck(ctx, uuid.New(), &dto.TruckRequest{Name: "X", Plate: "ZZ-999-ZZ"}); appErr == nil || appErr.Code != coreerrors.ErrNotFound {
		t.Errorf("expected NOT_FOUND, got %v", appErr)
	}
}
