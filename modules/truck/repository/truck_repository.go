package repository

import (
	"context"
	"database/sql"

	"roadwise/core/database"
	"roadwise/core/logger"
	"roadwise/core/params"
	"roadwise/modules/truck/entity"

	"github.com/google/uuid"
)

// TruckRepository handles truck database operations.
type TruckRepository struct {
	DB database.Database
}

func NewTruckRepository(db database.Database) *TruckRepository {
	return &TruckRepository{DB: db}
}

type TruckRepositoryInterface interface {
	Create(ctx context.Context, truck *entity.Truck) (*entity.Truck, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Truck, error)
	List(ctx context.Context, q params.QueryParams) (*entity.PaginatedTruckEntity, error)
	Update(ctx context.Context, truck *entity.Truck) error
	Archive(ctx context.Context, id uuid.UUID) error
	PlateExists(ctx context.Context, plate string, excludeID uuid.UUID) (bool, error)
}

func (r *TruckRepository) Create(ctx context.Context, truck *entity.Truck) (*entity.Truck, error) {
	query := `
		INSERT INTO trucks (name, plate, notes)
		VALUES ($1, $2, $3)
		RETURNING id, name, plate, notes, archived_at, created_at, updated_at
	`

	var created entity.Truck
	err := r.DB.GetContext(ctx, &created, query, truck.Name, truck.Plate, truck.Notes)
	if err != nil {
		logger.Error("TruckRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *TruckRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Truck, error) {
	query := `SELECT id, name, plate, notes, archived_at, created_at, updated_at FROM trucks WHERE id = $1`

	var truck entity.Truck
	err := r.DB.GetContext(ctx, &truck, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TruckRepository:GetByID", err)
		return nil, err
	}
	return &truck, nil
}

func (r *TruckRepository) List(ctx context.Context, q params.QueryParams) (*entity.PaginatedTruckEntity, error) {
	offset := (q.PageNumber - 1) * q.PageSize

	baseQuery := `FROM trucks WHERE archived_at IS NULL`
	args := []any{}
	if q.Search != "" {
		baseQuery += ` AND (name ILIKE $1 OR plate ILIKE $1)`
		args = append(args, "%"+q.Search+"%")
	}

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, `SELECT COUNT(*) `+baseQuery, args...)
	if err != nil {
		logger.Error("TruckRepository:List:Count:Error:", err)
		return nil, err
	}

	query := `SELECT id, name, plate, notes, archived_at, created_at, updated_at ` + baseQuery + ` ORDER BY name`
	if q.Search != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, q.PageSize, offset)

	var trucks []entity.Truck
	err = r.DB.SelectContext(ctx, &trucks, query, args...)
	if err != nil {
		logger.Error("TruckRepository:List:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedTruckEntity{
		Items:      trucks,
		TotalItems: totalItems,
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
	}, nil
}

func (r *TruckRepository) Update(ctx context.Context, truck *entity.Truck) error {
	query := `
		UPDATE trucks SET name = $2, plate = $3, notes = $4, updated_at = NOW()
		WHERE id = $1
	`
	err := r.DB.ExecContext(ctx, query, truck.ID, truck.Name, truck.Plate, truck.Notes)
	if err != nil {
		logger.Error("TruckRepository:Update", err)
		return err
	}
	return nil
}

func (r *TruckRepository) Archive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE trucks SET archived_at = NOW(), updated_at = NOW() WHERE id = $1 AND archived_at IS NULL`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("TruckRepository:Archive", err)
		return err
	}
	return nil
}

func (r *TruckRepository) PlateExists(ctx context.Context, plate string, excludeID uuid.UUID) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM trucks WHERE plate = $1 AND id <> $2`, plate, excludeID)
	if err != nil {
		logger.Error("TruckRepository:PlateExists", err)
		return false, err
	}
	return count > 0, nil
}
