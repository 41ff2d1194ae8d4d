package repository

import (
	"context"
	"database/sql"

	"roadwise/core/database"
	"roadwise/core/logger"
	"roadwise/core/params"
	"roadwise/modules/school/entity"

	"github.com/google/uuid"
)

// SchoolRepository handles school database operations.
type SchoolRepository struct {
	DB database.Database
}

func NewSchoolRepository(db database.Database) *SchoolRepository {
	return &SchoolRepository{DB: db}
}

type SchoolRepositoryInterface interface {
	Create(ctx context.Context, school *entity.School) (*entity.School, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.School, error)
	GetBySlug(ctx context.Context, slug string) (*entity.School, error)
	List(ctx context.Context, q params.QueryParams) (*entity.PaginatedSchoolEntity, error)
	Update(ctx context.Context, school *entity.School) error
	Archive(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

func (r *SchoolRepository) Create(ctx context.Context, school *entity.School) (*entity.School, error) {
	query := `
		INSERT INTO schools (name, slug, address, contact_name, contact_phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, slug, address, contact_name, contact_phone, archived_at, created_at, updated_at
	`

	var created entity.School
	err := r.DB.GetContext(ctx, &created, query,
		school.Name, school.Slug, school.Address, school.ContactName, school.ContactPhone)
	if err != nil {
		logger.Error("SchoolRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *SchoolRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.School, error) {
	query := `
		SELECT id, name, slug, address, contact_name, contact_phone, archived_at, created_at, updated_at
		FROM schools WHERE id = $1
	`

	var school entity.School
	err := r.DB.GetContext(ctx, &school, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SchoolRepository:GetByID", err)
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepository) GetBySlug(ctx context.Context, slug string) (*entity.School, error) {
	query := `
		SELECT id, name, slug, address, contact_name, contact_phone, archived_at, created_at, updated_at
		FROM schools WHERE slug = $1
	`

	var school entity.School
	err := r.DB.GetContext(ctx, &school, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SchoolRepository:GetBySlug", err)
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepository) List(ctx context.Context, q params.QueryParams) (*entity.PaginatedSchoolEntity, error) {
	offset := (q.PageNumber - 1) * q.PageSize

	baseQuery := `FROM schools WHERE archived_at IS NULL`
	args := []any{}
	if q.Search != "" {
		baseQuery += ` AND name ILIKE $1`
		args = append(args, "%"+q.Search+"%")
	}

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, `SELECT COUNT(*) `+baseQuery, args...)
	if err != nil {
		logger.Error("SchoolRepository:List:Count:Error:", err)
		return nil, err
	}

	query := `
		SELECT id, name, slug, address, contact_name, contact_phone, archived_at, created_at, updated_at ` +
		baseQuery + ` ORDER BY name`
	if q.Search != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, q.PageSize, offset)

	var schools []entity.School
	err = r.DB.SelectContext(ctx, &schools, query, args...)
	if err != nil {
		logger.Error("SchoolRepository:List:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedSchoolEntity{
		Items:      schools,
		TotalItems: totalItems,
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
	}, nil
}

func (r *SchoolRepository) Update(ctx context.Context, school *entity.School) error {
	query := `
		UPDATE schools
		SET name = $2, address = $3, contact_name = $4, contact_phone = $5, updated_at = NOW()
		WHERE id = $1
	`
	err := r.DB.ExecContext(ctx, query,
		school.ID, school.Name, school.Address, school.ContactName, school.ContactPhone)
	if err != nil {
		logger.Error("SchoolRepository:Update", err)
		return err
	}
	return nil
}

func (r *SchoolRepository) Archive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE schools SET archived_at = NOW(), updated_at = NOW() WHERE id = $1 AND archived_at IS NULL`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("SchoolRepository:Archive", err)
		return err
	}
	return nil
}

func (r *SchoolRepository) SlugExists(ctx context.Context, slugStr string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM schools WHERE slug = $1`, slugStr)
	if err != nil {
		logger.Error("SchoolRepository:SlugExists", err)
		return false, err
	}
	return count > 0, nil
}
