package repository

import (
	"context"
	"database/sql"
	"strconv"

	"roadwise/core/database"
	"roadwise/core/logger"
	"roadwise/core/params"
	"roadwise/modules/student/entity"

	"github.com/google/uuid"
)

// StudentRepository handles student database operations.
type StudentRepository struct {
	DB database.Database
}

func NewStudentRepository(db database.Database) *StudentRepository {
	return &StudentRepository{DB: db}
}

type StudentRepositoryInterface interface {
	Create(ctx context.Context, student *entity.Student) (*entity.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	List(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*entity.PaginatedStudentEntity, error)
	Update(ctx context.Context, student *entity.Student) error
	Archive(ctx context.Context, id uuid.UUID) error
}

func (r *StudentRepository) Create(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	query := `
		INSERT INTO students (school_id, first_name, last_name, guardian_name, guardian_phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, school_id, first_name, last_name, guardian_name, guardian_phone,
		          archived_at, created_at, updated_at
	`

	var created entity.Student
	err := r.DB.GetContext(ctx, &created, query,
		student.SchoolID, student.FirstName, student.LastName, student.GuardianName, student.GuardianPhone)
	if err != nil {
		logger.Error("StudentRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	query := `
		SELECT id, school_id, first_name, last_name, guardian_name, guardian_phone,
		       archived_at, created_at, updated_at
		FROM students WHERE id = $1
	`

	var student entity.Student
	err := r.DB.GetContext(ctx, &student, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("StudentRepository:GetByID", err)
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) List(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*entity.PaginatedStudentEntity, error) {
	offset := (q.PageNumber - 1) * q.PageSize

	baseQuery := `FROM students WHERE archived_at IS NULL`
	args := []any{}
	argn := 0
	if schoolID != nil {
		argn++
		baseQuery += ` AND school_id = $1`
		args = append(args, *schoolID)
	}
	if q.Search != "" {
		argn++
		if argn == 1 {
			baseQuery += ` AND (first_name ILIKE $1 OR last_name ILIKE $1)`
		} else {
			baseQuery += ` AND (first_name ILIKE $2 OR last_name ILIKE $2)`
		}
		args = append(args, "%"+q.Search+"%")
	}

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, `SELECT COUNT(*) `+baseQuery, args...)
	if err != nil {
		logger.Error("StudentRepository:List:Count:Error:", err)
		return nil, err
	}

	limitPos := len(args) + 1
	query := `
		SELECT id, school_id, first_name, last_name, guardian_name, guardian_phone,
		       archived_at, created_at, updated_at ` + baseQuery + `
		ORDER BY last_name, first_name` +
		` LIMIT $` + strconv.Itoa(limitPos) + ` OFFSET $` + strconv.Itoa(limitPos+1)
	args = append(args, q.PageSize, offset)

	var students []entity.Student
	err = r.DB.SelectContext(ctx, &students, query, args...)
	if err != nil {
		logger.Error("StudentRepository:List:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedStudentEntity{
		Items:      students,
		TotalItems: totalItems,
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
	}, nil
}

func (r *StudentRepository) Update(ctx context.Context, student *entity.Student) error {
	query := `
		UPDATE students
		SET school_id = $2, first_name = $3, last_name = $4,
		    guardian_name = $5, guardian_phone = $6, updated_at = NOW()
		WHERE id = $1
	`
	err := r.DB.ExecContext(ctx, query,
		student.ID, student.SchoolID, student.FirstName, student.LastName,
		student.GuardianName, student.GuardianPhone)
	if err != nil {
		logger.Error("StudentRepository:Update", err)
		return err
	}
	return nil
}

func (r *StudentRepository) Archive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE students SET archived_at = NOW(), updated_at = NOW() WHERE id = $1 AND archived_at IS NULL`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("StudentRepository:Archive", err)
		return err
	}
	return nil
}
