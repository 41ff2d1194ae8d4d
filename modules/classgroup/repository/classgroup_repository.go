package repository

import (
	"context"
	"database/sql"

	"roadwise/core/database"
	"roadwise/core/logger"
	"roadwise/core/params"
	"roadwise/modules/classgroup/entity"

	"github.com/google/uuid"
)

// ClassGroupRepository handles class-group database operations.
type ClassGroupRepository struct {
	DB database.Database
}

func NewClassGroupRepository(db database.Database) *ClassGroupRepository {
	return &ClassGroupRepository{DB: db}
}

// ClassGroupRepositoryInterface defines the repository contract. The
// slot queries implement the schedule record-access contract: they come
// back pre-filtered, identity-excluded and in stable insertion order,
// so the conflict detector never has to re-filter.
type ClassGroupRepositoryInterface interface {
	Create(ctx context.Context, group *entity.ClassGroup) (*entity.ClassGroup, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ClassGroup, error)
	List(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*entity.PaginatedClassGroupEntity, error)
	Update(ctx context.Context, group *entity.ClassGroup) error
	Archive(ctx context.Context, id uuid.UUID) error

	SlotsForTruckAndDay(ctx context.Context, truckID uuid.UUID, day entity.Weekday, excludeID uuid.UUID) ([]entity.ScheduleSlot, error)
	SlotsForWeek(ctx context.Context) ([]entity.ScheduleSlot, error)
	SchoolName(ctx context.Context, schoolID uuid.UUID) (string, error)

	AddStudent(ctx context.Context, groupID, studentID uuid.UUID) error
	RemoveStudent(ctx context.Context, groupID, studentID uuid.UUID) error
	Roster(ctx context.Context, groupID uuid.UUID) ([]RosterEntry, error)
}

// RosterEntry is one student's membership row joined with display fields.
type RosterEntry struct {
	StudentID uuid.UUID `db:"student_id" json:"student_id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
}

// slotRow is the join used for schedule snapshots.
type slotRow struct {
	ID          uuid.UUID  `db:"id"`
	TruckID     *uuid.UUID `db:"truck_id"`
	Day         string     `db:"day_of_week"`
	StartMinute int        `db:"start_minute"`
	EndMinute   int        `db:"end_minute"`
	Name        string     `db:"name"`
	SchoolName  string     `db:"school_name"`
}

func (r slotRow) toSlot() entity.ScheduleSlot {
	return entity.ScheduleSlot{
		ID:                r.ID,
		TruckID:           r.TruckID,
		Day:               entity.Weekday(r.Day),
		Interval:          entity.TimeInterval{StartMin: r.StartMinute, EndMin: r.EndMinute},
		DisplayName:       r.Name,
		SchoolDisplayName: r.SchoolName,
	}
}

func (r *ClassGroupRepository) Create(ctx context.Context, group *entity.ClassGroup) (*entity.ClassGroup, error) {
	query := `
		INSERT INTO class_groups (school_id, truck_id, name, day_of_week, start_minute, end_minute)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, school_id, truck_id, name, day_of_week, start_minute, end_minute,
		          archived_at, created_at, updated_at
	`

	var created entity.ClassGroup
	err := r.DB.GetContext(ctx, &created, query,
		group.SchoolID, group.TruckID, group.Name, group.Day, group.StartMinute, group.EndMinute)
	if err != nil {
		logger.Error("ClassGroupRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *ClassGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ClassGroup, error) {
	query := `
		SELECT id, school_id, truck_id, name, day_of_week, start_minute, end_minute,
		       archived_at, created_at, updated_at
		FROM class_groups WHERE id = $1
	`

	var group entity.ClassGroup
	err := r.DB.GetContext(ctx, &group, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ClassGroupRepository:GetByID", err)
		return nil, err
	}
	return &group, nil
}

func (r *ClassGroupRepository) List(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*entity.PaginatedClassGroupEntity, error) {
	offset := (q.PageNumber - 1) * q.PageSize

	baseQuery := `FROM class_groups WHERE archived_at IS NULL`
	args := []any{}
	if schoolID != nil {
		baseQuery += ` AND school_id = $1`
		args = append(args, *schoolID)
	}

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, `SELECT COUNT(*) `+baseQuery, args...)
	if err != nil {
		logger.Error("ClassGroupRepository:List:Count:Error:", err)
		return nil, err
	}

	query := `
		SELECT id, school_id, truck_id, name, day_of_week, start_minute, end_minute,
		       archived_at, created_at, updated_at ` + baseQuery + `
		ORDER BY day_of_week, start_minute, created_at
	`
	if schoolID != nil {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, q.PageSize, offset)

	var groups []entity.ClassGroup
	err = r.DB.SelectContext(ctx, &groups, query, args...)
	if err != nil {
		logger.Error("ClassGroupRepository:List:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedClassGroupEntity{
		Items:      groups,
		TotalItems: totalItems,
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
	}, nil
}

func (r *ClassGroupRepository) Update(ctx context.Context, group *entity.ClassGroup) error {
	query := `
		UPDATE class_groups
		SET school_id = $2, truck_id = $3, name = $4, day_of_week = $5,
		    start_minute = $6, end_minute = $7, updated_at = NOW()
		WHERE id = $1
	`
	err := r.DB.ExecContext(ctx, query,
		group.ID, group.SchoolID, group.TruckID, group.Name, group.Day,
		group.StartMinute, group.EndMinute)
	if err != nil {
		logger.Error("ClassGroupRepository:Update", err)
		return err
	}
	return nil
}

func (r *ClassGroupRepository) Archive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE class_groups SET archived_at = NOW(), updated_at = NOW() WHERE id = $1 AND archived_at IS NULL`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("ClassGroupRepository:Archive", err)
		return err
	}
	return nil
}

// SlotsForTruckAndDay returns the active slots on one truck/day with
// the given identity excluded — the caller-side self-exclusion the
// conflict detector relies on. Pass uuid.Nil to exclude nothing.
func (r *ClassGroupRepository) SlotsForTruckAndDay(ctx context.Context, truckID uuid.UUID, day entity.Weekday, excludeID uuid.UUID) ([]entity.ScheduleSlot, error) {
	query := `
		SELECT cg.id, cg.truck_id, cg.day_of_week, cg.start_minute, cg.end_minute,
		       cg.name, s.name AS school_name
		FROM class_groups cg
		JOIN schools s ON s.id = cg.school_id
		WHERE cg.truck_id = $1 AND cg.day_of_week = $2 AND cg.id <> $3
		  AND cg.archived_at IS NULL
		ORDER BY cg.created_at
	`

	var rows []slotRow
	err := r.DB.SelectContext(ctx, &rows, query, truckID, day, excludeID)
	if err != nil {
		logger.Error("ClassGroupRepository:SlotsForTruckAndDay", err)
		return nil, err
	}

	slots := make([]entity.ScheduleSlot, 0, len(rows))
	for _, row := range rows {
		slots = append(slots, row.toSlot())
	}
	return slots, nil
}

// SlotsForWeek returns every active slot regardless of truck or day,
// for weekly grid layout.
func (r *ClassGroupRepository) SlotsForWeek(ctx context.Context) ([]entity.ScheduleSlot, error) {
	query := `
		SELECT cg.id, cg.truck_id, cg.day_of_week, cg.start_minute, cg.end_minute,
		       cg.name, s.name AS school_name
		FROM class_groups cg
		JOIN schools s ON s.id = cg.school_id
		WHERE cg.archived_at IS NULL
		ORDER BY cg.day_of_week, cg.start_minute, cg.created_at
	`

	var rows []slotRow
	err := r.DB.SelectContext(ctx, &rows, query)
	if err != nil {
		logger.Error("ClassGroupRepository:SlotsForWeek", err)
		return nil, err
	}

	slots := make([]entity.ScheduleSlot, 0, len(rows))
	for _, row := range rows {
		slots = append(slots, row.toSlot())
	}
	return slots, nil
}

func (r *ClassGroupRepository) SchoolName(ctx context.Context, schoolID uuid.UUID) (string, error) {
	var name string
	err := r.DB.GetContext(ctx, &name, `SELECT name FROM schools WHERE id = $1`, schoolID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		logger.Error("ClassGroupRepository:SchoolName", err)
		return "", err
	}
	return name, nil
}

func (r *ClassGroupRepository) AddStudent(ctx context.Context, groupID, studentID uuid.UUID) error {
	query := `
		INSERT INTO class_group_students (class_group_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (class_group_id, student_id) DO NOTHING
	`
	err := r.DB.ExecContext(ctx, query, groupID, studentID)
	if err != nil {
		logger.Error("ClassGroupRepository:AddStudent", err)
		return err
	}
	return nil
}

func (r *ClassGroupRepository) RemoveStudent(ctx context.Context, groupID, studentID uuid.UUID) error {
	query := `DELETE FROM class_group_students WHERE class_group_id = $1 AND student_id = $2`
	err := r.DB.ExecContext(ctx, query, groupID, studentID)
	if err != nil {
		logger.Error("ClassGroupRepository:RemoveStudent", err)
		return err
	}
	return nil
}

func (r *ClassGroupRepository) Roster(ctx context.Context, groupID uuid.UUID) ([]RosterEntry, error) {
	query := `
		SELECT cgs.student_id, st.first_name, st.last_name
		FROM class_group_students cgs
		JOIN students st ON st.id = cgs.student_id
		WHERE cgs.class_group_id = $1
		ORDER BY st.last_name, st.first_name
	`

	var entries []RosterEntry
	err := r.DB.SelectContext(ctx, &entries, query, groupID)
	if err != nil {
		logger.Error("ClassGroupRepository:Roster", err)
		return nil, err
	}
	return entries, nil
}
