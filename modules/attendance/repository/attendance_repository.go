package repository

import (
	"context"
	"database/sql"
	"time"

	"roadwise/core/database"
	"roadwise/core/logger"
	"roadwise/modules/attendance/entity"

	"github.com/google/uuid"
)

// AttendanceRepository handles attendance database operations.
type AttendanceRepository struct {
	DB database.Database
}

func NewAttendanceRepository(db database.Database) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

type AttendanceRepositoryInterface interface {
	Upsert(ctx context.Context, record *entity.AttendanceRecord) (*entity.AttendanceRecord, error)
	ListForSession(ctx context.Context, classGroupID uuid.UUID, sessionDate time.Time) ([]entity.AttendanceRecord, error)
	StudentSummary(ctx context.Context, studentID uuid.UUID) (*entity.StudentSummary, error)
	GroupExists(ctx context.Context, classGroupID uuid.UUID) (bool, error)
}

// Upsert writes one outcome; re-recording the same (group, student,
// date) replaces the earlier row.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *entity.AttendanceRecord) (*entity.AttendanceRecord, error) {
	query := `
		INSERT INTO attendance_records (class_group_id, student_id, session_date, status, score, remark)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (class_group_id, student_id, session_date)
		DO UPDATE SET status = EXCLUDED.status, score = EXCLUDED.score,
		              remark = EXCLUDED.remark, updated_at = NOW()
		RETURNING id, class_group_id, student_id, session_date, status, score, remark, created_at, updated_at
	`

	var saved entity.AttendanceRecord
	err := r.DB.GetContext(ctx, &saved, query,
		record.ClassGroupID, record.StudentID, record.SessionDate,
		record.Status, record.Score, record.Remark)
	if err != nil {
		logger.Error("AttendanceRepository:Upsert", err)
		return nil, err
	}
	return &saved, nil
}

func (r *AttendanceRepository) ListForSession(ctx context.Context, classGroupID uuid.UUID, sessionDate time.Time) ([]entity.AttendanceRecord, error) {
	query := `
		SELECT id, class_group_id, student_id, session_date, status, score, remark, created_at, updated_at
		FROM attendance_records
		WHERE class_group_id = $1 AND session_date = $2
		ORDER BY created_at
	`

	var records []entity.AttendanceRecord
	err := r.DB.SelectContext(ctx, &records, query, classGroupID, sessionDate)
	if err != nil {
		logger.Error("AttendanceRepository:ListForSession", err)
		return nil, err
	}
	return records, nil
}

func (r *AttendanceRepository) StudentSummary(ctx context.Context, studentID uuid.UUID) (*entity.StudentSummary, error) {
	query := `
		SELECT student_id,
		       COUNT(*) AS total_records,
		       COUNT(*) FILTER (WHERE status = 'present') AS present,
		       COUNT(*) FILTER (WHERE status = 'absent')  AS absent,
		       COUNT(*) FILTER (WHERE status = 'late')    AS late,
		       COUNT(*) FILTER (WHERE status = 'excused') AS excused,
		       AVG(score) AS average_score
		FROM attendance_records
		WHERE student_id = $1
		GROUP BY student_id
	`

	var summary entity.StudentSummary
	err := r.DB.GetContext(ctx, &summary, query, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return &entity.StudentSummary{StudentID: studentID}, nil
		}
		logger.Error("AttendanceRepository:StudentSummary", err)
		return nil, err
	}
	return &summary, nil
}

func (r *AttendanceRepository) GroupExists(ctx context.Context, classGroupID uuid.UUID) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM class_groups WHERE id = $1`, classGroupID)
	if err != nil {
		logger.Error("AttendanceRepository:GroupExists", err)
		return false, err
	}
	return count > 0, nil
}
