package repository

import (
	"context"

	"roadwise/core/database"
	"roadwise/core/logger"
	"roadwise/core/params"
	"roadwise/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// NotificationRepository handles notification database operations.
type NotificationRepository struct {
	DB database.Database
}

func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error)
	ListForUser(ctx context.Context, userID uuid.UUID, q params.QueryParams) (*entity.PaginatedNotificationEntity, error)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, title, message, type, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, message, type, data, is_read, created_at, updated_at
	`

	var created entity.Notification
	err := r.DB.GetContext(ctx, &created, query, n.UserID, n.Title, n.Message, n.Type, n.Data)
	if err != nil {
		logger.Error("NotificationRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

// ListForUser returns the user's own notifications plus broadcasts.
func (r *NotificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, q params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	offset := (q.PageNumber - 1) * q.PageSize

	baseQuery := `FROM notifications WHERE (user_id = $1 OR user_id IS NULL)`

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, `SELECT COUNT(*) `+baseQuery, userID)
	if err != nil {
		logger.Error("NotificationRepository:ListForUser:Count:Error:", err)
		return nil, err
	}

	query := `
		SELECT id, user_id, title, message, type, data, is_read, created_at, updated_at ` +
		baseQuery + ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	var items []entity.Notification
	err = r.DB.SelectContext(ctx, &items, query, userID, q.PageSize, offset)
	if err != nil {
		logger.Error("NotificationRepository:ListForUser:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedNotificationEntity{
		Items:      items,
		TotalItems: totalItems,
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
	}, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	query := `
		UPDATE notifications SET is_read = true, updated_at = NOW()
		WHERE id = ANY($1) AND (user_id = $2 OR user_id IS NULL)
	`
	err := r.DB.ExecContext(ctx, query, pq.Array(ids), userID)
	if err != nil {
		logger.Error("NotificationRepository:MarkAsRead", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE notifications SET is_read = true, updated_at = NOW()
		WHERE is_read = false AND (user_id = $1 OR user_id IS NULL)
	`
	err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		logger.Error("NotificationRepository:MarkAllAsRead", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE is_read = false AND (user_id = $1 OR user_id IS NULL)`
	err := r.DB.GetContext(ctx, &count, query, userID)
	if err != nil {
		logger.Error("NotificationRepository:CountUnread", err)
		return 0, err
	}
	return count, nil
}
