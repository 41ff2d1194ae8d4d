package service

import (
	"context"
	"encoding/json"
	"strings"

	"roadwise/core/errors"
	"roadwise/core/params"
	"roadwise/modules/notification/dto"
	"roadwise/modules/notification/entity"
	"roadwise/modules/notification/repository"

	"github.com/google/uuid"
)

// NotificationService handles in-app notification logic.
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, *errors.AppError) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title and message are required", nil)
	}

	var data []byte
	if req.Data != nil {
		encoded, err := json.Marshal(req.Data)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid notification data", err)
		}
		data = encoded
	}

	created, err := s.repo.Create(ctx, &entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Data:    data,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create notification", err)
	}

	resp := dto.ToNotificationResponse(created)
	return &resp, nil
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, q params.QueryParams) (*dto.PaginatedNotificationResponse, *errors.AppError) {
	page, err := s.repo.ListForUser(ctx, userID, q)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list notifications", err)
	}

	items := make([]dto.NotificationResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, dto.ToNotificationResponse(&page.Items[i]))
	}

	return &dto.PaginatedNotificationResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) *errors.AppError {
	if len(ids) == 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "At least one id is required", nil)
	}
	if err := s.repo.MarkAsRead(ctx, userID, ids); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark as read", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark all as read", err)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrInternalServer, "Failed to count unread notifications", err)
	}
	return count, nil
}
