package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vibentribe/backend/internal/domain"
	"github.com/vibentribe/backend/internal/repo"
)

// NotificationService implements business logic for in-app notifications.
type NotificationService struct {
	notifications repo.NotificationRepo
}

// NewNotificationService constructs a NotificationService backed by the
// provided NotificationRepo.
func NewNotificationService(notifications repo.NotificationRepo) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// ListByUser returns a page of the user's notifications, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *NotificationService) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Notification, int64, error) {
	notifications, total, err := s.notifications.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.NotificationService.ListByUser: %w", err)
	}
	if notifications == nil {
		return []domain.Notification{}, total, nil
	}
	return notifications, total, nil
}

// MarkRead flags a notification as read, scoped to the owning user.
// Returns domain.ErrNotFound if the notification does not belong to the user.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notifications.MarkRead(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("service.NotificationService.MarkRead: %w", err)
	}
	return nil
}
