package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vibentribe/backend/internal/domain"
)

// NotificationRepo defines the persistence operations for in-app notifications.
type NotificationRepo interface {
	// Create inserts a notification row and returns the persisted record.
	Create(ctx context.Context, n domain.Notification) (domain.Notification, error)

	// ListByUser returns a page of a user's notifications, newest first,
	// together with the total row count for pagination.
	ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Notification, int64, error)

	// MarkRead flags a notification as read, scoped to the owning user.
	// Returns domain.ErrNotFound if the row does not exist under that user.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

// pgNotificationRepo is the Postgres implementation of NotificationRepo.
type pgNotificationRepo struct {
	db db
}

// NewNotificationRepo constructs a NotificationRepo backed by the provided
// db connection.
func NewNotificationRepo(db db) NotificationRepo {
	return &pgNotificationRepo{db: db}
}

func (r *pgNotificationRepo) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	const q = `
		INSERT INTO notifications (user_id, type, title, message)
		VALUES (@user_id, @type, @title, @message)
		RETURNING id, user_id, type, title, message, is_read, created_at`

	args := pgx.NamedArgs{
		"user_id": n.UserID,
		"type":    string(n.Type),
		"title":   n.Title,
		"message": n.Message,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanNotification(row)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("repo.NotificationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgNotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Notification, int64, error) {
	const countQ = `SELECT count(*) FROM notifications WHERE user_id = @user_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.NotificationRepo.ListByUser: count: %w", err)
	}

	const q = `
		SELECT id, user_id, type, title, message, is_read, created_at
		FROM notifications
		WHERE user_id = @user_id
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.NotificationRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.NotificationRepo.ListByUser: scan: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.NotificationRepo.ListByUser: rows: %w", err)
	}

	return notifications, total, nil
}

func (r *pgNotificationRepo) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	const q = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": notificationID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.NotificationRepo.MarkRead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.NotificationRepo.MarkRead: %w", domain.ErrNotFound)
	}
	return nil
}

// scanNotification maps a single notifications row into a domain.Notification.
func scanNotification(s scanner) (domain.Notification, error) {
	var (
		n       domain.Notification
		id      pgtype.UUID
		userID  pgtype.UUID
		rawType string
	)

	err := s.Scan(&id, &userID, &rawType, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Notification{}, domain.ErrNotFound
		}
		return domain.Notification{}, err
	}

	n.ID = uuid.UUID(id.Bytes)
	n.UserID = uuid.UUID(userID.Bytes)
	n.Type = domain.NotificationType(rawType)
	return n, nil
}
