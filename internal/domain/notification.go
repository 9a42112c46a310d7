package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a stored notification row.
type NotificationType string

const (
	NotificationMatchFound    NotificationType = "match_found"
	NotificationMatchAccepted NotificationType = "match_accepted"
	NotificationNewMessage    NotificationType = "new_message"
)

// Notification is an in-app record of an event delivered to a user.
// Delivery over an external channel (WhatsApp) is separate and best-effort;
// the row is the durable part.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
