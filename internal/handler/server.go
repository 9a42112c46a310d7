// Package handler implements the HTTP handlers for the matching API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (match.go, onboarding.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vibentribe/backend/internal/domain"
)

// MatchServicer defines the matching operation the handler depends on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type MatchServicer interface {
	FindMatches(ctx context.Context, userID uuid.UUID) ([]domain.MatchCandidate, error)
}

// OnboardingServicer defines the onboarding operation the handler depends on.
type OnboardingServicer interface {
	Complete(ctx context.Context, userID uuid.UUID, dates []domain.TravelDate, prefs []domain.PreferenceType) ([]domain.MatchCandidate, error)
}

// TravelDateServicer exposes a user's stored travel windows.
type TravelDateServicer interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TravelDate, error)
}

// NotificationServicer exposes in-app notification operations.
type NotificationServicer interface {
	ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Notification, int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	matches       MatchServicer
	onboarding    OnboardingServicer
	travelDates   TravelDateServicer
	notifications NotificationServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(matches MatchServicer, onboarding OnboardingServicer, travelDates TravelDateServicer, notifications NotificationServicer) *Server {
	return &Server{
		matches:       matches,
		onboarding:    onboarding,
		travelDates:   travelDates,
		notifications: notifications,
	}
}

// Routes mounts every endpoint on a fresh chi router. The health check is
// public; everything else sits behind the provided auth middleware, which
// must place the caller's user ID in the request context.
func (s *Server) Routes(auth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/matches", s.ListMatches)
		r.Post("/onboarding", s.CompleteOnboarding)
		r.Get("/travel-dates", s.ListTravelDates)
		r.Get("/notifications", s.ListNotifications)
		r.Post("/notifications/{id}/read", s.MarkNotificationRead)
	})

	return r
}
