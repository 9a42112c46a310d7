package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vibentribe/backend/internal/domain"
	"github.com/vibentribe/backend/internal/handler"
	"github.com/vibentribe/backend/internal/middleware"
)

// ---- mock servicers ---------------------------------------------------------

type mockMatchServicer struct {
	findMatches func(ctx context.Context, userID uuid.UUID) ([]domain.MatchCandidate, error)
}

func (m *mockMatchServicer) FindMatches(ctx context.Context, userID uuid.UUID) ([]domain.MatchCandidate, error) {
	return m.findMatches(ctx, userID)
}

var _ handler.MatchServicer = (*mockMatchServicer)(nil)

type mockOnboardingServicer struct {
	complete func(ctx context.Context, userID uuid.UUID, dates []domain.TravelDate, prefs []domain.PreferenceType) ([]domain.MatchCandidate, error)
}

func (m *mockOnboardingServicer) Complete(ctx context.Context, userID uuid.UUID, dates []domain.TravelDate, prefs []domain.PreferenceType) ([]domain.MatchCandidate, error) {
	return m.complete(ctx, userID, dates, prefs)
}

var _ handler.OnboardingServicer = (*mockOnboardingServicer)(nil)

type mockTravelDateServicer struct {
	listByUser func(ctx context.Context, userID uuid.UUID) ([]domain.TravelDate, error)
}

func (m *mockTravelDateServicer) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TravelDate, error) {
	return m.listByUser(ctx, userID)
}

var _ handler.TravelDateServicer = (*mockTravelDateServicer)(nil)

type mockNotificationServicer struct {
	listByUser func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Notification, int64, error)
	markRead   func(ctx context.Context, userID, notificationID uuid.UUID) error
}

func (m *mockNotificationServicer) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Notification, int64, error) {
	return m.listByUser(ctx, userID, p)
}

func (m *mockNotificationServicer) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return m.markRead(ctx, userID, notificationID)
}

var _ handler.NotificationServicer = (*mockNotificationServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// testUserID is the identity every test request runs as.
var testUserID = uuid.MustParse("8a9a31f3-8edb-4a19-8e5c-6f2d94f2a001")

// authAs stands in for the JWT middleware and injects a fixed user ID.
func authAs(id uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.ContextWithUserID(r.Context(), id)))
		})
	}
}

// newAPI wires a Server with the given mocks (nil for unused services) and
// returns it as an http.Handler with every request authenticated as testUserID.
func newAPI(matches handler.MatchServicer, onboarding handler.OnboardingServicer, travelDates handler.TravelDateServicer, notifications handler.NotificationServicer) http.Handler {
	return handler.NewServer(matches, onboarding, travelDates, notifications).Routes(authAs(testUserID))
}

// newDeniedAPI wires a Server with no services behind the given auth
// middleware. Used to verify which routes the middleware guards.
func newDeniedAPI(auth func(http.Handler) http.Handler) http.Handler {
	return handler.NewServer(nil, nil, nil, nil).Routes(auth)
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
