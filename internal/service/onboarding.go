package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vibentribe/backend/internal/daterange"
	"github.com/vibentribe/backend/internal/domain"
	"github.com/vibentribe/backend/internal/notify"
	"github.com/vibentribe/backend/internal/repo"
)

// MatchFinder is the matching operation onboarding triggers after storing
// the user's data. Defined here so tests can inject a stub instead of a
// fully wired MatchService.
type MatchFinder interface {
	FindMatches(ctx context.Context, userID uuid.UUID) ([]domain.MatchCandidate, error)
}

// OnboardingService validates and stores a user's travel windows and group
// preferences, then runs a matching pass and notifies the user of any matches.
type OnboardingService struct {
	users         repo.UserRepo
	store         repo.OnboardingRepo
	notifications repo.NotificationRepo
	matcher       MatchFinder
	sender        notify.Sender
	log           *slog.Logger

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewOnboardingService constructs an OnboardingService.
// Pass notify.NewNoopSender() when WhatsApp delivery is not configured.
func NewOnboardingService(users repo.UserRepo, store repo.OnboardingRepo, notifications repo.NotificationRepo, matcher MatchFinder, sender notify.Sender, log *slog.Logger) *OnboardingService {
	return &OnboardingService{
		users:         users,
		store:         store,
		notifications: notifications,
		matcher:       matcher,
		sender:        sender,
		log:           log,
		now:           time.Now,
	}
}

// SetNow overrides the service clock. Test hook only.
func (s *OnboardingService) SetNow(now func() time.Time) {
	s.now = now
}

// Complete stores the onboarding submission and returns the user's matches.
//
// Validation happens here, at the boundary: the matching engine assumes all
// stored ranges are pre-validated. Date and preference rows are replaced
// wholesale in one transaction and the user is marked onboarded before the
// matching pass runs. Notification delivery is best-effort — a failed send
// is logged, never surfaced to the caller.
func (s *OnboardingService) Complete(ctx context.Context, userID uuid.UUID, dates []domain.TravelDate, prefs []domain.PreferenceType) ([]domain.MatchCandidate, error) {
	if err := s.validate(dates, prefs); err != nil {
		return nil, err
	}

	if _, _, err := s.store.ReplaceOnboardingData(ctx, userID, dates, prefs); err != nil {
		return nil, fmt.Errorf("service.OnboardingService.Complete: %w", err)
	}

	matches, err := s.matcher.FindMatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.OnboardingService.Complete: %w", err)
	}

	if len(matches) > 0 {
		s.notifyMatches(ctx, userID, matches)
	}

	return matches, nil
}

// validate enforces the onboarding business rules:
//   - at least one date range and one preference (a user cannot match
//     without both dimensions);
//   - every range well-formed (start <= end) and within [today, today+365d];
//   - every preference drawn from the closed set, no duplicates.
func (s *OnboardingService) validate(dates []domain.TravelDate, prefs []domain.PreferenceType) error {
	if len(dates) == 0 {
		return fmt.Errorf("%w: at least one travel date range is required", domain.ErrValidation)
	}
	if len(prefs) == 0 {
		return fmt.Errorf("%w: at least one group preference is required", domain.ErrValidation)
	}

	now := s.now()
	for _, d := range dates {
		if !daterange.IsValid(d.Start, d.End) {
			return fmt.Errorf("%w: start date must not be after end date", domain.ErrValidation)
		}
		if !daterange.WithinBounds(d.DateRange, now) {
			return fmt.Errorf("%w: travel dates must fall between today and one year from now", domain.ErrValidation)
		}
	}

	seen := make(map[domain.PreferenceType]struct{}, len(prefs))
	for _, p := range prefs {
		if _, ok := domain.ParsePreferenceType(string(p)); !ok {
			return fmt.Errorf("%w: unknown preference type %q", domain.ErrValidation, p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: duplicate preference type %q", domain.ErrValidation, p)
		}
		seen[p] = struct{}{}
	}

	return nil
}

// notifyMatches persists a match_found notification row and delivers it over
// the configured sender. Both steps are best-effort.
func (s *OnboardingService) notifyMatches(ctx context.Context, userID uuid.UUID, matches []domain.MatchCandidate) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.Warn("skipping match notification: load user", "user_id", userID, "error", err)
		return
	}

	var dateStrings []string
	for _, m := range matches {
		for _, r := range m.CommonDates {
			dateStrings = append(dateStrings, daterange.Format(r.Start, r.End))
		}
	}

	message := notify.MatchMessage(user.FirstName, len(matches), dateStrings)

	if _, err := s.notifications.Create(ctx, domain.Notification{
		UserID:  userID,
		Type:    domain.NotificationMatchFound,
		Title:   "New travel matches",
		Message: message,
	}); err != nil {
		s.log.Warn("failed to persist match notification", "user_id", userID, "error", err)
	}

	if user.Phone == "" {
		return
	}
	if err := s.sender.Send(ctx, user.Phone, message); err != nil {
		s.log.Warn("failed to deliver match notification", "user_id", userID, "error", err)
	}
}
