// Package service contains the business logic for the matching backend.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vibentribe/backend/internal/daterange"
	"github.com/vibentribe/backend/internal/domain"
	"github.com/vibentribe/backend/internal/repo"
)

// MatchService implements the core date-overlap matching algorithm.
type MatchService struct {
	travelDates repo.TravelDateRepo
	preferences repo.PreferenceRepo
}

// NewMatchService constructs a MatchService backed by the provided repos.
func NewMatchService(travelDates repo.TravelDateRepo, preferences repo.PreferenceRepo) *MatchService {
	return &MatchService{travelDates: travelDates, preferences: preferences}
}

// FindMatches returns the deduplicated list of other onboarded users who
// share at least one overlapping travel window AND at least one group
// preference with the requesting user.
//
// A user with no travel dates or no preferences gets an empty list, not an
// error — matching needs both dimensions. Any repo failure aborts the whole
// run and surfaces as domain.ErrMatching; there are no partial results.
//
// One candidate query runs per (own date range, own preference) pair. A
// candidate might share a preference for one of the requester's trips but
// not overlap dates on another, so results are accumulated per candidate
// user across the full cross-product: commonDates collects the candidate's
// stored ranges deduplicated by exact (start, end) pair, sharedPreferences
// collects the distinct matched types. Output order is first-seen order,
// which is deterministic because the query loop is sequential.
func (s *MatchService) FindMatches(ctx context.Context, userID uuid.UUID) ([]domain.MatchCandidate, error) {
	ownDates, err := s.travelDates.ListByUser(ctx, userID)
	if err != nil {
		return nil, matchingFailure(err)
	}
	ownPrefs, err := s.preferences.ListByUser(ctx, userID)
	if err != nil {
		return nil, matchingFailure(err)
	}

	if len(ownDates) == 0 || len(ownPrefs) == 0 {
		return []domain.MatchCandidate{}, nil
	}

	// Accumulator owned exclusively by this invocation; order tracks
	// first-seen candidate IDs so map iteration order never leaks out.
	acc := make(map[uuid.UUID]*domain.MatchCandidate)
	var order []uuid.UUID

	for _, d := range ownDates {
		for _, p := range ownPrefs {
			rows, err := s.travelDates.FindOverlappingCandidates(ctx, userID, p.Type, d.DateRange)
			if err != nil {
				return nil, matchingFailure(err)
			}

			for _, row := range rows {
				c, seen := acc[row.User.ID]
				if !seen {
					c = &domain.MatchCandidate{User: row.User}
					acc[row.User.ID] = c
					order = append(order, row.User.ID)
				}
				if !containsRange(c.CommonDates, row.DateRange) {
					c.CommonDates = append(c.CommonDates, row.DateRange)
				}
				if !containsPreference(c.SharedPreferences, row.PreferenceType) {
					c.SharedPreferences = append(c.SharedPreferences, row.PreferenceType)
				}
			}
		}
	}

	ownWindows := make([]domain.DateRange, len(ownDates))
	for i, d := range ownDates {
		ownWindows[i] = d.DateRange
	}
	mergedOwn := daterange.Merge(ownWindows)

	matches := make([]domain.MatchCandidate, 0, len(order))
	for _, id := range order {
		c := acc[id]
		c.OverlapDays = totalOverlapDays(mergedOwn, c.CommonDates)
		c.CompatibilityScore = compatibilityScore(c.OverlapDays, len(c.SharedPreferences))
		matches = append(matches, *c)
	}
	return matches, nil
}

// matchingFailure wraps a repo error in the typed matching sentinel so
// callers can test errors.Is(err, domain.ErrMatching) while keeping the cause.
func matchingFailure(err error) error {
	return fmt.Errorf("service.MatchService.FindMatches: %w: %w", domain.ErrMatching, err)
}

func containsRange(ranges []domain.DateRange, r domain.DateRange) bool {
	for _, existing := range ranges {
		if existing.Equal(r) {
			return true
		}
	}
	return false
}

func containsPreference(prefs []domain.PreferenceType, p domain.PreferenceType) bool {
	for _, existing := range prefs {
		if existing == p {
			return true
		}
	}
	return false
}
