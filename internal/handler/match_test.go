package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibentribe/backend/internal/domain"
)

func matchFixture() domain.MatchCandidate {
	return domain.MatchCandidate{
		User: domain.UserSummary{
			ID:        uuid.MustParse("d7a21f90-13cf-4b43-b6ff-7cbb7a0e4b02"),
			FirstName: "Alex",
			LastName:  "Chen",
			Headline:  "Backend engineer",
		},
		CommonDates: []domain.DateRange{
			{Start: utcDate(2025, 3, 5), End: utcDate(2025, 3, 10)},
		},
		SharedPreferences:  []domain.PreferenceType{domain.PreferenceMixed},
		OverlapDays:        6,
		CompatibilityScore: 74,
	}
}

func TestListMatches_ReturnsCandidates(t *testing.T) {
	var gotUserID uuid.UUID
	svc := &mockMatchServicer{
		findMatches: func(_ context.Context, userID uuid.UUID) ([]domain.MatchCandidate, error) {
			gotUserID = userID
			return []domain.MatchCandidate{matchFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	rec := httptest.NewRecorder()
	newAPI(svc, nil, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, gotUserID, "handler passes the authenticated user")

	var body struct {
		Matches []struct {
			User struct {
				ID        string `json:"id"`
				FirstName string `json:"first_name"`
			} `json:"user"`
			CommonDates []struct {
				StartDate string `json:"start_date"`
				EndDate   string `json:"end_date"`
			} `json:"common_dates"`
			SharedPreferences  []string `json:"shared_preferences"`
			OverlapDays        int      `json:"overlap_days"`
			CompatibilityScore int      `json:"compatibility_score"`
		} `json:"matches"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Matches, 1)

	m := body.Matches[0]
	assert.Equal(t, "d7a21f90-13cf-4b43-b6ff-7cbb7a0e4b02", m.User.ID)
	assert.Equal(t, "Alex", m.User.FirstName)
	require.Len(t, m.CommonDates, 1)
	assert.Equal(t, "2025-03-05", m.CommonDates[0].StartDate, "dates serialize as YYYY-MM-DD")
	assert.Equal(t, "2025-03-10", m.CommonDates[0].EndDate)
	assert.Equal(t, []string{"mixed"}, m.SharedPreferences)
	assert.Equal(t, 6, m.OverlapDays)
	assert.Equal(t, 74, m.CompatibilityScore)
}

func TestListMatches_EmptyResultIsEmptyArray(t *testing.T) {
	svc := &mockMatchServicer{
		findMatches: func(_ context.Context, _ uuid.UUID) ([]domain.MatchCandidate, error) {
			return []domain.MatchCandidate{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	rec := httptest.NewRecorder()
	newAPI(svc, nil, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matches":[]}`, rec.Body.String())
}

func TestListMatches_MatchingFailureReturns500(t *testing.T) {
	svc := &mockMatchServicer{
		findMatches: func(_ context.Context, _ uuid.UUID) ([]domain.MatchCandidate, error) {
			return nil, domain.ErrMatching
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	rec := httptest.NewRecorder()
	newAPI(svc, nil, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "matching_error")
}
