package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibentribe/backend/internal/domain"
)

func TestListTravelDates_ReturnsStoredWindows(t *testing.T) {
	id := uuid.MustParse("3f2d1c4e-5678-49ab-8cde-0123456789ab")
	svc := &mockTravelDateServicer{
		listByUser: func(_ context.Context, userID uuid.UUID) ([]domain.TravelDate, error) {
			assert.Equal(t, testUserID, userID)
			return []domain.TravelDate{{
				ID:          id,
				UserID:      userID,
				DateRange:   domain.DateRange{Start: utcDate(2025, 6, 1), End: utcDate(2025, 6, 10)},
				Destination: "Porto",
				IsFlexible:  true,
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/travel-dates", nil)
	rec := httptest.NewRecorder()
	newAPI(nil, nil, svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TravelDates []struct {
			ID          string `json:"id"`
			StartDate   string `json:"start_date"`
			EndDate     string `json:"end_date"`
			Destination string `json:"destination"`
			IsFlexible  bool   `json:"is_flexible"`
		} `json:"travel_dates"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.TravelDates, 1)
	assert.Equal(t, id.String(), body.TravelDates[0].ID)
	assert.Equal(t, "2025-06-01", body.TravelDates[0].StartDate)
	assert.Equal(t, "2025-06-10", body.TravelDates[0].EndDate)
	assert.Equal(t, "Porto", body.TravelDates[0].Destination)
	assert.True(t, body.TravelDates[0].IsFlexible)
}

func TestListTravelDates_EmptyIsEmptyArray(t *testing.T) {
	svc := &mockTravelDateServicer{
		listByUser: func(_ context.Context, _ uuid.UUID) ([]domain.TravelDate, error) {
			return []domain.TravelDate{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/travel-dates", nil)
	rec := httptest.NewRecorder()
	newAPI(nil, nil, svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"travel_dates":[]}`, rec.Body.String())
}

func TestListTravelDates_ServiceFailureReturns500(t *testing.T) {
	svc := &mockTravelDateServicer{
		listByUser: func(_ context.Context, _ uuid.UUID) ([]domain.TravelDate, error) {
			return nil, fmt.Errorf("boom")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/travel-dates", nil)
	rec := httptest.NewRecorder()
	newAPI(nil, nil, svc, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
