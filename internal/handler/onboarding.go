package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/vibentribe/backend/internal/domain"
	"github.com/vibentribe/backend/internal/middleware"
)

// travelDateRequest is one travel window in the onboarding payload.
type travelDateRequest struct {
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Destination string             `json:"destination,omitempty"`
	IsFlexible  bool               `json:"is_flexible,omitempty"`
}

// onboardingRequest is the POST /onboarding body.
type onboardingRequest struct {
	TravelDates      []travelDateRequest `json:"travel_dates"`
	GroupPreferences []string            `json:"group_preferences"`
}

// onboardingResponse echoes back the matches found right after onboarding.
type onboardingResponse struct {
	Onboarded bool                     `json:"onboarded"`
	Matches   []matchCandidateResponse `json:"matches"`
}

// CompleteOnboarding handles POST /onboarding.
// It replaces the caller's travel dates and group preferences wholesale,
// marks the account onboarded, runs a matching pass, and returns the result.
func (s *Server) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing user identity")
		return
	}

	var req onboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	dates := make([]domain.TravelDate, len(req.TravelDates))
	for i, td := range req.TravelDates {
		dates[i] = domain.TravelDate{
			UserID: userID,
			DateRange: domain.DateRange{
				Start: td.StartDate.Time,
				End:   td.EndDate.Time,
			},
			Destination: td.Destination,
			IsFlexible:  td.IsFlexible,
		}
	}

	prefs := make([]domain.PreferenceType, len(req.GroupPreferences))
	for i, p := range req.GroupPreferences {
		prefs[i] = domain.PreferenceType(p)
	}

	matches, err := s.onboarding.Complete(r.Context(), userID, dates, prefs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			validationFailed(w, err)
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, "user not found")
		default:
			internalError(w, "internal_error")
		}
		return
	}

	writeJSON(w, http.StatusOK, onboardingResponse{
		Onboarded: true,
		Matches:   matchesToResponse(matches),
	})
}
