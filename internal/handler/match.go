package handler

import (
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/vibentribe/backend/internal/domain"
	"github.com/vibentribe/backend/internal/middleware"
)

// userSummaryResponse is the candidate identity exposed in a match result.
type userSummaryResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	Headline       string `json:"headline,omitempty"`
}

// dateRangeResponse serializes a travel window as date-only values.
type dateRangeResponse struct {
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
}

// matchCandidateResponse is one entry in the GET /matches body.
type matchCandidateResponse struct {
	User               userSummaryResponse `json:"user"`
	CommonDates        []dateRangeResponse `json:"common_dates"`
	SharedPreferences  []string            `json:"shared_preferences"`
	OverlapDays        int                 `json:"overlap_days"`
	CompatibilityScore int                 `json:"compatibility_score"`
}

type matchListResponse struct {
	Matches []matchCandidateResponse `json:"matches"`
}

// ListMatches handles GET /matches.
// It runs a matching pass for the authenticated user and returns the
// deduplicated candidate list. A user with no travel dates or preferences
// gets an empty list, not an error.
func (s *Server) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing user identity")
		return
	}

	matches, err := s.matches.FindMatches(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrMatching) {
			internalError(w, "matching_error")
			return
		}
		internalError(w, "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, matchListResponse{Matches: matchesToResponse(matches)})
}

// ---- mapping helpers --------------------------------------------------------

func matchesToResponse(matches []domain.MatchCandidate) []matchCandidateResponse {
	out := make([]matchCandidateResponse, len(matches))
	for i, m := range matches {
		out[i] = matchToResponse(m)
	}
	return out
}

func matchToResponse(m domain.MatchCandidate) matchCandidateResponse {
	resp := matchCandidateResponse{
		User: userSummaryResponse{
			ID:             m.User.ID.String(),
			FirstName:      m.User.FirstName,
			LastName:       m.User.LastName,
			ProfilePicture: m.User.ProfilePicture,
			Headline:       m.User.Headline,
		},
		CommonDates:        make([]dateRangeResponse, len(m.CommonDates)),
		SharedPreferences:  make([]string, len(m.SharedPreferences)),
		OverlapDays:        m.OverlapDays,
		CompatibilityScore: m.CompatibilityScore,
	}
	for i, d := range m.CommonDates {
		resp.CommonDates[i] = dateRangeResponse{
			StartDate: openapi_types.Date{Time: d.Start},
			EndDate:   openapi_types.Date{Time: d.End},
		}
	}
	for i, p := range m.SharedPreferences {
		resp.SharedPreferences[i] = string(p)
	}
	return resp
}
