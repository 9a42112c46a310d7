package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/vibentribe/backend/internal/domain"
	"github.com/vibentribe/backend/internal/middleware"
)

// travelDateResponse is one stored travel window in the GET /travel-dates body.
type travelDateResponse struct {
	ID          string             `json:"id"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Destination string             `json:"destination,omitempty"`
	IsFlexible  bool               `json:"is_flexible"`
}

type travelDateListResponse struct {
	TravelDates []travelDateResponse `json:"travel_dates"`
}

// ListTravelDates handles GET /travel-dates.
func (s *Server) ListTravelDates(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing user identity")
		return
	}

	dates, err := s.travelDates.ListByUser(r.Context(), userID)
	if err != nil {
		internalError(w, "internal_error")
		return
	}

	resp := travelDateListResponse{TravelDates: make([]travelDateResponse, len(dates))}
	for i, td := range dates {
		resp.TravelDates[i] = travelDateToResponse(td)
	}
	writeJSON(w, http.StatusOK, resp)
}

func travelDateToResponse(td domain.TravelDate) travelDateResponse {
	return travelDateResponse{
		ID:          td.ID.String(),
		StartDate:   openapi_types.Date{Time: td.Start},
		EndDate:     openapi_types.Date{Time: td.End},
		Destination: td.Destination,
		IsFlexible:  td.IsFlexible,
	}
}
