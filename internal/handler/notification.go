package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vibentribe/backend/internal/domain"
	"github.com/vibentribe/backend/internal/middleware"
)

// notificationResponse is one entry in the GET /notifications body.
type notificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type notificationListResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	Total         int64                  `json:"total"`
}

// ListNotifications handles GET /notifications?page=&limit=.
// Results are newest-first; unparseable query values fall back to defaults.
func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing user identity")
		return
	}

	p := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	notifs, total, err := s.notifications.ListByUser(r.Context(), userID, p)
	if err != nil {
		internalError(w, "internal_error")
		return
	}

	resp := notificationListResponse{
		Notifications: make([]notificationResponse, len(notifs)),
		Page:          p.Page,
		Limit:         p.Limit,
		Total:         total,
	}
	for i, n := range notifs {
		resp.Notifications[i] = notificationResponse{
			ID:        n.ID.String(),
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// MarkNotificationRead handles POST /notifications/{id}/read.
// A notification belonging to a different user reads as missing, so the
// endpoint never reveals whether someone else's ID exists.
func (s *Server) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing user identity")
		return
	}

	notificationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid notification id")
		return
	}

	if err := s.notifications.MarkRead(r.Context(), userID, notificationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "notification not found")
			return
		}
		internalError(w, "internal_error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an integer query parameter, returning nil when absent or
// malformed so pagination defaults apply.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
