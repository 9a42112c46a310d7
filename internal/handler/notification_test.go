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

func TestListNotifications_ReturnsPage(t *testing.T) {
	svc := &mockNotificationServicer{
		listByUser: func(_ context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Notification, int64, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, 5, p.Limit)
			return []domain.Notification{{
				ID:      uuid.New(),
				UserID:  userID,
				Type:    domain.NotificationMatchFound,
				Title:   "New travel matches",
				Message: "2 travelers share your dates",
			}}, 7, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/notifications?page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	newAPI(nil, nil, nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Notifications []struct {
			Type    string `json:"type"`
			Title   string `json:"title"`
			IsRead  bool   `json:"is_read"`
			Message string `json:"message"`
		} `json:"notifications"`
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Notifications, 1)
	assert.Equal(t, "match_found", body.Notifications[0].Type)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 5, body.Limit)
	assert.EqualValues(t, 7, body.Total)
}

func TestListNotifications_BadQueryFallsBackToDefaults(t *testing.T) {
	svc := &mockNotificationServicer{
		listByUser: func(_ context.Context, _ uuid.UUID, p domain.PaginationParams) ([]domain.Notification, int64, error) {
			assert.Equal(t, 1, p.Page)
			assert.Equal(t, 20, p.Limit)
			return []domain.Notification{}, 0, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/notifications?page=abc&limit=-3", nil)
	rec := httptest.NewRecorder()
	newAPI(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMarkNotificationRead_Succeeds(t *testing.T) {
	notifID := uuid.New()
	var gotUser, gotNotif uuid.UUID
	svc := &mockNotificationServicer{
		markRead: func(_ context.Context, userID, notificationID uuid.UUID) error {
			gotUser, gotNotif = userID, notificationID
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/notifications/"+notifID.String()+"/read", nil)
	rec := httptest.NewRecorder()
	newAPI(nil, nil, nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testUserID, gotUser)
	assert.Equal(t, notifID, gotNotif)
}

func TestMarkNotificationRead_InvalidIDReturns422(t *testing.T) {
	svc := &mockNotificationServicer{
		markRead: func(_ context.Context, _, _ uuid.UUID) error {
			t.Fatal("service must not be called for a malformed id")
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/notifications/not-a-uuid/read", nil)
	rec := httptest.NewRecorder()
	newAPI(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMarkNotificationRead_UnknownIDReturns404(t *testing.T) {
	svc := &mockNotificationServicer{
		markRead: func(_ context.Context, _, _ uuid.UUID) error {
			return domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/notifications/"+uuid.NewString()+"/read", nil)
	rec := httptest.NewRecorder()
	newAPI(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
