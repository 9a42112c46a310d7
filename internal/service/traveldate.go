package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vibentribe/backend/internal/domain"
	"github.com/vibentribe/backend/internal/repo"
)

// TravelDateService exposes read access to a user's stored travel windows.
type TravelDateService struct {
	travelDates repo.TravelDateRepo
}

// NewTravelDateService constructs a TravelDateService backed by the provided
// TravelDateRepo.
func NewTravelDateService(travelDates repo.TravelDateRepo) *TravelDateService {
	return &TravelDateService{travelDates: travelDates}
}

// ListByUser returns all travel windows owned by a user, ordered by start
// date. Always returns a non-nil slice so callers can safely range over it.
func (s *TravelDateService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TravelDate, error) {
	dates, err := s.travelDates.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TravelDateService.ListByUser: %w", err)
	}
	if dates == nil {
		return []domain.TravelDate{}, nil
	}
	return dates, nil
}
