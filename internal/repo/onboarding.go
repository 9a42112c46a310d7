package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vibentribe/backend/internal/domain"
)

// beginner is the subset of *pgxpool.Pool needed to open a transaction.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// OnboardingRepo performs the wholesale replacement of a user's onboarding
// data. Old travel-date and preference rows are deleted and the new sets
// inserted inside a single transaction, together with the onboarding flag,
// so a matching run never observes a half-replaced user.
type OnboardingRepo interface {
	ReplaceOnboardingData(ctx context.Context, userID uuid.UUID, dates []domain.TravelDate, prefs []domain.PreferenceType) ([]domain.TravelDate, []domain.GroupPreference, error)
}

// pgOnboardingRepo is the Postgres implementation of OnboardingRepo.
type pgOnboardingRepo struct {
	db beginner
}

// NewOnboardingRepo constructs an OnboardingRepo backed by a connection
// source that can open transactions (in production, *pgxpool.Pool).
func NewOnboardingRepo(db beginner) OnboardingRepo {
	return &pgOnboardingRepo{db: db}
}

func (r *pgOnboardingRepo) ReplaceOnboardingData(ctx context.Context, userID uuid.UUID, dates []domain.TravelDate, prefs []domain.PreferenceType) ([]domain.TravelDate, []domain.GroupPreference, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("repo.OnboardingRepo.ReplaceOnboardingData: begin: %w", err)
	}
	// Rollback is a no-op after a successful commit.
	defer tx.Rollback(ctx)

	storedDates, err := NewTravelDateRepo(tx).ReplaceForUser(ctx, userID, dates)
	if err != nil {
		return nil, nil, err
	}

	storedPrefs, err := NewPreferenceRepo(tx).ReplaceForUser(ctx, userID, prefs)
	if err != nil {
		return nil, nil, err
	}

	if err := NewUserRepo(tx).SetOnboarded(ctx, userID, true); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("repo.OnboardingRepo.ReplaceOnboardingData: commit: %w", err)
	}

	return storedDates, storedPrefs, nil
}
