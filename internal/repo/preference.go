package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vibentribe/backend/internal/domain"
)

// PreferenceRepo defines the persistence operations for group preferences.
type PreferenceRepo interface {
	// ListByUser returns a user's active preference rows.
	// Stored values outside the closed enum are dropped during scan.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GroupPreference, error)

	// ReplaceForUser deletes all of a user's preference rows and inserts one
	// active row per given type. Callers needing atomicity with travel-date
	// replacement construct the repo over a pgx.Tx.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, types []domain.PreferenceType) ([]domain.GroupPreference, error)
}

// pgPreferenceRepo is the Postgres implementation of PreferenceRepo.
type pgPreferenceRepo struct {
	db db
}

// NewPreferenceRepo constructs a PreferenceRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewPreferenceRepo(db db) PreferenceRepo {
	return &pgPreferenceRepo{db: db}
}

func (r *pgPreferenceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GroupPreference, error) {
	const q = `
		SELECT id, user_id, preference_type, is_active, created_at
		FROM group_preferences
		WHERE user_id = @user_id AND is_active = TRUE
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.PreferenceRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var prefs []domain.GroupPreference
	for rows.Next() {
		p, ok, err := scanPreference(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PreferenceRepo.ListByUser: scan: %w", err)
		}
		if !ok {
			continue // unknown stored value; excluded from matching
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PreferenceRepo.ListByUser: rows: %w", err)
	}

	return prefs, nil
}

func (r *pgPreferenceRepo) ReplaceForUser(ctx context.Context, userID uuid.UUID, types []domain.PreferenceType) ([]domain.GroupPreference, error) {
	const del = `DELETE FROM group_preferences WHERE user_id = @user_id`
	if _, err := r.db.Exec(ctx, del, pgx.NamedArgs{"user_id": userID}); err != nil {
		return nil, fmt.Errorf("repo.PreferenceRepo.ReplaceForUser: delete: %w", err)
	}

	const ins = `
		INSERT INTO group_preferences (user_id, preference_type, is_active)
		VALUES (@user_id, @preference_type, TRUE)
		RETURNING id, user_id, preference_type, is_active, created_at`

	out := make([]domain.GroupPreference, 0, len(types))
	for _, t := range types {
		row := r.db.QueryRow(ctx, ins, pgx.NamedArgs{"user_id": userID, "preference_type": string(t)})
		stored, ok, err := scanPreference(row)
		if err != nil {
			return nil, fmt.Errorf("repo.PreferenceRepo.ReplaceForUser: insert: %w", err)
		}
		if !ok {
			// Cannot happen: we just inserted a value from the enum.
			return nil, fmt.Errorf("repo.PreferenceRepo.ReplaceForUser: stored value %q not in enum", t)
		}
		out = append(out, stored)
	}
	return out, nil
}

// scanPreference maps one group_preferences row. ok is false when the stored
// preference_type does not parse into the closed enum.
func scanPreference(s scanner) (domain.GroupPreference, bool, error) {
	var (
		p       domain.GroupPreference
		id      pgtype.UUID
		userID  pgtype.UUID
		rawType string
	)

	err := s.Scan(&id, &userID, &rawType, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.GroupPreference{}, false, domain.ErrNotFound
		}
		return domain.GroupPreference{}, false, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.UserID = uuid.UUID(userID.Bytes)

	t, ok := domain.ParsePreferenceType(rawType)
	if !ok {
		return domain.GroupPreference{}, false, nil
	}
	p.Type = t

	return p, true, nil
}
