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

// CandidateRow is one raw result of the overlap candidate query: a candidate
// user joined against one of their travel windows and the preference type the
// query matched on. The matching engine groups these rows by user ID.
type CandidateRow struct {
	User           domain.UserSummary
	DateRange      domain.DateRange
	PreferenceType domain.PreferenceType
}

// TravelDateRepo defines the persistence operations for travel windows,
// including the candidate query the matching engine runs.
type TravelDateRepo interface {
	// ListByUser returns all travel windows owned by a user, ordered by
	// start date ascending. Returns an empty slice when the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TravelDate, error)

	// ReplaceForUser deletes all of a user's travel windows and inserts the
	// given set. Callers that need atomicity with preference replacement
	// construct the repo over a pgx.Tx.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, dates []domain.TravelDate) ([]domain.TravelDate, error)

	// FindOverlappingCandidates returns one row per (candidate user, travel
	// window) pair where the candidate is onboarded, is not excludeUserID,
	// holds an active preference row equal to pref, and owns a window
	// overlapping dateRange under the inclusive closed-interval test.
	FindOverlappingCandidates(ctx context.Context, excludeUserID uuid.UUID, pref domain.PreferenceType, dateRange domain.DateRange) ([]CandidateRow, error)
}

// pgTravelDateRepo is the Postgres implementation of TravelDateRepo.
type pgTravelDateRepo struct {
	db db
}

// NewTravelDateRepo constructs a TravelDateRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewTravelDateRepo(db db) TravelDateRepo {
	return &pgTravelDateRepo{db: db}
}

func (r *pgTravelDateRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TravelDate, error) {
	const q = `
		SELECT id, user_id, start_date, end_date, destination, is_flexible, created_at
		FROM travel_dates
		WHERE user_id = @user_id
		ORDER BY start_date ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TravelDateRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var dates []domain.TravelDate
	for rows.Next() {
		td, err := scanTravelDate(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TravelDateRepo.ListByUser: scan: %w", err)
		}
		dates = append(dates, td)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TravelDateRepo.ListByUser: rows: %w", err)
	}

	return dates, nil
}

func (r *pgTravelDateRepo) ReplaceForUser(ctx context.Context, userID uuid.UUID, dates []domain.TravelDate) ([]domain.TravelDate, error) {
	const del = `DELETE FROM travel_dates WHERE user_id = @user_id`
	if _, err := r.db.Exec(ctx, del, pgx.NamedArgs{"user_id": userID}); err != nil {
		return nil, fmt.Errorf("repo.TravelDateRepo.ReplaceForUser: delete: %w", err)
	}

	const ins = `
		INSERT INTO travel_dates (user_id, start_date, end_date, destination, is_flexible)
		VALUES (@user_id, @start_date, @end_date, @destination, @is_flexible)
		RETURNING id, user_id, start_date, end_date, destination, is_flexible, created_at`

	out := make([]domain.TravelDate, 0, len(dates))
	for _, d := range dates {
		args := pgx.NamedArgs{
			"user_id":     userID,
			"start_date":  d.Start,
			"end_date":    d.End,
			"destination": d.Destination,
			"is_flexible": d.IsFlexible,
		}
		row := r.db.QueryRow(ctx, ins, args)
		stored, err := scanTravelDate(row)
		if err != nil {
			return nil, fmt.Errorf("repo.TravelDateRepo.ReplaceForUser: insert: %w", err)
		}
		out = append(out, stored)
	}
	return out, nil
}

// FindOverlappingCandidates runs the core candidate query.
//
// The overlap condition is expressed as three boundary clauses — candidate
// range contains our start, candidate range contains our end, candidate range
// contained within ours — which together are equivalent to the symmetric
// closed-interval test but tolerate either direction of containment.
// All comparisons are inclusive so touching endpoints count as overlap.
func (r *pgTravelDateRepo) FindOverlappingCandidates(ctx context.Context, excludeUserID uuid.UUID, pref domain.PreferenceType, dateRange domain.DateRange) ([]CandidateRow, error) {
	const q = `
		SELECT DISTINCT
			u.id, u.first_name, u.last_name, u.profile_picture, u.headline, u.is_onboarded,
			td.start_date, td.end_date,
			gp.preference_type
		FROM users u
		JOIN travel_dates td ON u.id = td.user_id
		JOIN group_preferences gp ON u.id = gp.user_id
		WHERE u.id != @exclude_user_id
		  AND u.is_onboarded = TRUE
		  AND gp.is_active = TRUE
		  AND gp.preference_type = @preference_type
		  AND (
			(td.start_date <= @start_date AND td.end_date >= @start_date) OR
			(td.start_date <= @end_date   AND td.end_date >= @end_date)   OR
			(td.start_date >= @start_date AND td.end_date <= @end_date)
		  )
		ORDER BY u.id, td.start_date`

	args := pgx.NamedArgs{
		"exclude_user_id": excludeUserID,
		"preference_type": string(pref),
		"start_date":      dateRange.Start,
		"end_date":        dateRange.End,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.TravelDateRepo.FindOverlappingCandidates: %w", err)
	}
	defer rows.Close()

	var candidates []CandidateRow
	for rows.Next() {
		c, ok, err := scanCandidateRow(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TravelDateRepo.FindOverlappingCandidates: scan: %w", err)
		}
		if !ok {
			// Stored preference value outside the enum. Onboarding validation
			// should make this impossible; skip the row rather than fail the run.
			continue
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TravelDateRepo.FindOverlappingCandidates: rows: %w", err)
	}

	return candidates, nil
}

// scanTravelDate maps a single database row into a domain.TravelDate.
func scanTravelDate(s scanner) (domain.TravelDate, error) {
	var (
		td     domain.TravelDate
		id     pgtype.UUID
		userID pgtype.UUID
		start  pgtype.Date
		end    pgtype.Date
	)

	err := s.Scan(&id, &userID, &start, &end, &td.Destination, &td.IsFlexible, &td.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TravelDate{}, domain.ErrNotFound
		}
		return domain.TravelDate{}, err
	}

	td.ID = uuid.UUID(id.Bytes)
	td.UserID = uuid.UUID(userID.Bytes)
	td.Start = start.Time
	td.End = end.Time
	return td, nil
}

// scanCandidateRow maps one candidate query row. ok is false when the stored
// preference value does not parse into the closed enum.
func scanCandidateRow(s scanner) (CandidateRow, bool, error) {
	var (
		c       CandidateRow
		id      pgtype.UUID
		start   pgtype.Date
		end     pgtype.Date
		rawPref string
	)

	err := s.Scan(&id, &c.User.FirstName, &c.User.LastName, &c.User.ProfilePicture,
		&c.User.Headline, &c.User.IsOnboarded, &start, &end, &rawPref)
	if err != nil {
		return CandidateRow{}, false, err
	}

	c.User.ID = uuid.UUID(id.Bytes)
	c.DateRange = domain.DateRange{Start: start.Time, End: end.Time}

	pref, ok := domain.ParsePreferenceType(rawPref)
	if !ok {
		return CandidateRow{}, false, nil
	}
	c.PreferenceType = pref

	return c, true, nil
}
