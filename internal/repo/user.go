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

// UserRepo defines the persistence operations for Users.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the services to be unit-tested with a mock.
type UserRepo interface {
	// Create inserts a new user (fresh from OAuth, not yet onboarded) and
	// returns the persisted record with DB-generated fields populated.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByID retrieves a single user by its UUID primary key.
	// Returns domain.ErrNotFound if no user with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// GetByLinkedInID retrieves a user by the opaque LinkedIn member ID.
	// Returns domain.ErrNotFound if no such user exists.
	GetByLinkedInID(ctx context.Context, linkedInID string) (domain.User, error)

	// SetOnboarded flips the onboarding flag for a user.
	// Returns domain.ErrNotFound if the user does not exist.
	SetOnboarded(ctx context.Context, id uuid.UUID, onboarded bool) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

const userColumns = `id, linkedin_id, email, first_name, last_name,
	profile_picture, headline, location, phone, is_onboarded, created_at, updated_at`

func (r *pgUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (linkedin_id, email, first_name, last_name,
			profile_picture, headline, location, phone)
		VALUES (@linkedin_id, @email, @first_name, @last_name,
			@profile_picture, @headline, @location, @phone)
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"linkedin_id":     user.LinkedInID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"profile_picture": user.ProfilePicture,
		"headline":        user.Headline,
		"location":        user.Location,
		"phone":           user.Phone,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) GetByLinkedInID(ctx context.Context, linkedInID string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE linkedin_id = @linkedin_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"linkedin_id": linkedInID})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByLinkedInID: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) SetOnboarded(ctx context.Context, id uuid.UUID, onboarded bool) error {
	const q = `
		UPDATE users
		SET is_onboarded = @is_onboarded,
		    updated_at   = now()
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "is_onboarded": onboarded})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.SetOnboarded: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.SetOnboarded: %w", domain.ErrNotFound)
	}
	return nil
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var (
		u  domain.User
		id pgtype.UUID
	)

	err := s.Scan(&id, &u.LinkedInID, &u.Email, &u.FirstName, &u.LastName,
		&u.ProfilePicture, &u.Headline, &u.Location, &u.Phone,
		&u.IsOnboarded, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	u.ID = uuid.UUID(id.Bytes)
	return u, nil
}
