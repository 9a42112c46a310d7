// Package domain contains the core data types for the VibeNTribe matching
// backend. This package has zero external dependencies beyond uuid and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a traveller identified through LinkedIn OAuth.
// Only onboarded users (IsOnboarded true) participate in matching.
type User struct {
	ID             uuid.UUID
	LinkedInID     string
	Email          string
	FirstName      string
	LastName       string
	ProfilePicture string
	Headline       string
	Location       string
	Phone          string
	IsOnboarded    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns the display name used in notifications and match cards.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserSummary is the subset of User exposed inside a match result.
// Email and LinkedIn ID are deliberately absent — match candidates should
// not leak contact details before both sides connect.
type UserSummary struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	ProfilePicture string
	Headline       string
	IsOnboarded    bool
}
