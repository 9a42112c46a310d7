package domain

import (
	"time"

	"github.com/google/uuid"
)

// PreferenceType is a user's accepted travel-companion category.
// The set is closed; values outside it must never reach matching logic.
type PreferenceType string

const (
	PreferenceMixed     PreferenceType = "mixed"
	PreferenceCouples   PreferenceType = "couples"
	PreferenceGirlsOnly PreferenceType = "girls_only"
)

// ParsePreferenceType validates a raw string against the closed set.
// ok is false for anything unrecognized, including the empty string.
// Callers reading stored rows drop unknown values instead of failing:
// onboarding validation is the real guard, but stale data must not
// crash a matching run.
func ParsePreferenceType(s string) (PreferenceType, bool) {
	switch PreferenceType(s) {
	case PreferenceMixed, PreferenceCouples, PreferenceGirlsOnly:
		return PreferenceType(s), true
	}
	return "", false
}

// PreferenceTypes lists every valid preference type in display order.
func PreferenceTypes() []PreferenceType {
	return []PreferenceType{PreferenceMixed, PreferenceCouples, PreferenceGirlsOnly}
}

// GroupPreference is one preference row owned by a user.
// A user holds one row per selected type; onboarding replaces them wholesale.
type GroupPreference struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      PreferenceType
	IsActive  bool
	CreatedAt time.Time
}
