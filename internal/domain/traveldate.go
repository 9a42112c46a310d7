package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateRange is a closed calendar interval [Start, End].
// Both bounds are inclusive: a one-day trip has Start == End.
// Interval math on DateRange lives in internal/daterange.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Equal reports whether two ranges have exactly the same bounds.
// Match accumulation dedupes common dates by this exact-pair equality,
// not by interval overlap.
func (r DateRange) Equal(other DateRange) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// TravelDate is one travel window owned by a user.
// A user holds zero or more rows; onboarding replaces them wholesale.
type TravelDate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DateRange
	Destination string
	IsFlexible  bool
	CreatedAt   time.Time
}
