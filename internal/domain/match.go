package domain

// MatchCandidate is another onboarded user who shares at least one
// overlapping travel window and at least one group preference with the
// requesting user. Candidates are built per matching run and never
// persisted — they carry no identity of their own.
type MatchCandidate struct {
	User UserSummary

	// CommonDates holds the candidate's stored ranges that overlapped any
	// of the requester's ranges, deduplicated by exact (start, end) pair.
	CommonDates []DateRange

	// SharedPreferences is the intersection of the two users'
	// preference-type sets, in first-seen order.
	SharedPreferences []PreferenceType

	// OverlapDays is the total number of inclusive days the requester's
	// windows intersect this candidate's CommonDates.
	OverlapDays int

	// CompatibilityScore is a 0-100 display score derived from OverlapDays
	// and the shared preference count.
	CompatibilityScore int
}
