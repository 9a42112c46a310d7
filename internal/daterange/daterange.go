// Package daterange provides pure interval algebra on closed calendar
// date ranges. It is used both by onboarding validation and by the matching
// engine, and has no dependencies beyond the domain types.
//
// All operations treat ranges as closed intervals: both endpoints belong to
// the range, so two ranges that merely touch (a.End == b.Start) overlap.
// This matches the inclusive <=/>= comparisons the candidate SQL query uses.
package daterange

import (
	"time"

	"github.com/vibentribe/backend/internal/domain"
)

// day is the granularity of all interval math in this package.
const day = 24 * time.Hour

// normalize truncates a timestamp to UTC midnight so wall-clock components
// never affect interval comparisons.
func normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsValid reports whether [start, end] is a well-formed range.
// Equality is permitted: a one-day trip is valid.
func IsValid(start, end time.Time) bool {
	return !normalize(start).After(normalize(end))
}

// Overlaps reports whether two closed ranges share at least one day.
// The test is the standard interval intersection a.Start <= b.End &&
// b.Start <= a.End; it is symmetric and reflexive for any valid range.
func Overlaps(a, b domain.DateRange) bool {
	aStart, aEnd := normalize(a.Start), normalize(a.End)
	bStart, bEnd := normalize(b.Start), normalize(b.End)
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Intersection returns the shared window of two ranges.
// ok is false when the ranges are disjoint.
func Intersection(a, b domain.DateRange) (domain.DateRange, bool) {
	if !Overlaps(a, b) {
		return domain.DateRange{}, false
	}
	start := normalize(a.Start)
	if s := normalize(b.Start); s.After(start) {
		start = s
	}
	end := normalize(a.End)
	if e := normalize(b.End); e.Before(end) {
		end = e
	}
	return domain.DateRange{Start: start, End: end}, true
}

// OverlappingDays returns the inclusive day count of the intersection of
// two ranges, or 0 when they are disjoint. Identical one-day ranges
// overlap for exactly 1 day.
func OverlappingDays(a, b domain.DateRange) int {
	shared, ok := Intersection(a, b)
	if !ok {
		return 0
	}
	return Days(shared)
}

// Days returns the inclusive duration of a range in days.
// A range with Start == End is 1 day long.
func Days(r domain.DateRange) int {
	return int(normalize(r.End).Sub(normalize(r.Start))/day) + 1
}

// Merge folds a set of ranges into the minimal set of disjoint spans.
// Ranges are sorted by start date, then overlapping or touching neighbours
// collapse into a single min-start/max-end span. The input slice is not
// mutated; the result is freshly allocated and sorted.
func Merge(ranges []domain.DateRange) []domain.DateRange {
	if len(ranges) <= 1 {
		out := make([]domain.DateRange, len(ranges))
		copy(out, ranges)
		return out
	}

	sorted := make([]domain.DateRange, len(ranges))
	for i, r := range ranges {
		sorted[i] = domain.DateRange{Start: normalize(r.Start), End: normalize(r.End)}
	}
	sortByStart(sorted)

	merged := sorted[:1]
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if Overlaps(*last, cur) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			// Sorted input guarantees cur.Start >= last.Start.
		} else {
			merged = append(merged, cur)
		}
	}
	return merged
}

// sortByStart orders ranges by start date ascending, end date as tiebreak.
// Insertion sort: onboarded users hold a handful of windows at most.
func sortByStart(ranges []domain.DateRange) {
	for i := 1; i < len(ranges); i++ {
		for j := i; j > 0 && before(ranges[j], ranges[j-1]); j-- {
			ranges[j], ranges[j-1] = ranges[j-1], ranges[j]
		}
	}
}

func before(a, b domain.DateRange) bool {
	if !a.Start.Equal(b.Start) {
		return a.Start.Before(b.Start)
	}
	return a.End.Before(b.End)
}

// Format renders a range for display and notification text:
// start without year, end with year, e.g. "Mar 1 - Mar 5, 2025".
func Format(start, end time.Time) string {
	return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
}

// MinAllowed returns the earliest accepted travel date: today.
func MinAllowed(now time.Time) time.Time {
	return normalize(now)
}

// MaxAllowed returns the latest accepted travel date: one year from today.
func MaxAllowed(now time.Time) time.Time {
	return normalize(now).AddDate(0, 0, 365)
}

// WithinBounds reports whether a range fits the accepted input window
// [today, today+365d]. Used at the onboarding boundary only — the matching
// engine assumes stored ranges are pre-validated.
func WithinBounds(r domain.DateRange, now time.Time) bool {
	return !normalize(r.Start).Before(MinAllowed(now)) && !normalize(r.End).After(MaxAllowed(now))
}
