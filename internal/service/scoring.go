package service

import (
	"github.com/vibentribe/backend/internal/daterange"
	"github.com/vibentribe/backend/internal/domain"
)

// totalOverlapDays sums the inclusive day counts of the intersections
// between the requester's merged windows and a candidate's common dates.
// The candidate side is merged first so a range reported under several
// preference iterations is never counted twice.
func totalOverlapDays(mergedOwn, commonDates []domain.DateRange) int {
	total := 0
	for _, own := range mergedOwn {
		for _, theirs := range daterange.Merge(commonDates) {
			total += daterange.OverlappingDays(own, theirs)
		}
	}
	return total
}

// compatibilityScore derives the 0-100 display score for a match.
//
// Every candidate in the result set already shares a window and a
// preference, so the floor is 40. Overlap days add 4 points each up to 10
// days (+40), and each shared preference beyond participation adds 10 up
// to two (+20). The weights are display policy, not matching policy —
// candidates are never filtered or reordered by score.
func compatibilityScore(overlapDays, sharedPreferences int) int {
	score := 40

	days := overlapDays
	if days > 10 {
		days = 10
	}
	score += days * 4

	prefs := sharedPreferences
	if prefs > 2 {
		prefs = 2
	}
	score += prefs * 10

	if score > 100 {
		score = 100
	}
	return score
}
