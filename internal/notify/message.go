package notify

import (
	"fmt"
	"strings"
)

// maxListedDates caps how many date strings appear verbatim in a match
// message; anything beyond becomes an "and N more" suffix.
const maxListedDates = 3

// MatchMessage builds the notification text for a set of found matches.
//
//	🎉 Hey Sam! You're not alone! 2 other travelers are free during
//	Mar 1 - Mar 5, 2025, Apr 2 - Apr 9, 2025 and match your vibe!
//	Check your VibeNTribe dashboard to connect.
//
// Pluralization follows matchCount: one match reads "traveler is ...
// matches your vibe", more than one "travelers are ... match your vibe".
func MatchMessage(userName string, matchCount int, commonDates []string) string {
	listed := commonDates
	var more string
	if len(commonDates) > maxListedDates {
		listed = commonDates[:maxListedDates]
		more = fmt.Sprintf(" and %d more", len(commonDates)-maxListedDates)
	}

	traveler, are, matches := "traveler", "is", "matches"
	if matchCount > 1 {
		traveler, are, matches = "travelers", "are", "match"
	}

	return fmt.Sprintf(
		"🎉 Hey %s! You're not alone! %d other %s %s free during %s%s and %s your vibe! Check your VibeNTribe dashboard to connect.",
		userName, matchCount, traveler, are, strings.Join(listed, ", "), more, matches,
	)
}
