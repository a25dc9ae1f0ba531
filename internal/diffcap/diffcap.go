// Package diffcap bounds staged diffs before they are sent to a model.
//
// Lengths are counted in runes so that truncation never splits a multi-byte
// character.
package diffcap

import (
	"strings"
	"unicode/utf8"

	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
)

// TruncationMarker is appended to any text that was clipped.
const TruncationMarker = "...TRUNCATED..."

const sectionJoiner = "\n\n"

// Budgets holds the per-file and total character limits.
type Budgets struct {
	MaxCharsPerFile int
	MaxCharsTotal   int
}

var DefaultBudgets = Budgets{
	MaxCharsPerFile: 8000,
	MaxCharsTotal:   32000,
}

var markerLen = utf8.RuneCountInString(TruncationMarker)

// TruncateWithMarker clips input to maxChars, ending the result with
// TruncationMarker whenever something was removed.
func TruncateWithMarker(input string, maxChars int) string {
	if utf8.RuneCountInString(input) <= maxChars {
		return input
	}
	if maxChars <= 0 {
		return ""
	}
	if maxChars <= markerLen {
		return prefix(TruncationMarker, maxChars)
	}
	return prefix(input, maxChars-markerLen) + TruncationMarker
}

// CapDiffsByFileAndTotal caps entries with DefaultBudgets.
func CapDiffsByFileAndTotal(entries []models.DiffEntry) string {
	return CapDiffs(entries, DefaultBudgets)
}

// CapDiffs joins entries into one prompt string. Each diff is clipped to
// MaxCharsPerFile; sections are appended in order until MaxCharsTotal is
// used up. The section that overflows is clipped to what is left and every
// later entry is dropped. The joiner is charged against the budget before
// the section it precedes, so the output never exceeds MaxCharsTotal.
func CapDiffs(entries []models.DiffEntry, budgets Budgets) string {
	remaining := budgets.MaxCharsTotal
	sections := make([]string, 0, len(entries))

	for _, entry := range entries {
		if remaining <= 0 {
			break
		}
		if len(sections) > 0 {
			remaining -= utf8.RuneCountInString(sectionJoiner)
			if remaining <= 0 {
				break
			}
		}

		section := entry.Header + "\n" + TruncateWithMarker(entry.Diff, budgets.MaxCharsPerFile)
		size := utf8.RuneCountInString(section)
		if size <= remaining {
			sections = append(sections, section)
			remaining -= size
			continue
		}

		sections = append(sections, TruncateWithMarker(section, remaining))
		remaining = 0
		break
	}

	return strings.Join(sections, sectionJoiner)
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
