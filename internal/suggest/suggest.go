// Package suggest builds error messages that propose close alternatives for
// a mistyped command, meeting id, or time value.
package suggest

import (
	"fmt"
	"sort"
	"strings"
)

// Error is an error that includes suggestions for fixing the problem.
type Error struct {
	Message     string
	Suggestions []string
	HelpCommand string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nDid you mean one of these?\n")
		for _, s := range e.Suggestions {
			b.WriteString("  ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	if e.HelpCommand != "" {
		b.WriteString("\nRun '")
		b.WriteString(e.HelpCommand)
		b.WriteString("' for more information.")
	}

	return b.String()
}

// UnknownCommandError reports a shell command that matched nothing.
func UnknownCommandError(cmd string, known []string) error {
	return &Error{
		Message:     fmt.Sprintf("unknown command %q", cmd),
		Suggestions: findSimilar(cmd, known, 3),
		HelpCommand: "help",
	}
}

// UnknownMeetingError reports a meeting id with no directory in the notes
// tree.
func UnknownMeetingError(id string, known []string) error {
	return &Error{
		Message:     fmt.Sprintf("meeting %q not found", id),
		Suggestions: findSimilar(id, known, 3),
		HelpCommand: "meetings",
	}
}

// InvalidTimeError reports a time value that neither parser accepted.
func InvalidTimeError(input string) error {
	return &Error{
		Message: fmt.Sprintf("invalid time %q", input),
		Suggestions: []string{
			"Relative: 30m, 2h, 5d, 1w (minutes, hours, days, weeks ago)",
			"Absolute: 2020-01-15 09:00 or RFC3339",
			"Date only: 2020-01-15",
		},
	}
}

// MissingConfigError reports an unset config key a command needs.
func MissingConfigError(key string, examples []string) error {
	return &Error{
		Message:     fmt.Sprintf("%s is not set", key),
		Suggestions: examples,
	}
}

// findSimilar finds strings similar to target using Levenshtein distance.
func findSimilar(target string, candidates []string, maxDistance int) []string {
	type match struct {
		value    string
		distance int
	}

	var matches []match
	targetLower := strings.ToLower(target)

	for _, c := range candidates {
		cLower := strings.ToLower(c)
		d := levenshtein(targetLower, cLower)
		if d <= maxDistance {
			matches = append(matches, match{value: c, distance: d})
		}
	}

	// Sort by distance (closest first)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	// Return top 3
	var result []string
	for i := 0; i < len(matches) && i < 3; i++ {
		result = append(result, matches[i].value)
	}

	return result
}

// levenshtein calculates the Levenshtein distance between two strings.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Create matrix
	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	// Initialize first column
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}

	// Initialize first row
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	// Fill matrix
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func min(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
