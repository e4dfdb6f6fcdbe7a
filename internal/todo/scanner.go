// Package todo extracts TODO paragraphs from meeting note files.
//
// A paragraph is a run of non-blank lines. A paragraph is kept when at least
// one of its lines starts with a TODO(...) marker; the marker's parenthesized
// items carry metadata: items shaped like YYYY-MM-DD set the due date, every
// other item names an owner.
package todo

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"notework/pkg/timeutil"
)

var (
	// todoLineRe flags a line as a TODO marker. Anchored: the marker must
	// open the line (leading spaces allowed).
	todoLineRe = regexp.MustCompile(`^ *TODO\(.*\)`)

	// todoMetaRe captures the first TODO group on a line, anchored or not,
	// so markers buried mid-paragraph still contribute owners.
	todoMetaRe = regexp.MustCompile(`TODO\(([^\)]*)\)`)
)

// Item is one TODO paragraph with its surrounding context.
type Item struct {
	Meeting string    `json:"meeting"`
	Note    string    `json:"note"`
	Lines   []string  `json:"lines"`
	Owners  []string  `json:"owners,omitempty"`
	Due     time.Time `json:"due,omitempty"`
}

// HasOwner reports whether name appears in the item's owners. Exact,
// case-sensitive match.
func (it Item) HasOwner(name string) bool {
	for _, o := range it.Owners {
		if o == name {
			return true
		}
	}
	return false
}

// Overdue reports whether the item has a due date strictly before now's date.
func (it Item) Overdue(now time.Time) bool {
	if it.Due.IsZero() {
		return false
	}
	return it.Due.Before(timeutil.DayOf(now))
}

// IsTodoLine reports whether line opens with a TODO(...) marker.
func IsTodoLine(line string) bool {
	return todoLineRe.MatchString(line)
}

// Paragraphs splits note lines into TODO paragraphs. A blank line closes the
// current paragraph. A TODO line that follows a paragraph already carrying a
// marker also closes it and opens a new paragraph, so stacked TODOs are
// reported separately. Paragraphs without a marker are dropped.
func Paragraphs(lines []string) [][]string {
	var paragraphs [][]string
	var current []string
	activeTodo := false

	for _, line := range lines {
		if line == "" || (activeTodo && IsTodoLine(line)) {
			if containsTodo(current) {
				paragraphs = append(paragraphs, current)
			}
			current = nil
			if line != "" {
				current = append(current, line)
			}
			activeTodo = false
		} else {
			current = append(current, line)
		}
		if IsTodoLine(line) {
			activeTodo = true
		}
	}
	if len(current) > 0 && containsTodo(current) {
		paragraphs = append(paragraphs, current)
	}
	return paragraphs
}

func containsTodo(lines []string) bool {
	for _, line := range lines {
		if IsTodoLine(line) {
			return true
		}
	}
	return false
}

// parseMetadata collects owners and the due date from a paragraph. Only the
// first TODO group per line is read. When several items parse as dates the
// last one wins.
func parseMetadata(lines []string) (owners []string, due time.Time) {
	seen := make(map[string]struct{})
	for _, line := range lines {
		m := todoMetaRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, item := range strings.Split(m[1], ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if d, err := time.ParseInLocation("2006-01-02", item, time.Local); err == nil {
				due = d
				continue
			}
			if _, ok := seen[item]; !ok {
				seen[item] = struct{}{}
				owners = append(owners, item)
			}
		}
	}
	sort.Strings(owners)
	return owners, due
}

// scanNote builds items for one note file.
func scanNote(meeting, note string, lines []string) []Item {
	var items []Item
	for _, paragraph := range Paragraphs(lines) {
		owners, due := parseMetadata(paragraph)
		items = append(items, Item{
			Meeting: meeting,
			Note:    note,
			Lines:   paragraph,
			Owners:  owners,
			Due:     due,
		})
	}
	return items
}
