package journal

import (
	"strings"
	"time"

	"notework/pkg/timeutil"
)

// Marker prefixes every timestamp line in a journal.
const Marker = "# "

// Stamp is a parsed timestamp line: a point in time plus the tags that
// follow it. Stamps exist only while a scan is running; they are not
// retained in the output.
type Stamp struct {
	Time time.Time
	Tags []string
}

// HasTag reports whether the stamp carries tag. Matching is exact and
// case-sensitive.
func (s Stamp) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ParseStampLine decides whether line encodes a timestamp entry.
//
// A stamp line starts with the marker; the two whitespace-delimited tokens
// after it, joined, must parse as a date-time (a single token is enough when
// nothing follows, so a bare "# 2020-01-01" is a stamp). Everything after
// the time tokens is a tag, kept in order with duplicates intact. Lines that
// fail any part of this are not errors, just not stamps.
func ParseStampLine(line string) (Stamp, bool) {
	if !strings.HasPrefix(line, Marker) {
		return Stamp{}, false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Stamp{}, false
	}

	end := 3
	if len(fields) < end {
		end = len(fields)
	}
	when, err := timeutil.ParseLoose(strings.Join(fields[1:end], " "))
	if err != nil {
		return Stamp{}, false
	}

	var tags []string
	if len(fields) > 3 {
		tags = append(tags, fields[3:]...)
	}

	return Stamp{Time: when, Tags: tags}, true
}
