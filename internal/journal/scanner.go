// Package journal extracts tagged time intervals from plain-text journal
// files. A journal is an ordered sequence of lines; lines beginning with
// "# " followed by a parseable date-time are stamps, and a pair of stamps
// carrying a start tag and an end tag bounds one interval.
package journal

import (
	"time"

	"notework/pkg/timeutil"
)

// Interval is one span of tracked time, bounded by a start-tagged and an
// end-tagged stamp line. Once sealed and emitted it is never modified.
type Interval struct {
	Start time.Time
	End   time.Time
	Lines []string // raw lines in input order, boundary stamps included
}

// Duration returns End - Start.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Hours returns the interval length in fractional hours.
func (iv Interval) Hours() float64 {
	return iv.Duration().Hours()
}

// Day returns the calendar day the interval ends on. Day-range filtering
// keys off the end stamp, so an interval crossing midnight counts toward
// the day it closed.
func (iv Interval) Day() time.Time {
	return timeutil.DayOf(iv.End)
}

// Body returns the lines between the two boundary stamps.
func (iv Interval) Body() []string {
	if len(iv.Lines) <= 2 {
		return nil
	}
	return iv.Lines[1 : len(iv.Lines)-1]
}

// Extract pairs start/end tagged stamps in lines into intervals, emitted in
// the order their end stamps appear. Non-stamp lines are body content while
// an interval is open and inert otherwise; stamp lines carrying neither tag
// behave the same way.
//
// A stamp carrying both tags is always fatal: with no interval open the end
// tag is checked first (unmatched end), with one open the start tag is
// checked first (nested start). Any error aborts the scan; no partial result
// is returned. The scan holds no state between calls, so the same input
// always yields the same intervals.
func Extract(lines []string, startTag, endTag string) ([]Interval, error) {
	var intervals []Interval
	var open *Interval
	openLine := 0

	for i, line := range lines {
		num := i + 1
		stamp, ok := ParseStampLine(line)

		if open == nil {
			if !ok {
				continue
			}
			if stamp.HasTag(endTag) {
				return nil, &UnmatchedEndError{Line: num, Text: line}
			}
			if stamp.HasTag(startTag) {
				open = &Interval{Start: stamp.Time, Lines: []string{line}}
				openLine = num
			}
			continue
		}

		open.Lines = append(open.Lines, line)
		if !ok {
			continue
		}
		if stamp.HasTag(startTag) {
			return nil, &NestedIntervalError{Line: num, Text: line}
		}
		if stamp.HasTag(endTag) {
			open.End = stamp.Time
			if open.End.Before(open.Start) {
				return nil, &NegativeDurationError{Line: num, Text: line, Start: open.Start, End: open.End}
			}
			intervals = append(intervals, *open)
			open = nil
		}
	}

	if open != nil {
		return nil, &UnterminatedIntervalError{Line: openLine, Text: open.Lines[0]}
	}
	return intervals, nil
}
