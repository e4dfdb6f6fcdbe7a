package calendar

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/apognu/gocal"

	"notework/pkg/dedupe"
	"notework/pkg/timeutil"
)

// dedupeCapacity bounds the occurrence key set used to drop feed duplicates.
const dedupeCapacity = 512

// Window is an inclusive local-date range. An event belongs to the window
// when its begin time, converted to local time, falls on a date inside it.
type Window struct {
	From time.Time
	To   time.Time
}

// DayWindow builds a window from two times, keeping only their dates.
func DayWindow(from, to time.Time) Window {
	return Window{From: timeutil.DayOf(from), To: timeutil.DayOf(to)}
}

// Today returns a single-day window for the current date.
func Today() Window {
	return DayWindow(time.Now(), time.Now())
}

// Contains reports whether t's local date falls inside the window.
func (w Window) Contains(t time.Time) bool {
	day := timeutil.DayOf(t)
	return !day.Before(w.From) && !day.After(w.To)
}

// Parse reads an ICS feed and returns the shaped events whose begin date
// falls inside the window, ordered by start time. Recurring events are
// expanded; duplicate occurrences (same UID and start) are dropped.
func Parse(r io.Reader, w Window) ([]Event, error) {
	parser := gocal.NewParser(r)
	start, end := w.From, w.To.AddDate(0, 0, 1)
	parser.Start, parser.End = &start, &end
	if err := parser.Parse(); err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	seen := dedupe.New(dedupeCapacity)
	var events []Event
	for _, raw := range parser.Events {
		if raw.Start == nil {
			continue
		}
		begin := raw.Start.In(time.Local)
		if !w.Contains(begin) {
			continue
		}
		if seen.Seen(raw.Uid + "|" + begin.Format(time.RFC3339)) {
			continue
		}
		ev, err := shape(raw)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		return events[i].MeetingID < events[j].MeetingID
	})
	return events, nil
}
