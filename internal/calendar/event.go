// Package calendar downloads an ICS feed and shapes its events into meeting
// occurrences: local start and end times, a meeting id taken from the first
// description line, and participant emails harvested from the description.
package calendar

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/apognu/gocal"

	"notework/pkg/timeutil"
)

// emailRe matches addresses embedded anywhere in description text, including
// ones wrapped in angle brackets or mailto: prefixes.
var emailRe = regexp.MustCompile(`([^@ :"'<>]+@[^@ :"'<>]+\.[^@ :"'<>]+)`)

// Event is one meeting occurrence selected from the feed.
type Event struct {
	UID          string
	MeetingID    string
	Summary      string
	Location     string
	Start        time.Time // local
	End          time.Time // local
	Description  []string  // plain-text lines
	Participants []string  // unique emails from the description, sorted
}

// Day returns the occurrence's local calendar date.
func (e Event) Day() time.Time {
	return timeutil.DayOf(e.Start)
}

// shape converts a parsed feed event into an Event. The first description
// line names the meeting; an event without one cannot be filed and is an
// error.
func shape(raw gocal.Event) (Event, error) {
	begin := raw.Start.In(time.Local)
	end := begin
	if raw.End != nil {
		end = raw.End.In(time.Local)
	}

	lines := DescriptionLines(raw.Description)
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return Event{}, fmt.Errorf("meeting %q starting %s has no meeting id in its description",
			raw.Summary, begin.Format("2006-01-02 15:04"))
	}

	return Event{
		UID:          raw.Uid,
		MeetingID:    strings.TrimSpace(lines[0]),
		Summary:      raw.Summary,
		Location:     raw.Location,
		Start:        begin,
		End:          end,
		Description:  lines,
		Participants: extractEmails(lines),
	}, nil
}

func extractEmails(lines []string) []string {
	seen := make(map[string]struct{})
	var emails []string
	for _, line := range lines {
		for _, m := range emailRe.FindAllString(line, -1) {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			emails = append(emails, m)
		}
	}
	sort.Strings(emails)
	return emails
}
