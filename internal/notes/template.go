// Package notes manages the on-disk meeting notes tree: one directory per
// meeting id, one dated note file per occurrence, and a YAML manifest
// indexing what the downloader has generated.
package notes

import (
	"strings"
	"text/template"
	"time"

	"notework/pkg/timeutil"
)

// TimeLayout is the timestamp format used inside note headers.
const TimeLayout = "2006-01-02:15:04:05"

// DayLayout names note files and manifest dates.
const DayLayout = "2006-01-02"

var noteTemplate = template.Must(template.New("note").Parse(`{{.Heading}}

:Author: {{.Author}}
:Email: {{.Email}}
:Date: {{.Now}}
:Meeting-Time: {{.Start}} - {{.End}}

:Meeting-Participants:
{{.Participants}}

:Meeting-Description:
{{.Description}}

:Agenda:

:Notes:
`))

// Meeting describes one occurrence to file as a note.
type Meeting struct {
	ID           string
	Start        time.Time
	End          time.Time
	Participants []string
	Description  []string
}

// Day returns the occurrence's local calendar date, which names the note.
func (m Meeting) Day() time.Time {
	return timeutil.DayOf(m.Start)
}

type templateData struct {
	Heading      string
	Author       string
	Email        string
	Now          string
	Start        string
	End          string
	Participants string
	Description  string
}

// Render produces the body of a fresh note for the meeting.
func Render(m Meeting, author, email string, now time.Time) (string, error) {
	data := templateData{
		Heading:      m.Day().Format(DayLayout) + ".txt",
		Author:       author,
		Email:        email,
		Now:          now.Format(TimeLayout),
		Start:        m.Start.Format(TimeLayout),
		End:          m.End.Format(TimeLayout),
		Participants: indentLines(m.Participants),
		Description:  indentLines(m.Description),
	}
	var b strings.Builder
	if err := noteTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// indentLines prefixes each non-blank line with two spaces.
func indentLines(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		out[i] = "  " + line
	}
	return strings.Join(out, "\n")
}
