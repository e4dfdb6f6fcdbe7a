package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"notework/internal/calendar"
	"notework/internal/notes"
	"notework/internal/report"
	"notework/internal/suggest"
	"notework/pkg/timeutil"
)

var (
	meetingsFrom string
	meetingsTo   string
	meetingsURL  string

	meetingsDryRun bool
)

var meetingsCmd = &cobra.Command{
	Use:   "meetings",
	Short: "Work with the meeting calendar and its note files",
	Long: `Fetch the configured ICS feed and either create one note file per
meeting occurrence (download) or just show the agenda (list).

An event's first description line names the meeting; notes land in
<notes-dir>/<meeting-id>/<YYYY-MM-DD>.txt and are never overwritten.`,
}

var meetingsDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Create note files for calendar meetings",
	Long: `Download the calendar feed, select the events whose begin date falls
inside the window, and create a note file for each occurrence. Existing
files are left alone. Generated notes are recorded in the manifest so the
shell can list them offline.

Examples:
  # Today's meetings
  notework meetings download

  # Next week's, without writing anything
  notework meetings download --from 2020-01-06 --to 2020-01-10 --dry-run`,
	Args: cobra.NoArgs,
	RunE: runMeetingsDownload,
}

var meetingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List calendar meetings without writing notes",
	Args:  cobra.NoArgs,
	RunE:  runMeetingsList,
}

func init() {
	rootCmd.AddCommand(meetingsCmd)
	meetingsCmd.AddCommand(meetingsDownloadCmd)
	meetingsCmd.AddCommand(meetingsListCmd)

	meetingsCmd.PersistentFlags().StringVar(&meetingsFrom, "from", "", "First day of the window (default today)")
	meetingsCmd.PersistentFlags().StringVar(&meetingsTo, "to", "", "Last day of the window (default the from day)")
	meetingsCmd.PersistentFlags().StringVar(&meetingsURL, "url", "", "ICS feed URL (default from config)")

	meetingsDownloadCmd.Flags().BoolVar(&meetingsDryRun, "dry-run", false, "Show what would be created without writing")
}

// meetingsWindow resolves the --from/--to flags into a day window.
func meetingsWindow() (calendar.Window, error) {
	from := time.Now()
	if meetingsFrom != "" {
		day, err := timeutil.ParseDay(meetingsFrom)
		if err != nil {
			return calendar.Window{}, suggest.InvalidTimeError(meetingsFrom)
		}
		from = day
	}
	to := from
	if meetingsTo != "" {
		day, err := timeutil.ParseDay(meetingsTo)
		if err != nil {
			return calendar.Window{}, suggest.InvalidTimeError(meetingsTo)
		}
		to = day
	}
	w := calendar.DayWindow(from, to)
	if w.To.Before(w.From) {
		return calendar.Window{}, errors.New("window is empty: --to is before --from")
	}
	return w, nil
}

func feedURL(app *App) (string, error) {
	if meetingsURL != "" {
		return meetingsURL, nil
	}
	if app.Config.CalendarURL != "" {
		return app.Config.CalendarURL, nil
	}
	return "", suggest.MissingConfigError("calendar.url", []string{
		"--url https://calendar.example.com/feed.ics",
		"calendar.url in ~/.notework.yaml",
	})
}

func fetchEvents(cmd *cobra.Command, app *App) ([]calendar.Event, calendar.Window, error) {
	url, err := feedURL(app)
	if err != nil {
		return nil, calendar.Window{}, err
	}
	w, err := meetingsWindow()
	if err != nil {
		return nil, calendar.Window{}, err
	}

	app.Render.Status("Fetching calendar...")
	events, err := calendar.NewClient().Download(cmd.Context(), url, w)
	if err != nil {
		return nil, calendar.Window{}, err
	}
	app.Log.Debug("feed returned %d events in a %s window",
		len(events), timeutil.FormatDuration(w.To.AddDate(0, 0, 1).Sub(w.From)))
	return events, w, nil
}

func runMeetingsDownload(cmd *cobra.Command, args []string) error {
	app := GetApp(cmd)

	events, _, err := fetchEvents(cmd, app)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		app.Render.Status("No meetings in the window.")
		return nil
	}

	store := app.Store()
	manifest, err := store.LoadManifest()
	if err != nil {
		return err
	}

	for _, ev := range events {
		m := notes.Meeting{
			ID:           ev.MeetingID,
			Start:        ev.Start,
			End:          ev.End,
			Participants: ev.Participants,
			Description:  ev.Description,
		}
		path := store.NotePath(ev.MeetingID, m.Day(), "txt")

		if meetingsDryRun {
			if _, err := os.Stat(path); err == nil {
				app.Render.Info("Ignoring existing file: %s", path)
			} else {
				app.Render.Info("Would create file: %s", path)
			}
			continue
		}
		if _, err := store.EnsureMeetingDir(ev.MeetingID); err != nil {
			return err
		}
		content, err := notes.Render(m, app.Config.Author, app.Config.Email, time.Now())
		if err != nil {
			return err
		}
		if err := store.Create(path, content); err != nil {
			if errors.Is(err, notes.ErrNoteExists) {
				app.Render.Info("Ignoring existing file: %s", path)
				continue
			}
			return err
		}
		app.Render.Info("Creating file: %s", path)

		manifest.Add(notes.Entry{
			MeetingID:    ev.MeetingID,
			Date:         m.Day().Format(notes.DayLayout),
			Path:         path,
			Start:        ev.Start,
			End:          ev.End,
			Participants: ev.Participants,
			CreatedAt:    time.Now(),
		})
	}

	if meetingsDryRun {
		return nil
	}
	return store.SaveManifest(manifest)
}

func runMeetingsList(cmd *cobra.Command, args []string) error {
	app := GetApp(cmd)

	format, err := app.Format()
	if err != nil {
		return err
	}
	events, _, err := fetchEvents(cmd, app)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		app.Render.NoResults()
		return nil
	}

	switch format {
	case report.FormatJSON:
		enc := json.NewEncoder(app.Render.Out())
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	case report.FormatTable:
		renderEventsTable(app, events)
		return nil
	default:
		for _, ev := range events {
			app.Render.AgendaEntry(
				ev.Start.Format("2006-01-02 15:04"),
				ev.End.Format("15:04"),
				ev.MeetingID,
				ev.Summary,
			)
		}
		return nil
	}
}

func renderEventsTable(app *App, events []calendar.Event) {
	tw := table.NewWriter()
	tw.SetOutputMirror(app.Render.Out())
	tw.SetStyle(table.StyleRounded)
	tw.SetAllowedRowLength(terminalWidth())
	tw.AppendHeader(table.Row{"Day", "Time", "Meeting", "Summary", "Participants"})
	for _, ev := range events {
		tw.AppendRow(table.Row{
			ev.Day().Format("2006-01-02"),
			ev.Start.Format("15:04") + " - " + ev.End.Format("15:04"),
			ev.MeetingID,
			ev.Summary,
			len(ev.Participants),
		})
	}
	tw.Render()
}
