package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"notework/internal/journal"
	"notework/internal/report"
	"notework/internal/suggest"
	"notework/pkg/timeutil"
)

var (
	timesheetStartTag string
	timesheetEndTag   string
	timesheetFrom     string
	timesheetTo       string
	timesheetRate     float64
	timesheetDetailed bool
)

var timesheetCmd = &cobra.Command{
	Use:   "timesheet [journal]",
	Short: "Extract tagged intervals from the journal and print an invoice",
	Long: `Scan the journal for timestamp lines carrying the start and end tags,
pair them into intervals, and print an invoice.

A timestamp line starts with "# " followed by a date, an optional time, and
any number of tags:

  # 2020-01-01 09:00 work-start
  ...notes...
  # 2020-01-01 17:00 work-end

A malformed journal (an end tag with no open interval, a nested start tag,
an unterminated interval, a negative duration) aborts with the offending
line number and no partial output.

Examples:
  # The whole journal
  notework timesheet

  # One calendar week, with notes
  notework timesheet --from 2020-01-06 --to 2020-01-10 --detailed

  # The last seven days, as a table
  notework timesheet --from 1w -o table`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTimesheet,
}

func init() {
	rootCmd.AddCommand(timesheetCmd)

	timesheetCmd.Flags().StringVar(&timesheetStartTag, "start-tag", "", "Tag that opens an interval (default from config)")
	timesheetCmd.Flags().StringVar(&timesheetEndTag, "end-tag", "", "Tag that closes an interval (default from config)")
	timesheetCmd.Flags().StringVar(&timesheetFrom, "from", "", "Keep intervals ending on or after this day (loose or relative syntax)")
	timesheetCmd.Flags().StringVar(&timesheetTo, "to", "", "Keep intervals ending on or before this day")
	timesheetCmd.Flags().Float64Var(&timesheetRate, "rate", 0, "Hourly billing rate (default from config)")
	timesheetCmd.Flags().BoolVar(&timesheetDetailed, "detailed", false, "Print interval notes below the summary")
}

func runTimesheet(cmd *cobra.Command, args []string) error {
	app := GetApp(cmd)

	journalPath := app.Config.Journal
	if len(args) == 1 {
		journalPath = expandPath(args[0])
	}

	startTag := timesheetStartTag
	if startTag == "" {
		startTag = app.Config.StartTag
	}
	if startTag == "" {
		return suggest.MissingConfigError("timesheet.start_tag", []string{
			"--start-tag work-start",
			"timesheet.start_tag in ~/.notework.yaml",
		})
	}
	endTag := timesheetEndTag
	if endTag == "" {
		endTag = app.Config.EndTag
	}
	if endTag == "" {
		return suggest.MissingConfigError("timesheet.end_tag", []string{
			"--end-tag work-end",
			"timesheet.end_tag in ~/.notework.yaml",
		})
	}

	var from, to time.Time
	var err error
	if timesheetFrom != "" {
		if from, err = timeutil.ParseDay(timesheetFrom); err != nil {
			return suggest.InvalidTimeError(timesheetFrom)
		}
	}
	if timesheetTo != "" {
		if to, err = timeutil.ParseDay(timesheetTo); err != nil {
			return suggest.InvalidTimeError(timesheetTo)
		}
	}

	rate := timesheetRate
	if rate == 0 {
		rate = app.Config.Rate
	}
	if rate == 0 {
		rate = report.DefaultRate
	}

	format, err := app.Format()
	if err != nil {
		return err
	}

	app.Log.Debug("scanning %s for %s/%s intervals", journalPath, startTag, endTag)

	lines, err := journal.LoadFile(journalPath)
	if err != nil {
		return err
	}
	intervals, err := journal.Extract(lines, startTag, endTag)
	if err != nil {
		return fmt.Errorf("scan %s: %w", journalPath, err)
	}
	app.Log.Debug("found %d intervals", len(intervals))

	inv, err := report.Build(report.Filter(intervals, from, to), rate)
	if err != nil {
		return err
	}
	return app.Reporter().Render(app.Render.Out(), inv, format, timesheetDetailed)
}
