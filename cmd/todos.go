package cmd

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"notework/internal/report"
	"notework/internal/todo"
	"notework/internal/ui"
)

var (
	todosOwner     string
	todosNotOwner  string
	todosMeeting   string
	todosOverdue   bool
	todosHighlight string
)

var todosCmd = &cobra.Command{
	Use:   "todos [notes-dir]",
	Short: "List TODO paragraphs from the meeting notes",
	Long: `Walk the notes tree and print every paragraph carrying a TODO(...)
marker, grouped by meeting and note. Marker items name owners; an item
shaped like a date (2020-01-02) sets the due date.

Examples:
  # Everything
  notework todos

  # What alice owns, and what everyone but alice owns
  notework todos --owner alice
  notework todos --not-owner alice

  # One meeting series, machine-readable
  notework todos --meeting '^standup' -o json

  # Highlight a keyword in the matching paragraphs
  notework todos --highlight deploy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTodos,
}

func init() {
	rootCmd.AddCommand(todosCmd)

	todosCmd.Flags().StringVar(&todosOwner, "owner", "", "Only TODOs belonging to this owner")
	todosCmd.Flags().StringVar(&todosNotOwner, "not-owner", "", "Only TODOs not belonging to this owner")
	todosCmd.Flags().StringVarP(&todosMeeting, "meeting", "m", "", "Regular expression on meeting id")
	todosCmd.Flags().BoolVar(&todosOverdue, "overdue", false, "Only TODOs past their due date")
	todosCmd.Flags().StringVar(&todosHighlight, "highlight", "", "Pattern to highlight in paragraph output")
}

func runTodos(cmd *cobra.Command, args []string) error {
	app := GetApp(cmd)

	notesDir := app.Config.NotesDir
	if len(args) == 1 {
		notesDir = expandPath(args[0])
	}

	filter := todo.Filter{
		Owner:    todosOwner,
		NotOwner: todosNotOwner,
		Overdue:  todosOverdue,
	}
	if todosMeeting != "" {
		re, err := regexp.Compile(todosMeeting)
		if err != nil {
			return fmt.Errorf("bad --meeting pattern: %w", err)
		}
		filter.Meeting = re
	}

	format, err := app.Format()
	if err != nil {
		return err
	}

	res, err := todo.Scan(notesDir, filter)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		app.Render.Warning("%v", w)
	}

	if format == report.FormatJSON {
		enc := json.NewEncoder(app.Render.Out())
		enc.SetIndent("", "  ")
		return enc.Encode(res.Items)
	}

	if len(res.Items) == 0 {
		app.Render.Status("No TODOs matched.")
		return nil
	}

	out := app.Render
	if todosHighlight != "" {
		out = ui.NewRendererWithOptions(
			ui.WithOutput(app.Render.Out()),
			ui.WithError(app.Render.Err()),
			ui.WithNoColor(!shouldUseColor()),
			ui.WithQuiet(quiet),
			ui.WithHighlight(todosHighlight),
		)
	}
	renderTodoItems(out, res.Items)
	return nil
}

// renderTodoItems prints items grouped by meeting, then note, numbering the
// paragraphs within each note. The shell's todos command reuses it.
func renderTodoItems(r *ui.Renderer, items []todo.Item) {
	var lastMeeting, lastNote string
	index := 0
	for _, item := range items {
		if item.Meeting != lastMeeting {
			r.MeetingHeading(item.Meeting)
			lastMeeting = item.Meeting
			lastNote = ""
		}
		if item.Note != lastNote {
			r.NoteHeading(item.Note)
			lastNote = item.Note
			index = 0
		}
		index++
		r.TodoParagraph(index, item.Lines)
	}
}
