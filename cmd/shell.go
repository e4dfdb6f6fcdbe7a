package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"notework/internal/notes"
	"notework/internal/suggest"
	"notework/internal/todo"
	"notework/pkg/timeutil"
)

const (
	shellPrompt      = "(meet) "
	shellHistoryFile = ".notework_history"
)

// errShellQuit signals the prompt loop to stop. It never reaches the user.
var errShellQuit = errors.New("quit")

type shellCommand struct {
	name    string
	usage   string
	matcher *regexp.Regexp
	run     func(app *App, vars map[string]string) error
	help    string
}

var shellCommands []shellCommand

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open an interactive meeting shell",
	Long: `Open an interactive shell for quick meeting-note chores.

Commands:
  add <meeting> [date]  touch a dated note for the meeting
  agenda [date]         list recorded meetings for a date
  todos [owner]         scan notes for open TODOs
  meetings              list known meeting ids
  help                  show available commands
  quit                  leave the shell (also: exit, Ctrl-D)

The first argument of add completes over existing meeting ids, the second
over today's date. Input lines persist in ~/` + shellHistoryFile + `.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	shellCommands = []shellCommand{
		{
			name:    "add",
			usage:   "add <meeting> [date]",
			matcher: regexp.MustCompile(`^add\s+(?P<meeting>\S+)(?:\s+(?P<date>\S+))?$`),
			run:     shellAdd,
			help:    "touch a dated note for the meeting (date defaults to today)",
		},
		{
			name:    "agenda",
			usage:   "agenda [date]",
			matcher: regexp.MustCompile(`^agenda(?:\s+(?P<date>\S+))?$`),
			run:     shellAgenda,
			help:    "list recorded meetings for the date (default today)",
		},
		{
			name:    "todos",
			usage:   "todos [owner]",
			matcher: regexp.MustCompile(`^todos(?:\s+(?P<owner>\S+))?$`),
			run:     shellTodos,
			help:    "scan the notes tree for open TODOs",
		},
		{
			name:    "meetings",
			usage:   "meetings",
			matcher: regexp.MustCompile(`^meetings$`),
			run:     shellMeetings,
			help:    "list known meeting ids",
		},
		{
			name:    "help",
			usage:   "help",
			matcher: regexp.MustCompile(`^help$`),
			run:     shellHelp,
			help:    "show available commands",
		},
		{
			name:    "quit",
			usage:   "quit",
			matcher: regexp.MustCompile(`^(?:quit|exit)$`),
			run:     shellQuit,
			help:    "leave the shell",
		},
	}
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	app := GetApp(cmd)

	lnr := liner.NewLiner()
	defer lnr.Close()
	lnr.SetCtrlCAborts(true)
	lnr.SetCompleter(shellCompleter(app))

	hfile := shellHistoryPath()
	loadShellHistory(app, lnr, hfile)
	defer saveShellHistory(app, lnr, hfile)

	for {
		inp, err := lnr.Prompt(shellPrompt)
		if err != nil {
			if err != io.EOF && err != liner.ErrPromptAborted {
				app.Render.Error("%s", err)
			}
			break
		}

		inp = strings.TrimSpace(inp)
		if inp == "" {
			continue
		}

		lnr.AppendHistory(inp)
		if err := execShellCmd(app, inp); err != nil {
			if errors.Is(err, errShellQuit) {
				break
			}
			app.Render.Error("%s", err)
		}
	}
	return nil
}

// execShellCmd matches the input against the command table and runs the
// first hit. A line that starts with a known command name but fails its
// matcher is a syntax error rather than an unknown command.
func execShellCmd(app *App, input string) error {
	for _, c := range shellCommands {
		if !c.matcher.MatchString(input) {
			if strings.HasPrefix(input, c.name+" ") || input == c.name {
				return fmt.Errorf("%s: invalid syntax, usage: %s", c.name, c.usage)
			}
			continue
		}
		return c.run(app, shellInputVars(c.matcher, input))
	}

	known := make([]string, 0, len(shellCommands)+1)
	for _, c := range shellCommands {
		known = append(known, c.name)
	}
	known = append(known, "exit")
	return suggest.UnknownCommandError(strings.Fields(input)[0], known)
}

// shellInputVars extracts the named submatch groups of a matched input line.
func shellInputVars(re *regexp.Regexp, input string) map[string]string {
	vars := make(map[string]string)
	match := re.FindStringSubmatch(input)
	for i, name := range re.SubexpNames() {
		if i > 0 && i < len(match) && name != "" {
			vars[name] = match[i]
		}
	}
	return vars
}

// shellDay resolves an optional date argument, defaulting to today.
func shellDay(raw string) (time.Time, error) {
	if raw == "" {
		return timeutil.DayOf(time.Now()), nil
	}
	day, err := timeutil.ParseDay(raw)
	if err != nil {
		return time.Time{}, suggest.InvalidTimeError(raw)
	}
	return day, nil
}

func shellAdd(app *App, vars map[string]string) error {
	day, err := shellDay(vars["date"])
	if err != nil {
		return err
	}

	store := app.Store()
	if _, err := store.EnsureMeetingDir(vars["meeting"]); err != nil {
		return err
	}

	path := store.NotePath(vars["meeting"], day, "md")
	created, err := store.Touch(path)
	if err != nil {
		return err
	}
	if created {
		app.Render.Success("Creating file: %s", path)
	} else {
		app.Render.Info("Meeting file exists: %s", path)
	}
	return nil
}

func shellAgenda(app *App, vars map[string]string) error {
	day, err := shellDay(vars["date"])
	if err != nil {
		return err
	}

	manifest, err := app.Store().LoadManifest()
	if err != nil {
		return err
	}
	entries := manifest.ForDate(day)
	if len(entries) == 0 {
		app.Render.NoResults()
		return nil
	}
	for _, e := range entries {
		app.Render.AgendaEntry(
			e.Start.In(time.Local).Format("15:04"),
			e.End.In(time.Local).Format("15:04"),
			e.MeetingID,
			"",
		)
	}
	return nil
}

func shellTodos(app *App, vars map[string]string) error {
	res, err := todo.Scan(app.Config.NotesDir, todo.Filter{Owner: vars["owner"]})
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		app.Render.Warning("%s", w)
	}
	if len(res.Items) == 0 {
		app.Render.Status("No TODOs matched.")
		return nil
	}
	renderTodoItems(app.Render, res.Items)
	return nil
}

func shellMeetings(app *App, _ map[string]string) error {
	ids, err := app.Store().Meetings()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		app.Render.NoResults()
		return nil
	}
	app.Render.List(ids)
	return nil
}

func shellHelp(app *App, _ map[string]string) error {
	for _, c := range shellCommands {
		app.Render.Info("  %-22s %s", c.usage, c.help)
	}
	return nil
}

func shellQuit(_ *App, _ map[string]string) error {
	return errShellQuit
}

// shellCompleter completes command names, then meeting ids for add, then
// today's date for the date arguments.
func shellCompleter(app *App) liner.Completer {
	return func(line string) []string {
		var out []string
		fields := strings.Split(line, " ")
		switch len(fields) {
		case 1:
			for _, c := range shellCommands {
				if strings.HasPrefix(c.name, fields[0]) {
					out = append(out, c.name+" ")
				}
			}
		case 2:
			switch fields[0] {
			case "add":
				ids, err := app.Store().Meetings()
				if err != nil {
					return nil
				}
				for _, id := range ids {
					if strings.HasPrefix(id, fields[1]) {
						out = append(out, "add "+id+" ")
					}
				}
			case "agenda":
				today := time.Now().Format(notes.DayLayout)
				if strings.HasPrefix(today, fields[1]) {
					out = append(out, "agenda "+today)
				}
			}
		case 3:
			if fields[0] == "add" {
				today := time.Now().Format(notes.DayLayout)
				if strings.HasPrefix(today, fields[2]) {
					out = append(out, "add "+fields[1]+" "+today)
				}
			}
		}
		return out
	}
}

func shellHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), shellHistoryFile)
	}
	return filepath.Join(home, shellHistoryFile)
}

func loadShellHistory(app *App, lnr *liner.State, path string) {
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0640)
	if err != nil {
		app.Render.Warning("%s", err)
		return
	}
	defer f.Close()
	if _, err := lnr.ReadHistory(f); err != nil {
		app.Render.Warning("read history: %s", err)
	}
}

func saveShellHistory(app *App, lnr *liner.State, path string) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		app.Render.Warning("%s", err)
		return
	}
	defer f.Close()
	if _, err := lnr.WriteHistory(f); err != nil {
		app.Render.Warning("write history: %s", err)
	}
}
