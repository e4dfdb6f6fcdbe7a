package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notework/internal/logging"
	"notework/internal/notes"
	"notework/internal/report"
	"notework/internal/ui"
)

// appContextKey is the context key for the App instance.
type appContextKey struct{}

// Config holds the resolved configuration for one invocation.
type Config struct {
	Journal      string
	NotesDir     string
	Author       string
	Email        string
	CalendarURL  string
	StartTag     string
	EndTag       string
	Rate         float64
	Currency     string
	Locale       string
	OutputFormat string
	Verbose      bool
	Quiet        bool
}

// App holds the application dependencies that can be injected for testing.
type App struct {
	Config Config
	Render *ui.Renderer
	Log    logging.Logger
}

// NewApp creates a new App with configuration resolved from viper.
func NewApp() *App {
	cfg := Config{
		Journal:      expandPath(viper.GetString("journal")),
		NotesDir:     expandPath(viper.GetString("notes_dir")),
		Author:       viper.GetString("author"),
		Email:        viper.GetString("email"),
		CalendarURL:  viper.GetString("calendar.url"),
		StartTag:     viper.GetString("timesheet.start_tag"),
		EndTag:       viper.GetString("timesheet.end_tag"),
		Rate:         viper.GetFloat64("billing.rate"),
		Currency:     viper.GetString("billing.currency"),
		Locale:       viper.GetString("billing.locale"),
		OutputFormat: getOutputFormat(),
		Verbose:      IsVerbose(),
		Quiet:        quiet,
	}

	return &App{
		Config: cfg,
		Render: render,
		Log:    logging.Default(),
	}
}

// NewAppWithConfig creates a new App with the given configuration.
// This is primarily used for testing.
func NewAppWithConfig(cfg Config, renderer *ui.Renderer) *App {
	return &App{
		Config: cfg,
		Render: renderer,
		Log:    logging.NopLogger{},
	}
}

// GetApp retrieves the App from the command context.
// If no App is set, it creates a new default one.
func GetApp(cmd *cobra.Command) *App {
	if app, ok := cmd.Context().Value(appContextKey{}).(*App); ok {
		return app
	}
	// Fallback: create default app
	return NewApp()
}

// SetApp stores the App in the context for a command.
func SetApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appContextKey{}, app)
}

// Store returns the notes store rooted at the configured notes dir.
func (a *App) Store() *notes.Store {
	return notes.NewStore(a.Config.NotesDir)
}

// Reporter returns an invoice renderer with the configured currency and the
// current terminal width.
func (a *App) Reporter() report.Renderer {
	return report.Renderer{
		Currency: a.Config.Currency,
		Locale:   a.Config.Locale,
		Width:    terminalWidth(),
	}
}

// Format resolves the output format from flag or config.
func (a *App) Format() (report.Format, error) {
	return report.ParseFormat(a.Config.OutputFormat)
}
