package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"notework/internal/logging"
	"notework/internal/ui"
)

var (
	cfgFile      string
	outputFormat string
	verbose      bool
	quiet        bool
	noColor      bool

	// render is the global renderer for all output
	render *ui.Renderer
)

var rootCmd = &cobra.Command{
	Use:   "notework",
	Short: "Journals, meeting notes, and the invoices they add up to",
	Long: `notework keeps a plain-text working life in order: a journal whose
tagged timestamp lines add up to billable intervals, and a meeting notes
tree generated from your calendar and scanned for TODOs.

Journal timestamp lines:
  # 2020-01-01 09:00 work-start
  # 2020-01-01 17:00 work-end

Notes tree:
  <notes-dir>/<meeting-id>/<YYYY-MM-DD>.txt

Configuration:
  Create ~/.notework.yaml:

    journal: ~/notes/journal.md
    notes_dir: ~/notes/meetings
    author: Devon Proctor
    email: devon@example.com
    calendar:
      url: https://calendar.example.com/feed.ics
    timesheet:
      start_tag: work-start
      end_tag: work-end
    billing:
      rate: 150.00
      currency: $
      locale: en-US

Examples:
  # Invoice the past week
  notework timesheet --from 1w --detailed

  # Everything alice still owes
  notework todos --owner alice

  # Create today's note files from the calendar
  notework meetings download

  # Take notes interactively
  notework shell`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	cobra.OnInitialize(initConfig, initRenderer)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.notework.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: plain, table, json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress status messages")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Bind flags to viper
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// shouldUseColor resolves the color decision: the --no-color flag wins, then
// the "color" config value, then the NO_COLOR convention, then whether
// stdout is a terminal.
func shouldUseColor() bool {
	if noColor {
		return false
	}
	switch strings.ToLower(viper.GetString("color")) {
	case "always", "on", "true":
		return true
	case "never", "off", "false":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// initRenderer initializes the global renderer with current settings.
func initRenderer() {
	render = ui.NewRendererWithOptions(
		ui.WithNoColor(!shouldUseColor()),
		ui.WithQuiet(quiet),
	)
	logging.Default().SetLevel(logging.FromVerbosity(IsVerbose(), quiet))
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	return verbose || viper.GetBool("verbose")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			// Also check ~/.notework/ directory
			viper.AddConfigPath(filepath.Join(home, ".notework"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".notework")
		viper.SetConfigType("yaml")
	}

	// Environment variables: NOTEWORK_BILLING_RATE overrides billing.rate
	viper.SetEnvPrefix("NOTEWORK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("journal", "~/notes/journal.md")
	viper.SetDefault("notes_dir", "~/notes/meetings")
	viper.SetDefault("output", "plain")
	viper.SetDefault("color", "auto")
	viper.SetDefault("billing.rate", 150.00)
	viper.SetDefault("billing.currency", "$")
	viper.SetDefault("billing.locale", "en-US")

	// Read config file (ignore if not found, warn on other errors)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file: %v\n", err)
		}
	}
}

// getOutputFormat returns the output format from flags or config.
func getOutputFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	return viper.GetString("output")
}

// expandPath resolves a leading ~ against the home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// terminalWidth returns the usable output width: the terminal size when
// stdout is a terminal, then COLUMNS, then 80.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
