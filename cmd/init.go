package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize notework configuration",
	Long: `Create default configuration and history files.

Creates platform-appropriate config files:
  Linux/macOS: ~/.notework.yaml, ~/.notework_history
  Windows:     %USERPROFILE%\.notework.yaml, %USERPROFILE%\.notework_history

Examples:
  # Create default config (won't overwrite existing)
  notework init

  # Force overwrite existing config
  notework init --force`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(home, ".notework.yaml")
	historyPath := filepath.Join(home, shellHistoryFile)

	// Generate OS-aware default config
	defaultConfig := generateDefaultConfig(home)

	// Create config file
	if err := createFileIfNotExists(configPath, defaultConfig, initForce); err != nil {
		return err
	}

	// Create empty shell history file
	if err := createFileIfNotExists(historyPath, "", initForce); err != nil {
		return err
	}

	fmt.Println("Initialized notework configuration:")
	fmt.Printf("  Config:  %s\n", configPath)
	fmt.Printf("  History: %s\n", historyPath)
	fmt.Printf("\nEdit %s to customize your settings.\n", configPath)

	return nil
}

func generateDefaultConfig(home string) string {
	// Use OS-appropriate path separators in examples
	var exampleJournal, exampleNotesDir string

	if runtime.GOOS == "windows" {
		exampleJournal = filepath.Join(home, "notes", "journal.md")
		exampleNotesDir = filepath.Join(home, "notes", "meetings")
	} else {
		exampleJournal = "~/notes/journal.md"
		exampleNotesDir = "~/notes/meetings"
	}

	return fmt.Sprintf(`# notework configuration

# Journal scanned by the timesheet command
# journal: %s

# Meeting notes tree used by todos, meetings and the shell
# notes_dir: %s

# Identity stamped into generated meeting notes
# author: Ada Lovelace
# email: ada@example.com

# ICS feed the meetings command downloads
# calendar:
#   url: https://calendar.example.com/me.ics

# Tags the timesheet scanner matches on journal stamp lines
# timesheet:
#   start_tag: work-start
#   end_tag: work-end

# Billing applied to timesheet reports
billing:
  rate: 150.00
  currency: "$"
  locale: en-US

# Default output format: plain, table, json
output: plain

# Color: auto, always, never
color: auto
`, exampleJournal, exampleNotesDir)
}

func createFileIfNotExists(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("  %s already exists (use --force to overwrite)\n", path)
			return nil
		}
	}

	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("  Created %s\n", path)
	return nil
}
