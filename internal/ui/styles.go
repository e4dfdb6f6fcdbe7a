package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - using ANSI 256 colors for broad terminal support
var (
	ColorCyan    = lipgloss.Color("6")
	ColorYellow  = lipgloss.Color("3")
	ColorRed     = lipgloss.Color("1")
	ColorGreen   = lipgloss.Color("2")
	ColorMagenta = lipgloss.Color("5")
	ColorGray    = lipgloss.Color("8")
	ColorBlack   = lipgloss.Color("0")
)

// Text styles
var (
	// Meeting id headings in todo listings and the shell
	MeetingStyle = lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true).Underline(true)

	// Note filenames under a meeting heading
	NoteStyle = lipgloss.NewStyle().Foreground(ColorMagenta)

	// Numbered indexes in todo listings
	IndexStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	// TODO(...) spans inside paragraph lines
	TodoStyle = lipgloss.NewStyle().Foreground(ColorGreen)

	// Times in agenda listings
	TimeStyle = lipgloss.NewStyle().Foreground(ColorCyan)

	// Status messages ("Fetching calendar...")
	StatusStyle = lipgloss.NewStyle().Foreground(ColorGray).Italic(true)

	// Error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	// Warning messages
	WarningStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	// Success messages
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen)

	// Muted/secondary text
	MutedStyle = lipgloss.NewStyle().Foreground(ColorGray)

	// Labels (field names, section titles)
	LabelStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// Highlighted/matched text
	HighlightStyle = lipgloss.NewStyle().
			Background(ColorYellow).
			Foreground(ColorBlack).
			Bold(true)
)

// Section titles
var SectionTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorCyan).
	MarginBottom(1)
