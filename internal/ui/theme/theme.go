package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — restrained military tones.
var (
	Primary = lipgloss.Color("#DC2626") // Crimson
	Accent  = lipgloss.Color("#EAB308") // Gold
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Skill states
var (
	Unlocked = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Available = lipgloss.NewStyle().
			Foreground(Accent)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)
)
