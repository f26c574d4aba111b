// Package styles provides lipgloss styles for create-whop output.
//
// Styles are built from a [Theme] value and passed to the components
// that render with them; there are no package-level style variables.
package styles

import (
	"os"
	"strings"

	"charm.land/lipgloss/v2"
)

// Symbols holds the status symbols printed by spinners and notes.
type Symbols struct {
	Success string
	Failure string
	Skipped string
	Step    string
}

// UnicodeSymbols is the default symbol set.
var UnicodeSymbols = Symbols{
	Success: "✓",
	Failure: "✗",
	Skipped: "○",
	Step:    "◇",
}

// ASCIISymbols is used when CREATE_WHOP_ASCII=1.
var ASCIISymbols = Symbols{
	Success: "[ok]",
	Failure: "[fail]",
	Skipped: "[skip]",
	Step:    "*",
}

// Styles is the rendered style set for a theme.
type Styles struct {
	Theme   Theme
	Symbols Symbols

	Primary lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Normal  lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style

	// WarningLabel renders the "Warning:" prefix of dangerous prompts.
	WarningLabel lipgloss.Style
	// NoteTitle and NoteBox render the "Next steps" note.
	NoteTitle lipgloss.Style
	NoteBox   lipgloss.Style
}

// New builds the style set for t.
func New(t Theme) Styles {
	symbols := UnicodeSymbols
	if os.Getenv("CREATE_WHOP_ASCII") == "1" {
		symbols = ASCIISymbols
	}

	return Styles{
		Theme:   t,
		Symbols: symbols,

		Primary: lipgloss.NewStyle().Foreground(t.Primary),
		Accent:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Normal:  lipgloss.NewStyle().Foreground(t.Normal),
		Info:    lipgloss.NewStyle().Foreground(t.Info).Italic(true),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),

		WarningLabel: lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		NoteTitle:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		NoteBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// Warn prefixes message with the styled "Warning:" label.
func (s Styles) Warn(message string) string {
	return s.WarningLabel.Render("Warning:") + " " + message
}

// Note renders body inside a rounded box headed by title.
func (s Styles) Note(title, body string) string {
	body = strings.TrimRight(body, "\n")
	var sb strings.Builder
	sb.WriteString(s.Symbols.Step)
	sb.WriteString(" ")
	sb.WriteString(s.NoteTitle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(s.NoteBox.Render(body))
	sb.WriteString("\n")
	return sb.String()
}
