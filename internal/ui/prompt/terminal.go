package prompt

import (
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/ui/styles"
)

// Terminal runs prompts as bubbletea programs on a terminal.
type Terminal struct {
	Styles  styles.Styles
	Profile colorprofile.Profile
	In      io.Reader
	Out     io.Writer
}

// NewTerminal creates a Terminal reading stdin and rendering to stderr,
// which keeps stdout free for primary output.
func NewTerminal(s styles.Styles) *Terminal {
	return &Terminal{
		Styles:  s,
		Profile: colorprofile.Detect(os.Stderr, os.Environ()),
		In:      os.Stdin,
		Out:     os.Stderr,
	}
}

func (t *Terminal) program(model tea.Model) *tea.Program {
	return tea.NewProgram(model,
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
		tea.WithColorProfile(t.Profile),
	)
}

// Interactive reports whether stdin and stderr are both terminals.
func Interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// AskText shows a text prompt and returns the value.
// Cancellation is reported as hookerr.ErrCancelled.
func (t *Terminal) AskText(message, placeholder string, validate ValidateFunc) (string, error) {
	res, err := t.TextInput(message, placeholder, validate)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", hookerr.ErrCancelled
	}
	return res.Value, nil
}

// AskConfirm shows a yes/no prompt.
// Cancellation is reported as hookerr.ErrCancelled.
func (t *Terminal) AskConfirm(message string, defaultValue bool) (bool, error) {
	res, err := t.Confirm(message, defaultValue)
	if err != nil {
		return false, err
	}
	if res.Cancelled {
		return false, hookerr.ErrCancelled
	}
	return res.Confirmed, nil
}

// AskSelect shows a selection prompt and returns the chosen option.
// Cancellation is reported as hookerr.ErrCancelled.
func (t *Terminal) AskSelect(message string, options []string) (string, error) {
	res, err := t.Select(message, options)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", hookerr.ErrCancelled
	}
	return res.Value, nil
}
