// Package progress provides progress indication for long-running steps.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/create-whop/internal/ui/styles"
)

// Status is the outcome a spinner stops with.
type Status int

const (
	// StatusNone clears the spinner line without printing a result.
	StatusNone Status = iota
	StatusSuccess
	StatusFailure
	StatusSkipped
)

// messageUpdate is sent to update the spinner message
type messageUpdate string

// Spinner wraps a Bubbletea spinner for simple non-interactive use.
// Without animation (non-TTY output) it prints plain status lines.
type Spinner struct {
	out     io.Writer
	lines   io.Writer // out, downsampled to profile
	styles  styles.Styles
	profile colorprofile.Profile
	animate bool

	mu        sync.Mutex
	program   *tea.Program
	msgChan   chan string
	done      chan struct{}
	isRunning bool
	lastMsg   string
}

// spinnerModel is the internal Bubbletea model
type spinnerModel struct {
	spinner spinner.Model
	message string
	msgChan chan string
	quit    bool
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForMessage())
}

func (m spinnerModel) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.msgChan
		if !ok {
			return tea.Quit()
		}
		return messageUpdate(msg)
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quit {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case messageUpdate:
		m.message = string(msg)
		return m, m.waitForMessage()
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() tea.View {
	if m.quit || m.message == "" {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), m.message))
}

// NewSpinner creates a spinner writing to out. When animate is false the
// spinner only prints its start and stop messages as lines.
func NewSpinner(out io.Writer, s styles.Styles, profile colorprofile.Profile, animate bool) *Spinner {
	return &Spinner{
		out:     out,
		lines:   &colorprofile.Writer{Forward: out, Profile: profile},
		styles:  s,
		profile: profile,
		animate: animate,
	}
}

// Start begins the spinner animation with message.
// Starting a running spinner only updates its message.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastMsg = message
	if s.isRunning {
		s.sendLocked(message)
		return
	}

	if !s.animate {
		s.isRunning = true
		fmt.Fprintf(s.lines, "%s %s\n", s.styles.Symbols.Step, message)
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.styles.Primary

	s.msgChan = make(chan string, 10)
	s.done = make(chan struct{})

	model := spinnerModel{
		spinner: sp,
		message: message,
		msgChan: s.msgChan,
	}

	s.program = tea.NewProgram(model,
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
		tea.WithOutput(s.out),
		tea.WithColorProfile(s.profile),
	)
	s.isRunning = true

	done := s.done
	program := s.program
	go func() {
		_, _ = program.Run()
		close(done)
	}()
}

// sendLocked delivers a message update without blocking the caller.
// Updates are dropped when the channel is full.
func (s *Spinner) sendLocked(message string) {
	if s.msgChan == nil {
		return
	}
	select {
	case s.msgChan <- message:
	default:
	}
}

// Stop stops the spinner, clears its line, and prints message with the
// symbol for status. StatusNone with an empty message prints nothing.
func (s *Spinner) Stop(status Status, message string) {
	s.mu.Lock()
	wasRunning := s.isRunning
	s.isRunning = false
	program, done := s.program, s.done
	if wasRunning && s.animate {
		close(s.msgChan)
		s.msgChan = nil
	}
	s.program = nil
	s.mu.Unlock()

	if wasRunning && s.animate && program != nil {
		program.Quit()
		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
		}
		fmt.Fprint(s.out, "\r\033[K")
	}

	if line := s.statusLine(status, message); line != "" {
		fmt.Fprintln(s.lines, line)
	}
}

func (s *Spinner) statusLine(status Status, message string) string {
	if message == "" {
		return ""
	}
	sym := s.styles.Symbols
	switch status {
	case StatusSuccess:
		return s.styles.Success.Render(sym.Success) + " " + message
	case StatusFailure:
		return s.styles.Error.Render(sym.Failure) + " " + message
	case StatusSkipped:
		return s.styles.Muted.Render(sym.Skipped) + " " + message
	default:
		return sym.Step + " " + message
	}
}
