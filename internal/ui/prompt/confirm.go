package prompt

import (
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/create-whop/internal/ui/styles"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt       string
	defaultValue bool
	styles       styles.Styles
	confirmed    bool
	done         bool
	cancelled    bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			m.confirmed = m.defaultValue
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() tea.View {
	if m.done {
		if m.cancelled {
			return tea.NewView("")
		}
		answer := "No"
		if m.confirmed {
			answer = "Yes"
		}
		return tea.NewView(m.styles.Symbols.Step + " " + m.prompt + " " + m.styles.Muted.Render(answer) + "\n")
	}
	return tea.NewView(m.styles.Symbols.Step + " " + m.prompt + " " + m.styles.Muted.Render(m.hint()) + " ")
}

func (m confirmModel) hint() string {
	if m.defaultValue {
		return "[Y/n]"
	}
	return "[y/N]"
}

// Confirm shows a yes/no prompt and returns the user's choice.
// Pressing enter without input picks defaultValue.
func (t *Terminal) Confirm(message string, defaultValue bool) (ConfirmResult, error) {
	model := confirmModel{prompt: message, defaultValue: defaultValue, styles: t.Styles}
	finalModel, err := t.program(model).Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := finalModel.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}
