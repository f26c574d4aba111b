package prompt

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/create-whop/internal/ui/styles"
)

// ValidateFunc returns a non-empty message when value is not acceptable.
type ValidateFunc func(value string) string

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	validate  ValidateFunc
	styles    styles.Styles
	errMsg    string
	done      bool
	cancelled bool
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if m.validate != nil {
				if errMsg := m.validate(m.textInput.Value()); errMsg != "" {
					m.errMsg = errMsg
					return m, nil
				}
			}
			m.errMsg = ""
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		m.errMsg = ""
	}
	return m, cmd
}

func (m textInputModel) View() tea.View {
	title := m.styles.Symbols.Step + " " + m.prompt
	if m.done {
		if m.cancelled {
			return tea.NewView("")
		}
		return tea.NewView(fmt.Sprintf("%s\n  %s\n", title, m.styles.Muted.Render(m.textInput.Value())))
	}
	view := fmt.Sprintf("%s\n  %s", title, m.textInput.View())
	if m.errMsg != "" {
		view += "\n  " + m.styles.Error.Render(m.errMsg)
	}
	return tea.NewView(view)
}

// TextInput shows a text input prompt and returns the user's input.
// Enter is rejected while validate reports a message.
func (t *Terminal) TextInput(message, placeholder string, validate ValidateFunc) (TextInputResult, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 214 // npm package name limit
	ti.SetWidth(50)

	model := textInputModel{
		textInput: ti,
		prompt:    message,
		validate:  validate,
		styles:    t.Styles,
	}
	finalModel, err := t.program(model).Run()
	if err != nil {
		return TextInputResult{}, err
	}
	m := finalModel.(textInputModel)
	return TextInputResult{
		Value:     m.textInput.Value(),
		Cancelled: m.cancelled,
	}, nil
}
