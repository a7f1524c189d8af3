package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// MaxInputLength caps what can be typed into a dialog
const MaxInputLength = 100

// InputState is the single-line text input used by the column dialogs
type InputState struct {
	Prompt string

	// DeleteColumnTaskCount is shown in the delete confirmation
	DeleteColumnTaskCount int

	input   textinput.Model
	initial string
}

// NewInputState creates an empty, unfocused input
func NewInputState() *InputState {
	ti := textinput.New()
	ti.CharLimit = MaxInputLength
	ti.Prompt = "> "
	return &InputState{input: ti}
}

// Start focuses the input with an initial value
func (s *InputState) Start(prompt, value string) tea.Cmd {
	s.Prompt = prompt
	s.initial = value
	s.input.SetValue(value)
	s.input.CursorEnd()
	return s.input.Focus()
}

// Update feeds a key to the underlying input
func (s *InputState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Clear blurs the input and forgets its contents
func (s *InputState) Clear() {
	s.input.Blur()
	s.input.Reset()
	s.Prompt = ""
	s.initial = ""
	s.DeleteColumnTaskCount = 0
}

// Value is the raw text typed so far
func (s *InputState) Value() string {
	return s.input.Value()
}

// TrimmedValue is the text without surrounding whitespace
func (s *InputState) TrimmedValue() string {
	return strings.TrimSpace(s.input.Value())
}

// IsEmpty reports whether only whitespace has been typed
func (s *InputState) IsEmpty() bool {
	return s.TrimmedValue() == ""
}

// Changed reports whether the text differs from what Start was given
func (s *InputState) Changed() bool {
	return s.TrimmedValue() != strings.TrimSpace(s.initial)
}

// View renders the input line
func (s *InputState) View() string {
	return s.input.View()
}
