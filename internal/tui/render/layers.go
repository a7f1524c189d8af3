package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layers"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// RenderColumnInputLayer renders the create or rename dialog
func RenderColumnInputLayer(m *tui.Model) *lipgloss.Layer {
	box := components.CreateInputBoxStyle
	if m.UiState.Mode() == state.RenameColumnMode {
		box = components.EditInputBoxStyle
	}

	content := box.Width(50).Render(fmt.Sprintf("%s\n\n%s\n\n%s",
		components.TitleStyle.Render(m.InputState.Prompt),
		m.InputState.View(),
		hint("Enter: save  Esc: cancel"),
	))
	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

// RenderDeleteColumnLayer asks for confirmation before deleting a column
func RenderDeleteColumnLayer(m *tui.Model) *lipgloss.Layer {
	col := m.CurrentColumn()
	if col == nil {
		return nil
	}

	message := fmt.Sprintf("Delete column %q?", col.Title)
	if n := m.InputState.DeleteColumnTaskCount; n > 0 {
		message += "\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.WarningFg)).
			Render(fmt.Sprintf("It still holds %d task(s) and will not be deleted.", n))
	}

	content := components.DeleteConfirmBoxStyle.Width(50).Render(message + "\n\n" + hint("[y]es  [n]o"))
	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

// RenderHelpLayer lists the key bindings
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Width(12)
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keys") + "\n\n")
	for _, binding := range m.Keys.HelpBindings() {
		h := binding.Help()
		b.WriteString(keyStyle.Render(h.Key) + h.Desc + "\n")
	}
	b.WriteString("\n" + hint("Esc: close"))

	return layers.CreateCenteredLayer(components.HelpBoxStyle.Render(b.String()), m.UiState.Width(), m.UiState.Height())
}

// RenderTaskViewLayer shows the task open in TaskViewMode
func RenderTaskViewLayer(m *tui.Model) *lipgloss.Layer {
	if m.ViewedTask == nil {
		return nil
	}
	t := m.ViewedTask
	contentWidth := components.TaskViewContentWidth(m.UiState.Width())

	status := string(t.Status)
	for _, c := range m.Columns() {
		if c.ID == t.Status {
			status = c.Title
		}
	}

	meta := hint("id " + t.ID.String() + " · " + status)
	if t.HasLink() {
		dep := t.LinkedTaskID.String()
		if linked, ok := m.Board.Task(*t.LinkedTaskID); ok {
			dep = fmt.Sprintf("%q", linked.Title)
		}
		meta += "\n" + components.LinkStyle.Render("⛓ depends on "+dep)
	}

	footer := ""
	if !m.TaskView.AtTop() || !m.TaskView.AtBottom() {
		footer = "\n" + hint(fmt.Sprintf("j/k: scroll  %3.f%%", m.TaskView.ScrollPercent()*100))
	}

	title := components.TitleStyle.Render(wordwrap.String(t.Title, contentWidth))
	content := components.TaskViewBoxStyle.Width(components.TaskViewWidth(m.UiState.Width())).Render(
		title + "\n" + meta + "\n\n" + m.TaskView.View() + footer,
	)
	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

func hint(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Italic(true).Render(s)
}
