package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/config"
)

// KeyMap holds the board's key bindings, built from the configured key mappings.
// Arrow keys always work alongside the configured navigation keys.
type KeyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding

	GrabTask   key.Binding
	GrabColumn key.Binding
	Drop       key.Binding
	Cancel     key.Binding

	CreateColumn    key.Binding
	RenameColumn    key.Binding
	RecolorColumn   key.Binding
	DeleteColumn    key.Binding
	MoveColumnLeft  key.Binding
	MoveColumnRight key.Binding

	ViewTask key.Binding
	Refresh  key.Binding
	ShowHelp key.Binding
	Quit     key.Binding

	// Close leaves the help screen and the task view
	Close key.Binding
}

func bind(desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), desc))
}

// NewKeyMap turns configured key names into bindings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		PrevColumn: bind("previous column", km.PrevColumn, "left"),
		NextColumn: bind("next column", km.NextColumn, "right"),
		PrevTask:   bind("previous task", km.PrevTask, "up"),
		NextTask:   bind("next task", km.NextTask, "down"),

		GrabTask:   bind("pick up task", km.GrabTask),
		GrabColumn: bind("pick up column", km.GrabColumn),
		Drop:       bind("drop", km.Drop),
		Cancel:     bind("cancel drag", km.Cancel),

		CreateColumn:    bind("new column", km.CreateColumn),
		RenameColumn:    bind("rename column", km.RenameColumn),
		RecolorColumn:   bind("next column color", km.RecolorColumn),
		DeleteColumn:    bind("delete column", km.DeleteColumn),
		MoveColumnLeft:  bind("move column left", km.MoveColumnLeft),
		MoveColumnRight: bind("move column right", km.MoveColumnRight),

		ViewTask: bind("view task", km.ViewTask),
		Refresh:  bind("reload board", km.Refresh),
		ShowHelp: bind("help", km.ShowHelp),
		Quit:     bind("quit", km.Quit),

		Close: bind("close", "esc", "q"),
	}
}

// HelpBindings lists the bindings shown on the help screen, in display order
func (k KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask,
		k.GrabTask, k.GrabColumn, k.Drop, k.Cancel,
		k.MoveColumnLeft, k.MoveColumnRight,
		k.CreateColumn, k.RenameColumn, k.RecolorColumn, k.DeleteColumn,
		k.ViewTask, k.Refresh, k.Quit,
	}
}
