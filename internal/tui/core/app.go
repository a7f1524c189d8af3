// Package core is the tea.Model the launcher runs
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/gate"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/handlers"
	"github.com/thenoetrevino/tablero/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// It delegates updates to the handlers package and drawing to the render package.
type App struct {
	model *tui.Model
}

// New creates an App for an open board. eventClient may be nil.
func New(ctx context.Context, a *app.App, board *gate.Gate, cfg *config.Config, eventClient events.EventPublisher) *App {
	return &App{model: tui.InitialModel(ctx, a, board, cfg, eventClient)}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, handlers.Update(a.model, msg)
}

// View implements tea.Model
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
