// Package app wires repositories, services and board gates together
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/gate"
	"github.com/thenoetrevino/tablero/internal/guard"
	"github.com/thenoetrevino/tablero/internal/models"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	columnservice "github.com/thenoetrevino/tablero/internal/services/column"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
	"github.com/thenoetrevino/tablero/internal/types"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Event system for live updates
	eventClient events.EventPublisher
	logger      *slog.Logger

	// Service layer (business logic)
	BoardService  boardservice.Service
	ColumnService columnservice.Service
	TaskService   taskservice.Service
	Guard         *guard.Guard
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	var columnOpts []columnservice.Option
	columnOpts = append(columnOpts, columnservice.WithLogger(cfg.logger))
	var templates []boardservice.ColumnTemplate
	if cfg.config != nil {
		columnOpts = append(columnOpts, columnservice.WithPalette(cfg.config.ColumnPalette()))
		templates = Templates(cfg.config.DefaultColumns)
	}

	tasks := taskservice.NewService(repo, cfg.eventClient)

	return &App{
		repo:          repo,
		eventClient:   cfg.eventClient,
		logger:        cfg.logger,
		BoardService:  boardservice.NewService(repo, templates),
		ColumnService: columnservice.NewService(repo, cfg.eventClient, columnOpts...),
		TaskService:   tasks,
		Guard:         guard.New(tasks, cfg.logger),
	}
}

// Templates converts configured default columns into board templates
func Templates(defaults []config.ColumnDefault) []boardservice.ColumnTemplate {
	templates := make([]boardservice.ColumnTemplate, 0, len(defaults))
	for _, d := range defaults {
		color, err := models.ParseColor(d.Color)
		if err != nil {
			color = models.ColorGray
		}
		templates = append(templates, boardservice.ColumnTemplate{
			Title:    d.Title,
			Color:    color,
			Terminal: d.Terminal,
		})
	}
	return templates
}

// OpenBoard binds a loaded gate to a board. The caller owns the gate and must
// Close it.
func (a *App) OpenBoard(ctx context.Context, boardID types.BoardID) (*gate.Gate, error) {
	g := gate.New(boardID, gate.Deps{
		Boards:  a.repo,
		Columns: a.ColumnService,
		Tasks:   a.repo,
		Guard:   a.Guard,
		Events:  a.eventClient,
	}, gate.WithLogger(a.logger.With("board_id", boardID)))

	if err := g.Load(ctx); err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to open board: %w", err)
	}
	return g, nil
}

// Events returns the event publisher, nil when the daemon is not in use
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
// The event client is owned by whoever created it.
func (a *App) Close() error {
	return nil
}
