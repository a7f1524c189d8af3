// Package launcher opens a board and runs the interactive board view
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/core"
)

// DefaultBoardName is created when the database holds no boards yet
const DefaultBoardName = "Default"

// Launch starts the TUI on the board named by ref. An empty ref opens the first
// board, creating one if there is none.
func Launch(boardRef string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to a file so they never draw over the board
	logFile, err := logging.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	eventClient := connectDaemon(ctx, cfg.SocketPath)
	defer func() {
		if eventClient != nil {
			if err := eventClient.Close(); err != nil {
				slog.Error("error closing event client", "error", err)
			}
		}
	}()

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	opts := []app.Option{app.WithConfig(cfg), app.WithLogger(slog.Default())}
	if eventClient != nil {
		opts = append(opts, app.WithEventPublisher(eventClient))
	}
	application := app.New(database.NewRepository(db), opts...)
	defer func() { _ = application.Close() }()

	board, err := pickBoard(ctx, application, boardRef)
	if err != nil {
		return err
	}

	g, err := application.OpenBoard(ctx, board.ID)
	if err != nil {
		return err
	}
	defer func() {
		// Let in-flight saves land before the database closes
		g.Wait()
		g.Close()
	}()

	slog.Info("opening board", "board_id", board.ID, "name", board.Name)

	var publisher events.EventPublisher
	if eventClient != nil {
		publisher = eventClient
	}
	tuiApp := core.New(ctx, application, g, cfg, publisher)

	if _, err := tea.NewProgram(tuiApp, tea.WithContext(ctx)).Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// connectDaemon returns nil when the daemon cannot be reached; the board still
// works, only without live updates
func connectDaemon(ctx context.Context, socketPath string) *events.Client {
	client, err := events.NewClient(socketPath)
	if err != nil {
		slog.Warn("failed to create daemon client", "error", err)
		return nil
	}
	if err := client.Connect(ctx); err != nil {
		daemonErr := events.ClassifyDaemonError(err)
		slog.Warn("failed to connect to daemon", "message", daemonErr.Message, "hint", daemonErr.Hint)
		slog.Info("continuing without live updates")
		_ = client.Close()
		return nil
	}
	return client
}

func pickBoard(ctx context.Context, a *app.App, ref string) (*models.Board, error) {
	if ref != "" {
		return a.BoardService.Resolve(ctx, ref)
	}

	boards, err := a.BoardService.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(boards) > 0 {
		return boards[0], nil
	}

	board, _, err := a.BoardService.Create(ctx, DefaultBoardName)
	if err != nil {
		return nil, fmt.Errorf("failed to create default board: %w", err)
	}
	return board, nil
}
