// Package cli holds what every tablero subcommand shares: the application
// context, output formatting and exit codes.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
)

type contextKey string

const appKey contextKey = "tablero-app"

// CLI represents the CLI application context
type CLI struct {
	App         *app.App // Application container with services
	Config      *config.Config
	db          *sql.DB
	eventClient *events.Client
}

// WithApp stores a prebuilt App in ctx; GetCLIFromContext will use it instead of
// opening the database
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI around the App in ctx, or a freshly initialized one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}

// NewCLI initializes the CLI with database and optional daemon connection
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Try to connect to daemon (optional - silent fallback)
	var eventClient *events.Client
	opts := []app.Option{app.WithConfig(cfg)}
	if client, err := events.NewClient(cfg.SocketPath); err == nil {
		if err := client.Connect(ctx); err == nil {
			eventClient = client
			opts = append(opts, app.WithEventPublisher(client))
		} else {
			slog.Debug("daemon unavailable, continuing without live updates",
				"hint", events.ClassifyDaemonError(err).Hint)
		}
	}

	return &CLI{
		App:         app.New(database.NewRepository(db), opts...),
		Config:      cfg,
		db:          db,
		eventClient: eventClient,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.eventClient != nil {
		if err := c.eventClient.Close(); err != nil {
			slog.Warn("error closing event client", "error", err)
		}
	}
	if err := c.App.Close(); err != nil {
		return err
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
