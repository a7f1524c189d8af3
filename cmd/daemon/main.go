package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/daemon"
	"github.com/thenoetrevino/tablero/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// The daemon runs under systemd or in the background; stderr is its log
	logging.Setup(os.Stderr, cfg.LogLevel)

	if cfg.SocketPath == "" {
		slog.Error("no socket path configured and home directory unknown")
		os.Exit(1)
	}

	server, err := daemon.NewServer(cfg.SocketPath)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("tablero daemon starting", "socket_path", cfg.SocketPath, "pid", os.Getpid())

	// Blocks until shutdown
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("tablero daemon shut down gracefully", "metrics", server.Metrics().Snapshot())
}
