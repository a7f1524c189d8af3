package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/tablero/internal/daemon"
	"github.com/thenoetrevino/tablero/internal/events"
)

// GetTestSocketPath returns a socket path inside a per-test temp dir
func GetTestSocketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tablero-test.sock")
}

// SetupTestDaemon starts a daemon on a temporary socket and waits for it to accept
// connections. It is shut down when the test ends.
func SetupTestDaemon(t *testing.T) (*daemon.Server, string) {
	t.Helper()

	socketPath := GetTestSocketPath(t)
	server, err := daemon.NewServer(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Start(ctx); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	if !WaitForCondition(t, func() bool {
		_, err := os.Stat(socketPath)
		return err == nil
	}, 2*time.Second, "daemon socket") {
		t.Fatal("Timeout waiting for daemon socket to be created")
	}
	return server, socketPath
}

// SetupTestClient connects an event client to socketPath and subscribes it to
// boardID ("" for every board). It is closed when the test ends.
func SetupTestClient(t *testing.T, socketPath, boardID string) *events.Client {
	t.Helper()

	client, err := events.NewClient(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("Warning: client close error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Subscribe before Connect so the subscription goes out with the handshake
	_ = client.Subscribe(boardID)
	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect test client: %v", err)
	}
	return client
}

// WaitForEvent waits for an event on a channel with timeout
func WaitForEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) events.Event {
	t.Helper()

	select {
	case event, ok := <-ch:
		if !ok {
			t.Fatal("Event channel closed unexpectedly")
		}
		return event
	case <-time.After(timeout):
		t.Fatalf("Timeout waiting for event after %v", timeout)
		return events.Event{}
	}
}

// WaitForNoEvent verifies that no event arrives within the timeout
func WaitForNoEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) {
	t.Helper()

	select {
	case event := <-ch:
		t.Fatalf("Unexpected event received: %+v", event)
	case <-time.After(timeout):
	}
}

// WaitForCondition polls condition until it holds or the timeout passes
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, description string) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Logf("Timeout waiting for condition: %s", description)
	return false
}
