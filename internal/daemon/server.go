// Package daemon relays board change events between tablero processes over a unix socket
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
)

const (
	pingInterval   = 30 * time.Second
	healthInterval = 60 * time.Second
	staleAfter     = 90 * time.Second
)

// client is one connected tablero process
type client struct {
	conn      net.Conn
	send      chan events.Message
	boardID   string // subscription, "" = all boards
	lastPong  time.Time
	mu        sync.Mutex
	closeOnce sync.Once
}

func (c *client) subscribedTo(boardID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return boardID == "" || c.boardID == "" || c.boardID == boardID
}

// envelope carries an event together with the client that published it
type envelope struct {
	event  events.Event
	origin *client
}

// Server is the event relay daemon
type Server struct {
	socketPath       string
	listener         net.Listener
	clients          map[*client]struct{}
	mu               sync.RWMutex
	broadcast        chan envelope
	metrics          *Metrics
	sequence         atomic.Int64
	clientBufferSize int
	shutdownOnce     sync.Once
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewServer removes any stale socket at socketPath and starts listening on it
func NewServer(socketPath string) (*Server, error) {
	if dir := filepath.Dir(socketPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	return &Server{
		socketPath:       socketPath,
		listener:         listener,
		clients:          make(map[*client]struct{}),
		broadcast:        make(chan envelope, getEnvInt("TABLERO_DAEMON_BROADCAST_BUFFER", 100)),
		metrics:          NewMetrics(),
		clientBufferSize: getEnvInt("TABLERO_DAEMON_CLIENT_BUFFER", 10),
	}, nil
}

// Metrics exposes the live counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start serves clients until ctx is cancelled, then shuts down
func (s *Server) Start(ctx context.Context) error {
	slog.Info("daemon starting", "socket", s.socketPath)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	acceptErr := make(chan error, 1)
	go func() { acceptErr <- s.acceptLoop(ctx) }()
	go s.broadcastLoop(ctx)
	go s.monitorHealth(ctx)

	var err error
	select {
	case <-ctx.Done():
		slog.Info("daemon context cancelled, shutting down")
	case err = <-acceptErr:
		if err != nil {
			slog.Error("accept loop failed", "error", err)
		}
	}

	s.Shutdown()
	return err
}

func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		// Wake up periodically to notice cancellation
		if ul, ok := s.listener.(*net.UnixListener); ok {
			_ = ul.SetDeadline(time.Now().Add(time.Second))
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = struct{}{}
		count := len(s.clients)
		s.mu.Unlock()
		s.metrics.ConnectedClients.Store(int32(count))

		slog.Debug("client connected", "clients", count)

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// broadcastLoop stamps each event with a sequence number and fans it out to
// every subscribed client except the one that published it
func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case env := <-s.broadcast:
			event := env.event
			event.SequenceID = s.sequence.Add(1)
			s.metrics.Broadcasts.Add(1)

			msg := events.Message{Version: events.ProtocolVersion, Type: "event", Event: &event}

			s.mu.RLock()
			for c := range s.clients {
				if c == env.origin || !c.subscribedTo(event.BoardID) {
					continue
				}
				if !s.sendToClient(c, msg) {
					s.metrics.EventsDropped.Add(1)
					slog.Warn("client send queue full, event dropped", "board_id", event.BoardID)
				}
			}
			s.mu.RUnlock()
		}
	}
}

func (s *Server) handleClient(c *client) {
	defer s.removeClient(c)

	decoder := json.NewDecoder(c.conn)
	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			slog.Warn("protocol version mismatch", "got", msg.Version, "want", events.ProtocolVersion)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil {
				continue
			}
			s.metrics.EventsReceived.Add(1)
			select {
			case s.broadcast <- envelope{event: *msg.Event, origin: c}:
			default:
				s.metrics.EventsDropped.Add(1)
				slog.Warn("broadcast channel full")
			}

		case "subscribe":
			if msg.Subscribe != nil {
				c.mu.Lock()
				c.boardID = msg.Subscribe.BoardID
				c.mu.Unlock()
				slog.Debug("client subscribed", "board_id", msg.Subscribe.BoardID)
			}

		case "pong":
			c.mu.Lock()
			c.lastPong = time.Now()
			c.mu.Unlock()
		}
	}
}

func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)
	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth pings clients and evicts those that stop answering
func (s *Server) monitorHealth(ctx context.Context) {
	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()
	healthTicker := time.NewTicker(healthInterval)
	defer healthTicker.Stop()

	ping := events.Message{Version: events.ProtocolVersion, Type: "ping"}

	for {
		select {
		case <-ctx.Done():
			return

		case <-pingTicker.C:
			s.mu.RLock()
			for c := range s.clients {
				s.sendToClient(c, ping)
			}
			s.mu.RUnlock()

		case <-healthTicker.C:
			now := time.Now()
			for _, c := range s.snapshotClients() {
				c.mu.Lock()
				idle := now.Sub(c.lastPong)
				c.mu.Unlock()
				if idle > staleAfter {
					slog.Info("removing stale client", "idle", idle)
					s.removeClient(c)
				}
			}
			slog.Debug("daemon metrics", "metrics", s.metrics.Snapshot())
		}
	}
}

func (s *Server) snapshotClients() []*client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	return clients
}

// Broadcast injects an event as if it came from no particular client
func (s *Server) Broadcast(event events.Event) error {
	select {
	case s.broadcast <- envelope{event: event}:
		return nil
	default:
		return errors.New("broadcast channel full")
	}
}

// Shutdown closes the listener and every client, and removes the socket file
func (s *Server) Shutdown() {
	s.shutdownOnce.Do(func() {
		slog.Info("shutting down daemon")

		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			slog.Warn("error closing listener", "error", err)
		}

		for _, c := range s.snapshotClients() {
			s.removeClient(c)
		}

		if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove socket file", "error", err)
		}
	})
}

// removeClient closes send under the write lock; senders hold the read lock
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	_, present := s.clients[c]
	delete(s.clients, c)
	count := len(s.clients)
	c.closeOnce.Do(func() { close(c.send) })
	s.mu.Unlock()

	_ = c.conn.Close()

	if present {
		s.metrics.ConnectedClients.Store(int32(count))
		slog.Debug("client disconnected", "clients", count)
	}
}

// sendToClient never blocks; it reports false when the client queue is full.
// Callers must hold s.mu for reading.
func (s *Server) sendToClient(c *client, msg events.Message) bool {
	select {
	case c.send <- msg:
		s.metrics.EventsSent.Add(1)
		return true
	default:
		return false
	}
}
