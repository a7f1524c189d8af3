package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"
)

// ErrNotConnected is returned when writing to a client that has no live socket
var ErrNotConnected = errors.New("not connected to daemon")

// ErrQueueFull is returned when the outgoing event queue cannot accept more events
var ErrQueueFull = errors.New("event queue full")

// Client is a connection to the tablero daemon used to publish board changes and
// receive changes made by other processes. Outgoing events are debounced per board.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	eventQueue chan Event
	debounce   time.Duration
	closed     bool
	batcherOn  bool

	maxRetries int
	baseDelay  time.Duration

	boardID      string
	lastSequence int64
	notify       NotifyFunc

	ctx         context.Context
	cancel      context.CancelFunc
	batcherDone chan struct{}
}

// NewClient creates a new event client but does not connect.
// TABLERO_EVENT_DEBOUNCE_MS overrides the default 100ms batching window.
func NewClient(socketPath string) (*Client, error) {
	if socketPath == "" {
		return nil, errors.New("socket path is required")
	}

	debounceMs := 100
	if envVal := os.Getenv("TABLERO_EVENT_DEBOUNCE_MS"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			debounceMs = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:  socketPath,
		eventQueue:  make(chan Event, 100),
		debounce:    time.Duration(debounceMs) * time.Millisecond,
		maxRetries:  5,
		baseDelay:   time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}, nil
}

// SetNotifyFunc registers a callback that receives connection status messages
func (c *Client) SetNotifyFunc(fn NotifyFunc) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = fn
}

func (c *Client) notifyf(level, format string, args ...any) {
	c.mu.Lock()
	fn := c.notify
	c.mu.Unlock()
	if fn != nil {
		fn(level, fmt.Sprintf(format, args...))
	}
}

// Connect dials the daemon socket and re-sends the current subscription.
// Sequence numbers restart with every connection, since a restarted daemon
// counts from 1 again.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return ErrNotConnected
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	msg := Message{
		Version:   ProtocolVersion,
		Type:      "subscribe",
		Subscribe: &SubscribeMessage{BoardID: c.boardID},
	}
	if err := c.encoder.Encode(msg); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Error("error closing connection", "error", closeErr)
		}
		c.conn = nil
		return fmt.Errorf("failed to send subscription: %w", err)
	}
	c.lastSequence = 0

	if !c.batcherOn {
		c.batcherOn = true
		go c.startBatcher()
	}

	return nil
}

// SendEvent queues an event to be sent to the daemon without blocking
func (c *Client) SendEvent(event Event) error {
	if c == nil {
		return ErrNotConnected
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrNotConnected
	}
	select {
	case c.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// startBatcher collapses queued events into at most one send per debounce tick.
// Events for different boards in the same window are sent as a single all-boards event.
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var pending bool
	var boardID string
	var mixed bool

	record := func(evt Event) {
		if !pending {
			pending = true
			boardID = evt.BoardID
			mixed = false
			return
		}
		if boardID != evt.BoardID {
			mixed = true
		}
	}

	flush := func() {
		if !pending {
			return
		}
		target := boardID
		if mixed {
			target = ""
		}
		if err := c.sendToSocket(Message{Type: "event", Event: &Event{
			Type:      EventBoardChanged,
			BoardID:   target,
			Timestamp: time.Now(),
		}}); err != nil && !isConnectionError(err) {
			slog.Warn("failed to send batched event", "error", err)
		}
		pending = false
	}

	for {
		select {
		case <-c.ctx.Done():
			flush()
			return

		case event, ok := <-c.eventQueue:
			if !ok {
				flush()
				return
			}
			record(event)

		drain:
			for {
				select {
				case evt, ok := <-c.eventQueue:
					if !ok {
						break drain
					}
					record(evt)
				default:
					break drain
				}
			}

		case <-ticker.C:
			flush()
		}
	}
}

func (c *Client) sendToSocket(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}

	// Short deadline so a dead daemon does not wedge the batcher
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	msg.Version = ProtocolVersion
	return c.encoder.Encode(msg)
}

// Listen returns a channel of events broadcast by the daemon.
// The channel is closed when ctx is done or reconnection gives up.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	eventChan := make(chan Event, 10)
	if c == nil {
		close(eventChan)
		return eventChan, ErrNotConnected
	}
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		err := c.readEvents(ctx, eventChan)
		if err == nil || ctx.Err() != nil {
			return
		}

		slog.Warn("connection to daemon lost, reconnecting", "error", err)
		c.notifyf("warning", "Lost connection to daemon, reconnecting...")

		if c.reconnect(ctx) {
			c.notifyf("info", "Reconnected to daemon")
			continue
		}

		slog.Error("giving up on daemon", "attempts", c.maxRetries)
		c.notifyf("error", "Could not reconnect to daemon, live updates disabled")
		return
	}
}

func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return ErrNotConnected
		}
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		if msg.Version != 0 && msg.Version != ProtocolVersion {
			slog.Warn("ignoring message with unknown protocol version", "version", msg.Version)
			continue
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil || !c.advance(msg.Event.SequenceID) {
				continue
			}
			select {
			case eventChan <- *msg.Event:
			case <-ctx.Done():
				return ctx.Err()
			}

		case "ping":
			if err := c.sendToSocket(Message{Type: "pong"}); err != nil && !isConnectionError(err) {
				slog.Warn("failed to send pong", "error", err)
			}
		}
	}
}

// advance records seq as the newest event seen and reports false for a repeat
// or out-of-order event on the current connection
func (c *Client) advance(seq int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq <= c.lastSequence {
		return false
	}
	c.lastSequence = seq
	return true
}

func isConnectionError(err error) bool {
	return errors.Is(err, ErrNotConnected) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET)
}

// reconnect retries Connect with exponential backoff (1s, 2s, 4s...)
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}

		c.mu.Lock()
		if c.conn != nil {
			_ = c.conn.Close()
			c.conn = nil
		}
		c.mu.Unlock()

		if err := c.Connect(ctx); err == nil {
			slog.Info("reconnected to daemon", "attempt", i+1)
			return true
		}
		delay *= 2
	}

	return false
}

// Subscribe narrows the events received to one board; "" subscribes to every board
func (c *Client) Subscribe(boardID string) error {
	if c == nil {
		return ErrNotConnected
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.boardID = boardID

	if c.conn == nil {
		return ErrNotConnected
	}

	return c.encoder.Encode(Message{
		Version:   ProtocolVersion,
		Type:      "subscribe",
		Subscribe: &SubscribeMessage{BoardID: boardID},
	})
}

// Close flushes pending events and closes the connection. Safe to call twice.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.eventQueue)
	started := c.batcherOn
	c.mu.Unlock()

	c.cancel()

	if started {
		<-c.batcherDone
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}
