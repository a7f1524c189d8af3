package events

import "time"

// ProtocolVersion is bumped whenever the wire format changes incompatibly
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged EventType = "board_changed"
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// Event represents a committed change to a board
type Event struct {
	Type       EventType
	BoardID    string    // For filtering - which board was modified ("" = all boards)
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// SubscribeMessage is sent by clients to subscribe to specific board updates
type SubscribeMessage struct {
	BoardID string // "" = all boards
}

// Message wraps events and control messages for wire protocol
type Message struct {
	Version   int               `json:",omitempty"`
	Type      string            // "event", "subscribe", "ack", "ping", "pong"
	Event     *Event            `json:",omitempty"`
	Subscribe *SubscribeMessage `json:",omitempty"`
}

// NotifyFunc surfaces connection problems to the user interface.
// level is one of "info", "warning" or "error".
type NotifyFunc func(level, message string)
