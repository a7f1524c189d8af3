package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics tracks daemon statistics using atomic operations for thread-safety
type Metrics struct {
	EventsReceived   atomic.Int64
	EventsSent       atomic.Int64
	EventsDropped    atomic.Int64
	Broadcasts       atomic.Int64
	ConnectedClients atomic.Int32
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// MetricsSnapshot is a point-in-time copy of the counters, suitable for logging
type MetricsSnapshot struct {
	EventsReceived   int64  `json:"events_received"`
	EventsSent       int64  `json:"events_sent"`
	EventsDropped    int64  `json:"events_dropped"`
	Broadcasts       int64  `json:"broadcasts"`
	ConnectedClients int32  `json:"connected_clients"`
	Uptime           string `json:"uptime"`
}

// Snapshot returns the current counter values
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsReceived:   m.EventsReceived.Load(),
		EventsSent:       m.EventsSent.Load(),
		EventsDropped:    m.EventsDropped.Load(),
		Broadcasts:       m.Broadcasts.Load(),
		ConnectedClients: m.ConnectedClients.Load(),
		Uptime:           time.Since(m.StartTime).Round(time.Second).String(),
	}
}
