package state

import "sync/atomic"

// ConnectionStatus is the link to the event daemon
type ConnectionStatus int32

const (
	Disconnected ConnectionStatus = iota
	Connected
	Reconnecting
)

var connectionLabels = [...]string{
	Disconnected: "Offline",
	Connected:    "Live",
	Reconnecting: "Reconnecting",
}

func (cs ConnectionStatus) String() string {
	if cs < 0 || int(cs) >= len(connectionLabels) {
		return "Unknown"
	}
	return connectionLabels[cs]
}

// ConnectionState is written from the event client's goroutine and read by the view
type ConnectionState struct {
	status atomic.Int32
}

func NewConnectionState(initial ConnectionStatus) *ConnectionState {
	cs := &ConnectionState{}
	cs.SetStatus(initial)
	return cs
}

func (cs *ConnectionState) Status() ConnectionStatus {
	return ConnectionStatus(cs.status.Load())
}

func (cs *ConnectionState) SetStatus(status ConnectionStatus) {
	cs.status.Store(int32(status))
}
