package tui

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"
)

// Inbox carries gate and event client callbacks to the update loop. Pushes never
// block and nothing pushed is lost; repeated board changes collapse into a
// single BoardChangedMsg.
type Inbox struct {
	mu      sync.Mutex
	queue   []tea.Msg
	changed bool
	ready   chan struct{}
}

// NewInbox returns an empty inbox
func NewInbox() *Inbox {
	return &Inbox{ready: make(chan struct{}, 1)}
}

// Push queues msg behind any earlier ones
func (b *Inbox) Push(msg tea.Msg) {
	b.mu.Lock()
	b.queue = append(b.queue, msg)
	b.mu.Unlock()
	b.wake()
}

// MarkChanged records that the board needs a redraw
func (b *Inbox) MarkChanged() {
	b.mu.Lock()
	already := b.changed
	b.changed = true
	b.mu.Unlock()
	if !already {
		b.wake()
	}
}

func (b *Inbox) wake() {
	select {
	case b.ready <- struct{}{}:
	default:
	}
}

// Poll returns the next message without waiting. Queued messages come before
// a pending redraw.
func (b *Inbox) Poll() (tea.Msg, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.queue) > 0 {
		msg := b.queue[0]
		b.queue[0] = nil
		b.queue = b.queue[1:]
		return msg, true
	}
	if b.changed {
		b.changed = false
		return BoardChangedMsg{}, true
	}
	return nil, false
}

// Next waits for the next message. It returns nil once ctx is done.
func (b *Inbox) Next(ctx context.Context) tea.Msg {
	for {
		if msg, ok := b.Poll(); ok {
			return msg
		}
		select {
		case <-b.ready:
		case <-ctx.Done():
			return nil
		}
	}
}
