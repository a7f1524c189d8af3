package events_test

import (
	"context"
	"errors"
	"sync"

	"github.com/thenoetrevino/tablero/internal/events"
)

// MockEventPublisher records published events for verification in tests.
type MockEventPublisher struct {
	mu sync.Mutex

	SentEvents          []events.Event
	SubscriptionHistory []string
	failures            int // number of SendEvent calls to fail before succeeding
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) Connect(ctx context.Context) error { return nil }

func (m *MockEventPublisher) SendEvent(event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		return errors.New("transient failure")
	}
	m.SentEvents = append(m.SentEvents, event)
	return nil
}

func (m *MockEventPublisher) Listen(ctx context.Context) (<-chan events.Event, error) {
	ch := make(chan events.Event)
	close(ch)
	return ch, nil
}

func (m *MockEventPublisher) Subscribe(boardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubscriptionHistory = append(m.SubscriptionHistory, boardID)
	return nil
}

func (m *MockEventPublisher) SetNotifyFunc(fn events.NotifyFunc) {}

func (m *MockEventPublisher) Close() error { return nil }

func (m *MockEventPublisher) Sent() []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]events.Event(nil), m.SentEvents...)
}

var _ events.EventPublisher = (*MockEventPublisher)(nil)
