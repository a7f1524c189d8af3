package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(b *Inbox) []any {
	var out []any
	for {
		msg, ok := b.Poll()
		if !ok {
			return out
		}
		out = append(out, msg)
	}
}

func TestInbox_ErrorSurvivesChangeBurst(t *testing.T) {
	b := NewInbox()
	failed := errors.New("write failed")

	for i := 0; i < 500; i++ {
		b.MarkChanged()
	}
	b.Push(BoardErrorMsg{Err: failed})
	for i := 0; i < 500; i++ {
		b.MarkChanged()
	}

	got := drain(b)
	require.Len(t, got, 2)
	assert.Equal(t, BoardErrorMsg{Err: failed}, got[0])
	assert.Equal(t, BoardChangedMsg{}, got[1])
}

func TestInbox_KeepsPushOrder(t *testing.T) {
	b := NewInbox()
	first, second := errors.New("first"), errors.New("second")

	b.Push(BoardErrorMsg{Err: first})
	b.Push(StatusChangedMsg{TaskID: "t1", Status: "done"})
	b.Push(BoardErrorMsg{Err: second})

	assert.Equal(t, []any{
		BoardErrorMsg{Err: first},
		StatusChangedMsg{TaskID: "t1", Status: "done"},
		BoardErrorMsg{Err: second},
	}, drain(b))
}

func TestInbox_NextWaitsForPush(t *testing.T) {
	b := NewInbox()
	got := make(chan any, 1)
	go func() { got <- b.Next(context.Background()) }()

	time.Sleep(10 * time.Millisecond)
	b.Push(NotificationMsg{Level: "info", Message: "Reconnected to daemon"})

	select {
	case msg := <-got:
		assert.Equal(t, NotificationMsg{Level: "info", Message: "Reconnected to daemon"}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("Next did not return after a push")
	}
}

func TestInbox_NextReturnsNilWhenDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, NewInbox().Next(ctx))
}
