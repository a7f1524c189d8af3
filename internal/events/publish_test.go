package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/events"
)

func TestPublishWithRetry_NilClient(t *testing.T) {
	assert.NoError(t, events.PublishWithRetry(nil, events.BoardChanged("b1"), 3))
}

func TestPublishWithRetry_SucceedsAfterFailures(t *testing.T) {
	mock := NewMockEventPublisher()
	mock.failures = 2

	err := events.PublishWithRetry(mock, events.BoardChanged("b1"), 3)
	require.NoError(t, err)

	sent := mock.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, events.EventBoardChanged, sent[0].Type)
	assert.Equal(t, "b1", sent[0].BoardID)
}

func TestPublishWithRetry_GivesUp(t *testing.T) {
	mock := NewMockEventPublisher()
	mock.failures = 5

	err := events.PublishWithRetry(mock, events.BoardChanged("b1"), 2)
	assert.Error(t, err)
	assert.Empty(t, mock.Sent())
}

func TestBoardChanged(t *testing.T) {
	evt := events.BoardChanged("board-7")
	assert.Equal(t, events.EventBoardChanged, evt.Type)
	assert.Equal(t, "board-7", evt.BoardID)
	assert.False(t, evt.Timestamp.IsZero())
}

func TestPublishWithRetry_ClosedClientNotRetried(t *testing.T) {
	client, err := events.NewClient("/nonexistent/tablero.sock")
	require.NoError(t, err)
	require.NoError(t, client.Close())

	err = events.PublishWithRetry(client, events.BoardChanged("b1"), 3)
	assert.ErrorIs(t, err, events.ErrNotConnected)
}
