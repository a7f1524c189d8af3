package events

import (
	"errors"
	"log/slog"
	"time"
)

// publishBackoff is the wait before the second attempt; it doubles after that
const publishBackoff = 50 * time.Millisecond

// BoardChanged builds the event emitted after a board mutation commits
func BoardChanged(boardID string) Event {
	return Event{
		Type:      EventBoardChanged,
		BoardID:   boardID,
		Timestamp: time.Now(),
	}
}

// PublishWithRetry sends event, trying up to attempts times while the send
// fails. A nil publisher is a no-op. A closed client is not retried.
func PublishWithRetry(publisher EventPublisher, event Event, attempts int) error {
	if publisher == nil {
		return nil
	}

	log := slog.With("event_type", event.Type, "board_id", event.BoardID)
	delay := publishBackoff

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = publisher.SendEvent(event); err == nil {
			if attempt > 1 {
				log.Debug("event published after retry", "attempt", attempt)
			}
			return nil
		}
		if errors.Is(err, ErrNotConnected) {
			break
		}
		if attempt < attempts {
			log.Debug("event publish failed, retrying", "attempt", attempt, "retry_delay", delay, "error", err)
			time.Sleep(delay)
			delay *= 2
		}
	}

	log.Warn("event publish failed", "attempts", attempts, "error", err)
	return err
}
