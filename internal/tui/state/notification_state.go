package state

import "time"

// NotificationLevel is the severity of a notification
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// notificationTTL is how long a notification stays on screen
const notificationTTL = 4 * time.Second

// maxNotifications bounds the queue; the oldest entry is dropped first
const maxNotifications = 3

// Notification is one message shown next to the board title
type Notification struct {
	Level   NotificationLevel
	Message string
	At      time.Time
}

// NotificationState holds the notifications currently on screen
type NotificationState struct {
	notifications []Notification
	now           func() time.Time
}

// NewNotificationState creates an empty NotificationState
func NewNotificationState() *NotificationState {
	return &NotificationState{now: time.Now}
}

// Add queues a notification
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{Level: level, Message: message, At: s.now()})
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}
}

// Expire drops notifications older than their time to live and reports whether any were dropped
func (s *NotificationState) Expire() bool {
	cutoff := s.now().Add(-notificationTTL)
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.At.After(cutoff) {
			kept = append(kept, n)
		}
	}
	dropped := len(kept) != len(s.notifications)
	s.notifications = kept
	return dropped
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns the notifications, oldest first
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
