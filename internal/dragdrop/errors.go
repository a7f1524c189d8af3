package dragdrop

import "errors"

var (
	ErrGestureInFlight = errors.New("a drag is already in progress")
	ErrNoGesture       = errors.New("nothing is being dragged")
)
