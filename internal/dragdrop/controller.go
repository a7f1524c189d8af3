// Package dragdrop turns pointer or keyboard drag gestures into board commands.
// A Controller belongs to one UI goroutine and tracks at most one gesture.
package dragdrop

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Layout is the read side of a board the controller needs
type Layout interface {
	ColumnIDs() []types.ColumnID
	Locate(taskID types.TaskID) (types.ColumnID, int, bool)
}

// Kind tells what is being dragged
type Kind int

const (
	None Kind = iota
	ColumnDrag
	TaskDrag
)

func (k Kind) String() string {
	switch k {
	case ColumnDrag:
		return "column"
	case TaskDrag:
		return "task"
	default:
		return "none"
	}
}

// Location is a drop target. For a column drag only Index is used: the position
// the column should end up at. For a task drag ColumnID names the lane and Index
// the slot in it.
type Location struct {
	ColumnID types.ColumnID
	Index    int
}

// NoDestination is dropped outside any target; it cancels the gesture
var NoDestination = Location{Index: -1}

// Valid reports whether the location points somewhere
func (l Location) Valid() bool {
	return l.Index >= 0
}

// Gesture describes the drag in progress
type Gesture struct {
	Kind     Kind
	ColumnID types.ColumnID // column being dragged, or the task's source lane
	TaskID   types.TaskID
	Origin   Location
	Hover    Location
}

// Controller tracks a single drag gesture
type Controller struct {
	layout  Layout
	logger  *slog.Logger
	active  bool
	gesture Gesture
}

// New creates a controller reading positions from layout
func New(layout Layout, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{layout: layout, logger: logger}
}

// Active returns the current gesture, if any
func (c *Controller) Active() (Gesture, bool) {
	return c.gesture, c.active
}

// StartColumnDrag picks up a column
func (c *Controller) StartColumnDrag(id types.ColumnID) error {
	if c.active {
		return ErrGestureInFlight
	}
	idx := slices.Index(c.layout.ColumnIDs(), id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", board.ErrUnknownColumn, id)
	}

	origin := Location{ColumnID: id, Index: idx}
	c.begin(Gesture{Kind: ColumnDrag, ColumnID: id, Origin: origin, Hover: origin})
	return nil
}

// StartTaskDrag picks up a card from its current lane
func (c *Controller) StartTaskDrag(id types.TaskID) error {
	if c.active {
		return ErrGestureInFlight
	}
	col, idx, ok := c.layout.Locate(id)
	if !ok {
		return fmt.Errorf("%w: %s", board.ErrUnknownTask, id)
	}

	origin := Location{ColumnID: col, Index: idx}
	c.begin(Gesture{Kind: TaskDrag, ColumnID: col, TaskID: id, Origin: origin, Hover: origin})
	return nil
}

func (c *Controller) begin(g Gesture) {
	c.active = true
	c.gesture = g
	c.logger.Debug("drag started", "kind", g.Kind, "column_id", g.ColumnID, "task_id", g.TaskID)
}

// Hover records the target under the pointer. It changes nothing on the board.
func (c *Controller) Hover(loc Location) error {
	if !c.active {
		return ErrNoGesture
	}
	c.gesture.Hover = loc
	return nil
}

// Cancel abandons the gesture, if any
func (c *Controller) Cancel() {
	if c.active {
		c.logger.Debug("drag cancelled", "kind", c.gesture.Kind)
	}
	c.active = false
	c.gesture = Gesture{}
}

// Drop ends the gesture at dest and returns the command it amounts to. A nil
// command with a nil error means the drop changed nothing. The gesture is over
// after Drop whatever the outcome.
func (c *Controller) Drop(dest Location) (board.Command, error) {
	if !c.active {
		return nil, ErrNoGesture
	}
	g := c.gesture
	c.Cancel()

	if !dest.Valid() {
		return nil, nil
	}

	switch g.Kind {
	case ColumnDrag:
		return c.dropColumn(g, dest)
	case TaskDrag:
		return c.dropTask(g, dest)
	default:
		return nil, ErrNoGesture
	}
}

// DropHovered drops at the last hovered location
func (c *Controller) DropHovered() (board.Command, error) {
	if !c.active {
		return nil, ErrNoGesture
	}
	return c.Drop(c.gesture.Hover)
}

func (c *Controller) dropColumn(g Gesture, dest Location) (board.Command, error) {
	ids := c.layout.ColumnIDs()
	from := slices.Index(ids, g.ColumnID)
	if from < 0 {
		return nil, fmt.Errorf("%w: %s", board.ErrUnknownColumn, g.ColumnID)
	}

	to := min(dest.Index, len(ids)-1)
	if to == from {
		return nil, nil
	}

	next := slices.Delete(slices.Clone(ids), from, from+1)
	next = slices.Insert(next, to, g.ColumnID)
	return board.ReorderColumns{ColumnIDs: next}, nil
}

func (c *Controller) dropTask(g Gesture, dest Location) (board.Command, error) {
	if !slices.Contains(c.layout.ColumnIDs(), dest.ColumnID) {
		return nil, fmt.Errorf("%w: %s", board.ErrUnknownColumn, dest.ColumnID)
	}

	// the board may have been reloaded since the pick-up
	source, from, ok := c.layout.Locate(g.TaskID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", board.ErrUnknownTask, g.TaskID)
	}

	if source == dest.ColumnID {
		if from == dest.Index {
			return nil, nil
		}
		return board.ReorderWithinColumn{ColumnID: source, TaskID: g.TaskID, From: from, To: dest.Index}, nil
	}

	return board.MoveTask{TaskID: g.TaskID, Source: source, Dest: dest.ColumnID, DestIndex: dest.Index}, nil
}
