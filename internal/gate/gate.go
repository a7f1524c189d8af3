// Package gate applies board commands optimistically and reconciles them with the
// store. Each Gate is bound to one board and owns that board's State.
package gate

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/column"
	"github.com/thenoetrevino/tablero/internal/types"
)

// BoardStore reads board metadata
type BoardStore interface {
	GetBoardByID(ctx context.Context, id types.BoardID) (*models.Board, error)
}

// TaskStore is the task persistence the gate reads from and writes status to
type TaskStore interface {
	GetTasksByBoard(ctx context.Context, boardID types.BoardID) ([]*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id types.TaskID, status types.ColumnID) error
}

// Checker validates a move before it is applied
type Checker interface {
	Check(ctx context.Context, move board.MoveTask, task models.Task, terminal types.ColumnID) error
}

// Deps are the collaborators of a Gate. Guard and Events may be nil.
type Deps struct {
	Boards  BoardStore
	Columns column.Service
	Tasks   TaskStore
	Guard   Checker
	Events  events.EventPublisher
}

// Option configures a Gate
type Option func(*Gate)

// WithLogger sets the logger used by the gate
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Gate serializes access to a board's State and runs each command's write
type Gate struct {
	boardID types.BoardID
	deps    Deps
	logger  *slog.Logger

	mu       sync.Mutex
	state    *board.State
	board    *models.Board
	closed   bool
	writes   *pendingWrites
	inflight sync.WaitGroup

	listenersMu     sync.Mutex
	statusListeners []func(types.TaskID, types.ColumnID)
	errorListeners  []func(error)
	changeListeners []func()
}

// New binds a gate to a board. Call Load before dispatching.
func New(boardID types.BoardID, deps Deps, opts ...Option) *Gate {
	g := &Gate{
		boardID: boardID,
		deps:    deps,
		logger:  slog.Default(),
		writes:  newPendingWrites(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.state = board.New(boardID, g.logger)
	return g
}

// BoardID returns the board this gate is bound to
func (g *Gate) BoardID() types.BoardID {
	return g.boardID
}

// Load fetches the board, its columns and its tasks, and rebuilds the state
func (g *Gate) Load(ctx context.Context) error {
	var (
		b       *models.Board
		columns []*models.Column
		tasks   []*models.Task
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		b, err = g.deps.Boards.GetBoardByID(ctx, g.boardID)
		if err != nil {
			return fmt.Errorf("failed to load board: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		columns, err = g.deps.Columns.List(ctx, g.boardID)
		return err
	})
	eg.Go(func() error {
		var err error
		tasks, err = g.deps.Tasks.GetTasksByBoard(ctx, g.boardID)
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}
	g.board = b
	g.state.Rebuild(columns, tasks)
	g.reapplyPending()
	g.mu.Unlock()

	g.logger.Debug("board loaded", "board_id", g.boardID, "columns", len(columns), "tasks", len(tasks))
	g.notifyChange()
	return nil
}

// reapplyPending replays unsettled writes over a freshly loaded state, which may
// have been read before those writes reached the store. Caller holds mu.
func (g *Gate) reapplyPending() {
	for _, cmd := range g.writes.newest() {
		var err error
		switch c := cmd.(type) {
		case board.MoveTask:
			col, _, ok := g.state.Locate(c.TaskID)
			if !ok || col == c.Dest {
				continue
			}
			err = g.state.Apply(board.MoveTask{TaskID: c.TaskID, Source: col, Dest: c.Dest, DestIndex: c.DestIndex})
		case board.ReorderColumns:
			if slices.Equal(g.state.ColumnIDs(), c.ColumnIDs) {
				continue
			}
			err = g.state.Apply(c)
		}
		if err != nil {
			g.logger.Debug("pending write no longer applies", "board_id", g.boardID, "command", cmd, "error", err)
		}
	}
}

// Reload drops cached columns and loads the board again
func (g *Gate) Reload(ctx context.Context) error {
	g.deps.Columns.Invalidate(g.boardID)
	return g.Load(ctx)
}

// HandleRemote reacts to a change made by another process. Events for other
// boards are ignored.
func (g *Gate) HandleRemote(ctx context.Context, event events.Event) error {
	if event.Type != events.EventBoardChanged {
		return nil
	}
	if event.BoardID != "" && event.BoardID != g.boardID.String() {
		return nil
	}
	return g.Reload(ctx)
}

// Dispatch validates cmd, applies it to the state, and issues its write. The
// returned Pending settles when the write is confirmed or rolled back.
func (g *Gate) Dispatch(ctx context.Context, cmd board.Command) *Pending {
	if move, ok := cmd.(board.MoveTask); ok && move.Source == move.Dest {
		cmd = board.ReorderWithinColumn{ColumnID: move.Source, TaskID: move.TaskID, From: -1, To: move.DestIndex}
	}

	if move, ok := cmd.(board.MoveTask); ok {
		if err := g.check(ctx, move); err != nil {
			g.logger.Warn("command rejected", "board_id", g.boardID, "command", cmd, "error", err)
			g.notifyError(err)
			return resolved(cmd, err)
		}
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return resolved(cmd, ErrClosed)
	}
	snap := g.state.Capture(cmd)
	if err := g.state.Apply(cmd); err != nil {
		g.mu.Unlock()
		g.logger.Warn("command rejected", "board_id", g.boardID, "command", cmd, "error", err)
		g.notifyError(err)
		return resolved(cmd, err)
	}
	_, viewOnly := cmd.(board.ReorderWithinColumn)
	var seq uint64
	if !viewOnly {
		seq = g.writes.add(cmd, snap)
		g.inflight.Add(1)
	}
	g.mu.Unlock()

	g.notifyChange()

	p := newPending(cmd)
	if viewOnly {
		// lane order is view state only
		p.resolve(nil)
		return p
	}

	go g.write(context.WithoutCancel(ctx), cmd, seq, p)
	return p
}

// check runs the guard against the current copy of the moving task
func (g *Gate) check(ctx context.Context, move board.MoveTask) error {
	g.mu.Lock()
	task, ok := g.state.Task(move.TaskID)
	terminal := g.board.Terminal()
	g.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", board.ErrUnknownTask, move.TaskID)
	}
	if g.deps.Guard == nil {
		return nil
	}
	return g.deps.Guard.Check(ctx, move, task, terminal)
}

func (g *Gate) write(ctx context.Context, cmd board.Command, seq uint64, p *Pending) {
	defer g.inflight.Done()

	var err error
	switch c := cmd.(type) {
	case board.MoveTask:
		err = g.deps.Tasks.UpdateTaskStatus(ctx, c.TaskID, c.Dest)
	case board.ReorderColumns:
		err = g.deps.Columns.ReorderAll(ctx, g.boardID, c.ColumnIDs)
	}

	if err != nil {
		g.rollback(cmd, seq, err, p)
		return
	}

	g.mu.Lock()
	g.writes.confirm(cmd, seq)
	closed := g.closed
	g.mu.Unlock()
	if closed {
		p.resolve(nil)
		return
	}

	if move, ok := cmd.(board.MoveTask); ok {
		g.logger.Info("task moved", "board_id", g.boardID, "task_id", move.TaskID, "status", move.Dest)
		g.notifyStatus(move.TaskID, move.Dest)
		// column reorders are published by the column service
		g.publish()
	}
	p.resolve(nil)
}

// rollback undoes only the failed command. Commands applied after it stay put.
func (g *Gate) rollback(cmd board.Command, seq uint64, err error, p *Pending) {
	perr := &PersistenceError{Op: cmd.String(), Err: err}
	g.logger.Error("write failed, reverting", "board_id", g.boardID, "command", cmd, "error", err)

	g.mu.Lock()
	closed := g.closed
	if undo, ok := g.writes.fail(cmd, seq); ok && !closed {
		g.state.Restore(undo)
	}
	g.mu.Unlock()

	if !closed {
		g.notifyError(perr)
		g.notifyChange()
	}
	p.resolve(perr)
}

func (g *Gate) publish() {
	if g.deps.Events == nil {
		return
	}
	if err := events.PublishWithRetry(g.deps.Events, events.BoardChanged(g.boardID.String()), 3); err != nil {
		g.logger.Warn("failed to publish board event", "board_id", g.boardID, "error", err)
	}
}

// Wait blocks until every issued write has settled
func (g *Gate) Wait() {
	g.inflight.Wait()
}

// Close detaches all listeners. Writes already issued still reach the store but
// their outcome no longer touches the state.
func (g *Gate) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.listenersMu.Lock()
	g.statusListeners = nil
	g.errorListeners = nil
	g.changeListeners = nil
	g.listenersMu.Unlock()
}
