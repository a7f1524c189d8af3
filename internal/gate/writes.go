package gate

import (
	"cmp"
	"slices"

	"github.com/thenoetrevino/tablero/internal/board"
)

// issuedWrite is a command whose write has not settled yet
type issuedWrite struct {
	seq  uint64
	cmd  board.Command
	undo board.Snapshot
}

// pendingWrites tracks unsettled writes per card, and one queue for the column
// order. Within a queue writes are kept oldest first.
type pendingWrites struct {
	seq    uint64
	queues map[string][]*issuedWrite
}

func newPendingWrites() *pendingWrites {
	return &pendingWrites{queues: make(map[string][]*issuedWrite)}
}

func writeKey(cmd board.Command) string {
	switch c := cmd.(type) {
	case board.MoveTask:
		return "task/" + string(c.TaskID)
	case board.ReorderColumns:
		return "columns"
	default:
		return ""
	}
}

// add records a write that was just applied to the state
func (w *pendingWrites) add(cmd board.Command, undo board.Snapshot) uint64 {
	w.seq++
	key := writeKey(cmd)
	w.queues[key] = append(w.queues[key], &issuedWrite{seq: w.seq, cmd: cmd, undo: undo})
	return w.seq
}

// confirm forgets a write that reached the store
func (w *pendingWrites) confirm(cmd board.Command, seq uint64) {
	w.remove(writeKey(cmd), seq)
}

// fail forgets a write that did not reach the store and reports what to restore.
// Only the newest write for a key is undone on the state. An older one hands its
// undo to the next write in line, whose own optimistic base never got stored.
func (w *pendingWrites) fail(cmd board.Command, seq uint64) (board.Snapshot, bool) {
	key := writeKey(cmd)
	queue := w.queues[key]
	i := slices.IndexFunc(queue, func(iw *issuedWrite) bool { return iw.seq == seq })
	if i < 0 {
		return board.Snapshot{}, false
	}
	failed := queue[i]
	newest := i == len(queue)-1
	if !newest {
		queue[i+1].undo = queue[i+1].undo.Rebase(failed.undo)
	}
	w.remove(key, seq)

	if !newest {
		return board.Snapshot{}, false
	}
	return failed.undo, true
}

func (w *pendingWrites) remove(key string, seq uint64) {
	queue := slices.DeleteFunc(w.queues[key], func(iw *issuedWrite) bool { return iw.seq == seq })
	if len(queue) == 0 {
		delete(w.queues, key)
		return
	}
	w.queues[key] = queue
}

// newest returns the latest unsettled command per key, in issue order
func (w *pendingWrites) newest() []board.Command {
	latest := make([]*issuedWrite, 0, len(w.queues))
	for _, queue := range w.queues {
		latest = append(latest, queue[len(queue)-1])
	}
	slices.SortFunc(latest, func(a, b *issuedWrite) int { return cmp.Compare(a.seq, b.seq) })

	cmds := make([]board.Command, len(latest))
	for i, iw := range latest {
		cmds[i] = iw.cmd
	}
	return cmds
}
