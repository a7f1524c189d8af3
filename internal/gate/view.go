package gate

import (
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Read accessors take the gate lock and return copies.

func (g *Gate) Board() *models.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.board == nil {
		return nil
	}
	b := *g.board
	return &b
}

func (g *Gate) Terminal() types.ColumnID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Terminal()
}

func (g *Gate) Columns() []*models.Column {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Columns()
}

func (g *Gate) ColumnIDs() []types.ColumnID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.ColumnIDs()
}

func (g *Gate) Lane(id types.ColumnID) []models.Task {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Lane(id)
}

func (g *Gate) Locate(id types.TaskID) (types.ColumnID, int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Locate(id)
}

func (g *Gate) Task(id types.TaskID) (models.Task, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Task(id)
}

func (g *Gate) Orphans() []models.Task {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Orphans()
}

// Snapshot returns a full copy of the state, for comparisons
func (g *Gate) Snapshot() board.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Snapshot()
}
