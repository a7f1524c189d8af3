package gate

import "github.com/thenoetrevino/tablero/internal/types"

// OnStatusChanged registers fn to run once per confirmed cross-column move
func (g *Gate) OnStatusChanged(fn func(types.TaskID, types.ColumnID)) {
	g.listenersMu.Lock()
	defer g.listenersMu.Unlock()
	g.statusListeners = append(g.statusListeners, fn)
}

// OnError registers fn to receive every user-facing error, once each
func (g *Gate) OnError(fn func(error)) {
	g.listenersMu.Lock()
	defer g.listenersMu.Unlock()
	g.errorListeners = append(g.errorListeners, fn)
}

// OnChange registers fn to run whenever the state changes
func (g *Gate) OnChange(fn func()) {
	g.listenersMu.Lock()
	defer g.listenersMu.Unlock()
	g.changeListeners = append(g.changeListeners, fn)
}

// Listeners run outside g.mu so they may read the state.

func (g *Gate) notifyStatus(id types.TaskID, status types.ColumnID) {
	g.listenersMu.Lock()
	fns := append([]func(types.TaskID, types.ColumnID){}, g.statusListeners...)
	g.listenersMu.Unlock()
	for _, fn := range fns {
		fn(id, status)
	}
}

func (g *Gate) notifyError(err error) {
	g.listenersMu.Lock()
	fns := append([]func(error){}, g.errorListeners...)
	g.listenersMu.Unlock()
	for _, fn := range fns {
		fn(err)
	}
}

func (g *Gate) notifyChange() {
	g.listenersMu.Lock()
	fns := append([]func(){}, g.changeListeners...)
	g.listenersMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
