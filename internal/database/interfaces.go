package database

// DataStore defines the unified interface for all data operations needed by the engine.
// It is composed of smaller, domain-specific interfaces; consumers should depend on
// the smallest one they need (e.g., TaskRepository, ColumnRepository).
type DataStore interface {
	BoardRepository
	ColumnRepository
	TaskRepository
}
