// Package column owns a board's columns: their titles, colors and left-to-right order.
package column

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Direction selects the neighbour for SwapAdjacent
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Service defines all column-related business operations
type Service interface {
	// Read operations
	List(ctx context.Context, boardID types.BoardID) ([]*models.Column, error)
	Get(ctx context.Context, id types.ColumnID) (*models.Column, error)

	// Write operations
	Create(ctx context.Context, boardID types.BoardID, title string) (*models.Column, error)
	Rename(ctx context.Context, id types.ColumnID, title string) error
	Recolor(ctx context.Context, id types.ColumnID, color models.Color) error
	Delete(ctx context.Context, id types.ColumnID) error

	// Ordering
	SwapAdjacent(ctx context.Context, id types.ColumnID, dir Direction) (bool, error)
	ReorderAll(ctx context.Context, boardID types.BoardID, ids []types.ColumnID) error

	// Invalidate drops the cached column list for a board
	Invalidate(boardID types.BoardID)
}

// Store is the persistence the column service needs
type Store interface {
	database.ColumnRepository
}

type service struct {
	repo        Store
	eventClient events.EventPublisher
	logger      *slog.Logger

	rngMu   sync.Mutex
	rng     *rand.Rand
	palette []models.Color

	cacheMu sync.RWMutex
	cache   map[types.BoardID][]*models.Column
}

// NewService creates a new column service. eventClient may be nil.
func NewService(repo Store, eventClient events.EventPublisher, opts ...Option) Service {
	s := &service{
		repo:        repo,
		eventClient: eventClient,
		logger:      slog.Default(),
		palette:     models.Palette,
		cache:       make(map[types.BoardID][]*models.Column),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the board's columns sorted by Order. The result is a copy and may be
// modified freely.
func (s *service) List(ctx context.Context, boardID types.BoardID) ([]*models.Column, error) {
	s.cacheMu.RLock()
	cached, ok := s.cache[boardID]
	s.cacheMu.RUnlock()
	if ok {
		return cloneColumns(cached), nil
	}

	columns, err := s.repo.GetColumnsByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}

	s.cacheMu.Lock()
	s.cache[boardID] = columns
	s.cacheMu.Unlock()

	return cloneColumns(columns), nil
}

// Get retrieves a single column
func (s *service) Get(ctx context.Context, id types.ColumnID) (*models.Column, error) {
	col, err := s.repo.GetColumnByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	return col, nil
}

// Create appends a column at the right edge of the board with a random palette color
func (s *service) Create(ctx context.Context, boardID types.BoardID, title string) (*models.Column, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}

	col := &models.Column{
		ID:      types.NewColumnID(),
		BoardID: boardID,
		Title:   title,
		Color:   s.pickColor(),
	}
	if err := s.repo.AppendColumn(ctx, col); err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	s.changed(boardID)
	return col, nil
}

// Rename changes a column's title in place
func (s *service) Rename(ctx context.Context, id types.ColumnID, title string) error {
	title, err := normalizeTitle(title)
	if err != nil {
		return err
	}

	col, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateColumnTitle(ctx, id, title); err != nil {
		return fmt.Errorf("failed to rename column: %w", wrapNotFound(err, id))
	}

	s.changed(col.BoardID)
	return nil
}

// Recolor changes a column's palette color in place
func (s *service) Recolor(ctx context.Context, id types.ColumnID, color models.Color) error {
	if !color.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}

	col, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateColumnColor(ctx, id, color); err != nil {
		return fmt.Errorf("failed to recolor column: %w", wrapNotFound(err, id))
	}

	s.changed(col.BoardID)
	return nil
}

// Delete removes a column (business rules: must not be a default column, must not
// hold tasks). Remaining columns are shifted left to keep Order contiguous.
func (s *service) Delete(ctx context.Context, id types.ColumnID) error {
	col, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if col.IsDefault {
		return ErrDefaultColumnProtected
	}

	if err := s.repo.DeleteColumn(ctx, id); err != nil {
		if errors.Is(err, database.ErrColumnNotEmpty) {
			return fmt.Errorf("%w: %q: %v", ErrColumnNotEmpty, col.Title, err)
		}
		return fmt.Errorf("failed to delete column: %w", wrapNotFound(err, id))
	}

	s.changed(col.BoardID)
	return nil
}

// SwapAdjacent exchanges a column's Order with its neighbour in the given direction.
// At the board edge it does nothing and reports false.
func (s *service) SwapAdjacent(ctx context.Context, id types.ColumnID, dir Direction) (bool, error) {
	col, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}

	// Writes are computed from the stored order, never the cache
	columns, err := s.repo.GetColumnsByBoard(ctx, col.BoardID)
	if err != nil {
		return false, fmt.Errorf("failed to list columns: %w", err)
	}

	idx := indexOf(columns, id)
	if idx < 0 {
		return false, fmt.Errorf("%w: %s", ErrColumnNotFound, id)
	}

	neighbour := idx + int(dir)
	if neighbour < 0 || neighbour >= len(columns) {
		s.logger.Info("column already at board edge", "column_id", id, "direction", dir)
		return false, nil
	}

	other := columns[neighbour]
	err = s.repo.UpdateColumnOrders(ctx, col.BoardID, map[types.ColumnID]int{
		id:       other.Order,
		other.ID: columns[idx].Order,
	})
	if err != nil {
		s.Invalidate(col.BoardID)
		return false, fmt.Errorf("failed to swap columns: %w", err)
	}

	s.changed(col.BoardID)
	return true, nil
}

// ReorderAll assigns Order = index for each id. ids must be a permutation of the
// board's columns. Only columns whose Order changes are written.
func (s *service) ReorderAll(ctx context.Context, boardID types.BoardID, ids []types.ColumnID) error {
	columns, err := s.repo.GetColumnsByBoard(ctx, boardID)
	if err != nil {
		return fmt.Errorf("failed to list columns: %w", err)
	}

	current := make(map[types.ColumnID]int, len(columns))
	for _, c := range columns {
		current[c.ID] = c.Order
	}

	if len(ids) != len(columns) {
		return fmt.Errorf("%w: got %d ids for %d columns", ErrInvalidSequence, len(ids), len(columns))
	}

	changes := make(map[types.ColumnID]int)
	seen := make(map[types.ColumnID]bool, len(ids))
	for i, id := range ids {
		order, ok := current[id]
		if !ok {
			return fmt.Errorf("%w: unknown column %s", ErrInvalidSequence, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate column %s", ErrInvalidSequence, id)
		}
		seen[id] = true
		if order != i {
			changes[id] = i
		}
	}

	if len(changes) == 0 {
		return nil
	}

	if err := s.repo.UpdateColumnOrders(ctx, boardID, changes); err != nil {
		s.Invalidate(boardID)
		return fmt.Errorf("failed to reorder columns: %w", err)
	}

	s.changed(boardID)
	return nil
}

// Invalidate drops the cached column list for a board
func (s *service) Invalidate(boardID types.BoardID) {
	s.cacheMu.Lock()
	delete(s.cache, boardID)
	s.cacheMu.Unlock()
}

// changed runs after every successful write
func (s *service) changed(boardID types.BoardID) {
	s.Invalidate(boardID)
	if s.eventClient == nil {
		return
	}
	if err := events.PublishWithRetry(s.eventClient, events.BoardChanged(boardID.String()), 3); err != nil {
		s.logger.Warn("failed to publish column event", "board_id", boardID, "error", err)
	}
}

func (s *service) pickColor() models.Color {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return models.RandomColor(s.rng, s.palette)
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func indexOf(columns []*models.Column, id types.ColumnID) int {
	for i, c := range columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func cloneColumns(columns []*models.Column) []*models.Column {
	out := make([]*models.Column, len(columns))
	for i, c := range columns {
		out[i] = c.Clone()
	}
	return out
}

func wrapNotFound(err error, id types.ColumnID) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, id)
	}
	return err
}
