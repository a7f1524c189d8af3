// Package board provisions boards and their default columns.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ColumnTemplate describes a column seeded onto every new board
type ColumnTemplate struct {
	Title    string
	Color    models.Color
	Terminal bool
}

// DefaultTemplates is To Do / In Progress / Done, with Done terminal
var DefaultTemplates = []ColumnTemplate{
	{Title: "To Do", Color: models.ColorBlue},
	{Title: "In Progress", Color: models.ColorYellow},
	{Title: "Done", Color: models.ColorGreen, Terminal: true},
}

// Service defines board-level operations
type Service interface {
	Create(ctx context.Context, name string) (*models.Board, []*models.Column, error)
	List(ctx context.Context) ([]*models.Board, error)
	Get(ctx context.Context, id types.BoardID) (*models.Board, error)
	Resolve(ctx context.Context, ref string) (*models.Board, error)
	SetTerminalColumn(ctx context.Context, id types.BoardID, columnID *types.ColumnID) error
	Delete(ctx context.Context, id types.BoardID) error
}

// Store is the persistence the board service needs
type Store interface {
	database.BoardRepository
	database.ColumnReader
}

type service struct {
	repo      Store
	templates []ColumnTemplate
}

// NewService creates a board service that seeds templates onto new boards.
// A nil or empty templates slice uses DefaultTemplates.
func NewService(repo Store, templates []ColumnTemplate) Service {
	if len(templates) == 0 {
		templates = DefaultTemplates
	}
	return &service{repo: repo, templates: templates}
}

// Create inserts a board together with its default columns in one transaction
func (s *service) Create(ctx context.Context, name string) (*models.Board, []*models.Column, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, ErrEmptyName
	}
	if len(name) > 100 {
		return nil, nil, ErrNameTooLong
	}

	board := &models.Board{ID: types.NewBoardID(), Name: name}
	columns := make([]*models.Column, len(s.templates))
	for i, tmpl := range s.templates {
		color := tmpl.Color
		if !color.Valid() {
			color = models.ColorGray
		}
		columns[i] = &models.Column{
			ID:        types.NewColumnID(),
			BoardID:   board.ID,
			Title:     tmpl.Title,
			Color:     color,
			Order:     i,
			IsDefault: true,
		}
		if tmpl.Terminal {
			id := columns[i].ID
			board.TerminalColumnID = &id
		}
	}

	if err := s.repo.CreateBoard(ctx, board, columns); err != nil {
		return nil, nil, fmt.Errorf("failed to create board: %w", err)
	}
	return board, columns, nil
}

// List returns every board
func (s *service) List(ctx context.Context) ([]*models.Board, error) {
	return s.repo.GetAllBoards(ctx)
}

// Get retrieves a board
func (s *service) Get(ctx context.Context, id types.BoardID) (*models.Board, error) {
	board, err := s.repo.GetBoardByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	return board, nil
}

// Resolve finds a board by id, or failing that by case-insensitive name
func (s *service) Resolve(ctx context.Context, ref string) (*models.Board, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrEmptyName
	}

	board, err := s.repo.GetBoardByID(ctx, types.BoardID(ref))
	if err == nil {
		return board, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	boards, err := s.repo.GetAllBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	var match *models.Board
	for _, b := range boards {
		if !strings.EqualFold(b.Name, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousName, ref)
		}
		match = b
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, ref)
	}
	return match, nil
}

// SetTerminalColumn designates the column that counts as done. nil clears it.
func (s *service) SetTerminalColumn(ctx context.Context, id types.BoardID, columnID *types.ColumnID) error {
	if columnID != nil {
		col, err := s.repo.GetColumnByID(ctx, *columnID)
		if err != nil {
			return fmt.Errorf("failed to resolve column: %w", err)
		}
		if col.BoardID != id {
			return ErrColumnNotOnBoard
		}
	}
	if err := s.repo.SetTerminalColumn(ctx, id, columnID); err != nil {
		return wrapNotFound(err, id)
	}
	return nil
}

// Delete removes a board and everything on it
func (s *service) Delete(ctx context.Context, id types.BoardID) error {
	if err := s.repo.DeleteBoard(ctx, id); err != nil {
		return wrapNotFound(err, id)
	}
	return nil
}

func wrapNotFound(err error, id types.BoardID) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	return err
}
