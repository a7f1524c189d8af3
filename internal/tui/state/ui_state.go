package state

import "github.com/thenoetrevino/tablero/internal/types"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keys are active and what is drawn over the board.
type Mode int

const (
	NormalMode              Mode = iota // Navigating the board
	DragMode                            // Carrying a task or column
	AddColumnMode                       // Typing a new column title
	RenameColumnMode                    // Editing the selected column title
	DeleteColumnConfirmMode             // Confirming column deletion
	TaskViewMode                        // Reading the selected task
	HelpMode                            // Key reference
)

func (m Mode) String() string {
	switch m {
	case DragMode:
		return "DRAG"
	case AddColumnMode:
		return "ADD COLUMN"
	case RenameColumnMode:
		return "RENAME"
	case DeleteColumnConfirmMode:
		return "DELETE"
	case TaskViewMode:
		return "TASK"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// Column layout: 40 content + 2 padding + 2 border + 2 spacing
const (
	ColumnWidth   = 46
	reservedWidth = 4
	headerHeight  = 2
	footerHeight  = 2
)

// UIState manages selection, scrolling, terminal size and mode
type UIState struct {
	selectedColumn int
	selectedTask   int

	width  int
	height int
	mode   Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int
	viewportSize   int

	// first visible task per column
	taskScrollOffsets map[types.ColumnID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1,
		taskScrollOffsets: make(map[types.ColumnID]int),
	}
}

func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(0, index)
}

func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = max(0, index)
}

func (s *UIState) Width() int {
	return s.width
}

func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal size and recalculates how many columns fit
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
	if width == 0 {
		s.viewportSize = 1
		return
	}
	s.viewportSize = max(1, (width-reservedWidth)/ColumnWidth)
}

// ContentHeight is the height left for columns once the header and status bar are drawn
func (s *UIState) ContentHeight() int {
	return max(s.height-headerHeight-footerHeight, 5)
}

// VisibleTasks is how many task cards fit in a column
func (s *UIState) VisibleTasks() int {
	const cardHeight = 4
	const columnChrome = 5 // border, header, scroll indicators
	return max(1, (s.ContentHeight()-columnChrome)/cardHeight)
}

func (s *UIState) Mode() Mode {
	return s.mode
}

func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// EnsureSelectionVisible scrolls the viewport so the selected column is on screen
func (s *UIState) EnsureSelectionVisible(columnsLen int) {
	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = s.selectedColumn - s.viewportSize + 1
	}
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
}

// ResetSelection moves the cursor back to the first task of the first column
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.viewportOffset = 0
}

// TaskScrollOffset returns the index of the first visible task in a column
func (s *UIState) TaskScrollOffset(id types.ColumnID) int {
	return s.taskScrollOffsets[id]
}

// EnsureTaskVisible scrolls a column so the task at idx is on screen
func (s *UIState) EnsureTaskVisible(id types.ColumnID, idx int) {
	visible := s.VisibleTasks()
	offset := s.taskScrollOffsets[id]
	if idx < offset {
		offset = idx
	}
	if idx >= offset+visible {
		offset = idx - visible + 1
	}
	s.taskScrollOffsets[id] = max(0, offset)
}

// ForgetColumn drops the scroll offset of a deleted column
func (s *UIState) ForgetColumn(id types.ColumnID) {
	delete(s.taskScrollOffsets, id)
}
