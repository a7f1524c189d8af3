package components

const (
	TaskCardHeight        = 4  // border plus title and footer lines
	columnBoxWidth        = 44 // 40 content + 2 padding + 2 border
	taskCardWidth         = 38 // fits the column content area
	taskTitleMaxLength    = 30 // display length before truncation
	taskTitlePaddedLength = 33 // padded so the link indicator aligns on the right
)

// taskViewFrame is the task view's border plus horizontal padding
const taskViewFrame = 6

// TaskViewWidth sizes the task view box for a screen width
func TaskViewWidth(screenWidth int) int {
	return min(max(screenWidth*3/5, 40), 100)
}

// TaskViewContentWidth is the text width inside the task view box
func TaskViewContentWidth(screenWidth int) int {
	return TaskViewWidth(screenWidth) - taskViewFrame
}
