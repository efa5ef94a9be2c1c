package ui

import "github.com/ReplacedSpace17/Example-Dragg/internal/model"

// Board geometry, in terminal cells. Rendering and mouse hit-testing both
// read these so a click always lands on what was drawn there.
const (
	boardTop      = 2 // title line and a blank line
	columnGap     = 2
	columnBorder  = 1
	columnHeader  = 2 // column title and a blank line
	cardHeight    = 3 // bordered single-line card
	inputSpacing  = 1
	minCardSlots  = 1
	columnPadding = columnBorder * 2
)

type hitKind int

const (
	hitNone hitKind = iota
	hitTask
	hitColumn
	hitInput
)

// hit is what lies under a terminal cell
type hit struct {
	kind   hitKind
	column model.ColumnID
	index  int
}

// layout describes where the board is drawn
type layout struct {
	columnWidth int // inner width of a column
	slots       int // card rows every column reserves
}

func (m uiModel) layout() layout {
	slots := minCardSlots
	for _, col := range model.Columns() {
		if n := m.state.Board.ColumnLen(col); n > slots {
			slots = n
		}
	}
	return layout{columnWidth: m.config.UI.ColumnWidth, slots: slots}
}

func (l layout) outerWidth() int {
	return l.columnWidth + columnPadding
}

func (l layout) columnX(i int) int {
	return i * (l.outerWidth() + columnGap)
}

// innerHeight is the number of content lines inside a column border
func (l layout) innerHeight() int {
	return columnHeader + l.slots*cardHeight + inputSpacing + 1
}

func (l layout) boxHeight() int {
	return l.innerHeight() + columnPadding
}

// cardsTop is the row of the first card relative to the column's top border
func (l layout) cardsTop() int {
	return columnBorder + columnHeader
}

// inputRow is the row of the input line relative to the column's top border
func (l layout) inputRow() int {
	return l.cardsTop() + l.slots*cardHeight + inputSpacing
}

// hitTest resolves the cell at (x, y) against the board
func (m uiModel) hitTest(x, y int) hit {
	l := m.layout()

	ry := y - boardTop
	if ry < 0 || ry >= l.boxHeight() {
		return hit{kind: hitNone}
	}

	for i, col := range model.Columns() {
		left := l.columnX(i)
		if x < left || x >= left+l.outerWidth() {
			continue
		}

		if ry >= l.cardsTop() {
			idx := (ry - l.cardsTop()) / cardHeight
			if idx < m.state.Board.ColumnLen(col) {
				return hit{kind: hitTask, column: col, index: idx}
			}
		}
		if ry == l.inputRow() {
			return hit{kind: hitInput, column: col, index: -1}
		}
		return hit{kind: hitColumn, column: col, index: -1}
	}

	return hit{kind: hitNone}
}

// target converts a hit into the drop target of a drag gesture
func (m uiModel) target(h hit) *model.Target {
	switch h.kind {
	case hitTask:
		task, ok := m.state.Board.TaskAt(h.column, h.index)
		if !ok {
			return nil
		}
		return model.OverTask(task.ID)
	case hitColumn, hitInput:
		return model.OverColumn(h.column)
	}
	return nil
}
