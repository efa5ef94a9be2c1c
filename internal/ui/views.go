package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
)

func (m uiModel) View() string {
	if m.mode == modeSettings {
		return m.viewSettings()
	}

	// Build footer (status + help)
	var footer strings.Builder

	// Status message
	if m.now().Before(m.statusExpiry) && m.statusMsg != "" {
		footer.WriteString(m.styles.statusStyle.Render(m.statusMsg))
		footer.WriteString("\n")
	}

	// Help
	switch m.mode {
	case modeDrag:
		footer.WriteString(m.help.View(dragKeyMap{m.keys}))
	case modeInput:
		footer.WriteString(m.help.View(inputKeyMap{m.keys}))
	default:
		footer.WriteString(m.help.View(m.keys))
	}

	footerHeight := lipgloss.Height(footer.String())

	// Build main content
	var content strings.Builder

	// Title, exactly one line followed by a blank line (boardTop)
	content.WriteString(m.styles.titleStyle.Render("Kanban"))
	switch {
	case m.mode == modeDrag || m.mouseDrag:
		content.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.config.Colors.Dragged)).Render(" [MOVING]"))
	case m.mode == modeInput:
		content.WriteString(m.styles.mutedStyle.Render(" [NEW TASK]"))
	}
	content.WriteString("\n\n")

	content.WriteString(m.renderBoard())
	content.WriteString("\n")

	// Combine content and footer with padding
	contentHeight := lipgloss.Height(content.String())
	paddingNeeded := m.height - contentHeight - footerHeight
	if paddingNeeded < 0 {
		paddingNeeded = 0
	}

	var result strings.Builder
	result.WriteString(content.String())
	if paddingNeeded > 0 {
		result.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	result.WriteString(footer.String())

	return result.String()
}

// renderBoard draws the columns side by side
func (m uiModel) renderBoard() string {
	l := m.layout()
	gap := strings.Repeat(" ", columnGap)

	var parts []string
	for i := range model.Columns() {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, m.renderColumn(i, l))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m uiModel) renderColumn(i int, l layout) string {
	col, _ := model.ColumnAt(i)
	tasks := m.state.Board.Tasks(col)

	lines := []string{
		m.styles.columnTitleStyle.Render(truncate(m.config.ColumnTitle(col), l.columnWidth)),
		"",
	}

	for idx, task := range tasks {
		card := m.cardStyle(col, idx, task).
			Width(l.columnWidth - columnPadding).
			Render(truncate(task.Label, l.columnWidth-columnPadding))
		lines = append(lines, strings.Split(card, "\n")...)
	}
	for n := len(tasks) * cardHeight; n < l.slots*cardHeight; n++ {
		lines = append(lines, "")
	}

	lines = append(lines, "")
	lines = append(lines, m.renderInput(col, l))

	return m.columnStyle(i, col, len(tasks)).
		Width(l.columnWidth).
		Render(strings.Join(lines, "\n"))
}

// renderInput draws the pending input line at the bottom of a column
func (m uiModel) renderInput(col model.ColumnID, l layout) string {
	if m.mode == modeInput && m.focusedColumn() == col {
		return ansi.Truncate(m.textinput.View(), l.columnWidth, "")
	}
	if pending := m.state.PendingFor(col); pending != "" {
		return truncate("+ "+pending, l.columnWidth)
	}
	return m.styles.mutedStyle.Render(truncate("+ "+m.config.Columns.Placeholder, l.columnWidth))
}

// cardStyle picks the style of a card from the drag and cursor state
func (m uiModel) cardStyle(col model.ColumnID, idx int, task model.Task) lipgloss.Style {
	if task.ID == m.state.Active {
		return m.styles.draggedCardStyle
	}
	focused := m.focusedColumn() == col && m.cursor == idx
	switch {
	case m.mode == modeDrag && focused:
		return m.styles.dropCardStyle
	case m.mouseDrag && m.hover.kind == hitTask && m.hover.column == col && m.hover.index == idx:
		return m.styles.dropCardStyle
	case m.mode == modeBoard && focused:
		return m.styles.cursorCardStyle
	}
	return m.styles.cardStyle
}

// columnStyle highlights the column that would receive a drop
func (m uiModel) columnStyle(i int, col model.ColumnID, n int) lipgloss.Style {
	switch {
	case m.mode == modeDrag && m.focus == i && m.cursor >= n:
		return m.styles.dropColumnStyle
	case m.mouseDrag && m.hover.column == col && (m.hover.kind == hitColumn || m.hover.kind == hitInput):
		return m.styles.dropColumnStyle
	case m.focus == i:
		return m.styles.focusedColumnStyle
	}
	return m.styles.columnStyle
}

// truncate fits a label on one line of the given width
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
