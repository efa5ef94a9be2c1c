package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ReplacedSpace17/Example-Dragg/internal/config"
)

// styleMap holds all the styles used in the UI
type styleMap struct {
	columnStyle        lipgloss.Style
	focusedColumnStyle lipgloss.Style
	dropColumnStyle    lipgloss.Style
	cardStyle          lipgloss.Style
	cursorCardStyle    lipgloss.Style
	draggedCardStyle   lipgloss.Style
	dropCardStyle      lipgloss.Style
	titleStyle         lipgloss.Style
	columnTitleStyle   lipgloss.Style
	statusStyle        lipgloss.Style
	mutedStyle         lipgloss.Style
}

// newStyleMapFromConfig creates a styleMap from configuration
func newStyleMapFromConfig(cfg *config.Config) styleMap {
	colors := cfg.Colors
	card := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	column := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

	return styleMap{
		columnStyle:        column.BorderForeground(lipgloss.Color(colors.Column)),
		focusedColumnStyle: column.BorderForeground(lipgloss.Color(colors.FocusedColumn)),
		dropColumnStyle:    column.BorderForeground(lipgloss.Color(colors.DropColumn)),
		cardStyle:          card.BorderForeground(lipgloss.Color(colors.Card)),
		cursorCardStyle:    card.BorderForeground(lipgloss.Color(colors.Cursor)).Bold(true),
		draggedCardStyle:   card.BorderStyle(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color(colors.Dragged)).Foreground(lipgloss.Color(colors.Dragged)),
		dropCardStyle:      card.BorderForeground(lipgloss.Color(colors.DropColumn)),
		titleStyle:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Title)),
		columnTitleStyle:   lipgloss.NewStyle().Bold(true),
		statusStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Status)).Italic(true),
		mutedStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted)),
	}
}
