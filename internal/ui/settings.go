package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
)

// settingsSection represents different sections in the settings view
type settingsSection int

const (
	settingsSectionColumns settingsSection = iota
	settingsSectionKeybindings
)

// settingsItem is one editable row of the settings view
type settingsItem struct {
	name  string
	value string
}

// openSettings switches to the settings view
func (m uiModel) openSettings() (tea.Model, tea.Cmd) {
	m.mode = modeSettings
	m.settingsCursor = 0
	return m, nil
}

// updateSettings handles updates in settings mode
func (m uiModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// cursor blink and other editor messages
		if m.settingsInput.Focused() {
			var cmd tea.Cmd
			m.settingsInput, cmd = m.settingsInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// If editing, handle text input
	if m.settingsInput.Focused() {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.settingsInput.Blur()
			return m, nil
		case tea.KeyEnter:
			m.saveSettingsEdit()
			m.settingsInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.settingsInput, cmd = m.settingsInput.Update(msg)
		return m, cmd
	}

	switch {
	case keyMsg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Quit), key.Matches(keyMsg, m.keys.Settings), key.Matches(keyMsg, m.keys.Cancel):
		m.mode = modeBoard
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.settingsCursor < len(m.settingsItems())-1 {
			m.settingsCursor++
		}

	case key.Matches(keyMsg, m.keys.Left):
		if m.settingsSection > settingsSectionColumns {
			m.settingsSection--
			m.settingsCursor = 0
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.settingsSection < settingsSectionKeybindings {
			m.settingsSection++
			m.settingsCursor = 0
		}

	case key.Matches(keyMsg, m.keys.Submit):
		return m.startSettingsEdit()
	}

	return m, nil
}

// settingsItems lists the rows of the current section
func (m uiModel) settingsItems() []settingsItem {
	switch m.settingsSection {
	case settingsSectionColumns:
		items := make([]settingsItem, 0, 4)
		for _, col := range model.Columns() {
			items = append(items, settingsItem{name: string(col), value: m.config.ColumnTitle(col)})
		}
		return append(items, settingsItem{name: "placeholder", value: m.config.Columns.Placeholder})

	case settingsSectionKeybindings:
		bindings := m.config.GetAllKeybindings()
		items := make([]settingsItem, 0, len(bindings))
		for action, keys := range bindings {
			items = append(items, settingsItem{name: action, value: joinKeys(keys)})
		}
		sort.Slice(items, func(i, j int) bool { return items[i].name < items[j].name })
		return items
	}
	return nil
}

func (m uiModel) startSettingsEdit() (tea.Model, tea.Cmd) {
	items := m.settingsItems()
	if m.settingsCursor >= len(items) {
		return m, nil
	}

	m.settingsInput.SetValue(items[m.settingsCursor].value)
	if m.settingsSection == settingsSectionKeybindings {
		m.settingsInput.Placeholder = "keys separated by commas (e.g. up,k)"
	} else {
		m.settingsInput.Placeholder = "title"
	}
	m.settingsInput.CursorEnd()
	m.settingsInput.Focus()
	return m, textinput.Blink
}

// saveSettingsEdit applies the edited value and saves the config file
func (m *uiModel) saveSettingsEdit() {
	items := m.settingsItems()
	if m.settingsCursor >= len(items) {
		return
	}
	item := items[m.settingsCursor]
	value := strings.TrimSpace(m.settingsInput.Value())

	var err error
	switch m.settingsSection {
	case settingsSectionColumns:
		err = m.config.UpdateColumnText(item.name, value)
	case settingsSectionKeybindings:
		keys := splitKeys(value)
		if len(keys) == 0 {
			err = fmt.Errorf("%s needs at least one key", item.name)
		} else {
			err = m.config.UpdateKeybinding(item.name, keys)
		}
	}
	if err != nil {
		m.setStatus(fmt.Sprintf("Error: %v", err))
		return
	}

	if err := m.config.Save(); err != nil {
		m.logger.Error("saving config failed", "err", err)
		m.setStatus(fmt.Sprintf("Error saving config: %v", err))
		return
	}
	m.logger.Info("config updated", "setting", item.name, "path", m.config.Path())

	// Reload keybindings and styles from updated config
	m.keys = newKeyMapFromConfig(m.config)
	m.styles = newStyleMapFromConfig(m.config)
	m.textinput.Placeholder = m.config.Columns.Placeholder
	m.setStatus(fmt.Sprintf("Updated '%s' (saved)", item.name))
}

// joinKeys renders keys for editing; the space key is shown by name
func joinKeys(keys []string) string {
	seen := make(map[string]bool, len(keys))
	var out []string
	for _, k := range keys {
		k = formatKeyName(k)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return strings.Join(out, ",")
}

// splitKeys parses a comma separated key list. "space" also binds the
// literal space rune so both spellings of the key match.
func splitKeys(s string) []string {
	var keys []string
	space := false
	for _, k := range strings.Split(s, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if k == "space" {
			space = true
		}
		keys = append(keys, k)
	}
	if space {
		keys = append([]string{" "}, keys...)
	}
	return keys
}

func formatKeyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// viewSettings renders the settings view
func (m uiModel) viewSettings() string {
	var content strings.Builder

	content.WriteString(m.styles.titleStyle.Render("Settings") + "\n\n")

	// Tab selector
	tabStyle := lipgloss.NewStyle().Padding(0, 2)
	activeTabStyle := lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color(m.config.Colors.Title))

	var tabs []string
	for section, name := range []string{"Columns", "Keybindings"} {
		if settingsSection(section) == m.settingsSection {
			tabs = append(tabs, activeTabStyle.Render("["+name+"]"))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	content.WriteString(strings.Join(tabs, " ") + "\n\n")

	instructions := "←/→: Switch tabs • ↑/↓: Navigate • Enter: Edit • q/esc: Back"
	content.WriteString(m.styles.statusStyle.Render(instructions) + "\n\n")

	for i, item := range m.settingsItems() {
		cursor := "  "
		if i == m.settingsCursor && !m.settingsInput.Focused() {
			cursor = "▶ "
		}
		content.WriteString(fmt.Sprintf("%s%-12s : %s\n", cursor, item.name, item.value))
	}

	if m.settingsInput.Focused() {
		content.WriteString("\n")
		content.WriteString(m.settingsInput.View() + "\n")
		content.WriteString(m.styles.statusStyle.Render("Enter: Save • ESC: Cancel") + "\n")
	}

	if m.now().Before(m.statusExpiry) && m.statusMsg != "" {
		content.WriteString("\n" + m.styles.statusStyle.Render(m.statusMsg) + "\n")
	}

	return content.String()
}
