package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ReplacedSpace17/Example-Dragg/internal/config"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Grab     key.Binding
	Drop     key.Binding
	Cancel   key.Binding
	Input    key.Binding
	Submit   key.Binding
	Export   key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// newKeyMapFromConfig creates a keyMap from configuration
func newKeyMapFromConfig(cfg *config.Config) keyMap {
	kb := cfg.Keybindings

	return keyMap{
		Up:       config.BuildKeyBinding(kb.Up, formatKeyHelp(kb.Up), "move up"),
		Down:     config.BuildKeyBinding(kb.Down, formatKeyHelp(kb.Down), "move down"),
		Left:     config.BuildKeyBinding(kb.Left, formatKeyHelp(kb.Left), "previous column"),
		Right:    config.BuildKeyBinding(kb.Right, formatKeyHelp(kb.Right), "next column"),
		Grab:     config.BuildKeyBinding(kb.Grab, formatKeyHelp(kb.Grab), "pick up task"),
		Drop:     config.BuildKeyBinding(kb.Drop, formatKeyHelp(kb.Drop), "drop task"),
		Cancel:   config.BuildKeyBinding(kb.Cancel, formatKeyHelp(kb.Cancel), "cancel"),
		Input:    config.BuildKeyBinding(kb.Input, formatKeyHelp(kb.Input), "new task"),
		Submit:   config.BuildKeyBinding(kb.Submit, formatKeyHelp(kb.Submit), "add task"),
		Export:   config.BuildKeyBinding(kb.Export, formatKeyHelp(kb.Export), "export board"),
		Settings: config.BuildKeyBinding(kb.Settings, formatKeyHelp(kb.Settings), "settings"),
		Help:     config.BuildKeyBinding(kb.Help, formatKeyHelp(kb.Help), "toggle help"),
		Quit:     config.BuildKeyBinding(kb.Quit, formatKeyHelp(kb.Quit), "quit"),
	}
}

// formatKeyHelp formats a slice of keys for display in help
func formatKeyHelp(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	// Take first two keys for display
	if len(keys) == 1 {
		return formatKey(keys[0])
	}
	first, second := formatKey(keys[0]), formatKey(keys[1])
	if first == second {
		return first
	}
	return first + "/" + second
}

// formatKey formats a single key for display
func formatKey(k string) string {
	if k == " " {
		return "space"
	}
	// Convert key names to symbols where appropriate
	k = strings.ReplaceAll(k, "up", "↑")
	k = strings.ReplaceAll(k, "down", "↓")
	k = strings.ReplaceAll(k, "left", "←")
	k = strings.ReplaceAll(k, "right", "→")
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Input, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Grab, k.Drop, k.Cancel},
		{k.Input, k.Submit, k.Export},
		{k.Settings, k.Help, k.Quit},
	}
}

// dragKeyMap is the help shown while a task is held
type dragKeyMap struct {
	keyMap
}

func (d dragKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{d.Left, d.Right, d.Up, d.Down, d.Drop, d.Cancel}
}

// inputKeyMap is the help shown while typing a task
type inputKeyMap struct {
	keyMap
}

func (i inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{i.Submit, i.Cancel}
}
