package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"

	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
)

// Config represents the application configuration
type Config struct {
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Colors      ColorsConfig      `toml:"colors"`
	Columns     ColumnsConfig     `toml:"columns"`
	UI          UIConfig          `toml:"ui"`
	Log         LogConfig         `toml:"log"`

	path string
	// broken is set on the defaults returned for an unparsable file
	broken bool
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Up       []string `toml:"up"`
	Down     []string `toml:"down"`
	Left     []string `toml:"left"`
	Right    []string `toml:"right"`
	Grab     []string `toml:"grab"`
	Drop     []string `toml:"drop"`
	Cancel   []string `toml:"cancel"`
	Input    []string `toml:"input"`
	Submit   []string `toml:"submit"`
	Export   []string `toml:"export"`
	Settings []string `toml:"settings"`
	Help     []string `toml:"help"`
	Quit     []string `toml:"quit"`
}

// ColorsConfig holds color configurations
type ColorsConfig struct {
	Column        string `toml:"column"`
	FocusedColumn string `toml:"focused_column"`
	DropColumn    string `toml:"drop_column"`
	Card          string `toml:"card"`
	Cursor        string `toml:"cursor"`
	Dragged       string `toml:"dragged"`
	Title         string `toml:"title"`
	Status        string `toml:"status"`
	Muted         string `toml:"muted"`
}

// ColumnsConfig holds the display titles of the board columns
type ColumnsConfig struct {
	Todo        string `toml:"todo"`
	Doing       string `toml:"doing"`
	Done        string `toml:"done"`
	Placeholder string `toml:"placeholder"`
}

// UIConfig holds UI-related configurations
type UIConfig struct {
	ColumnWidth int    `toml:"column_width"`
	Mouse       *bool  `toml:"mouse"`
	ExportPath  string `toml:"export_path"`
}

// LogConfig controls the file logger
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	mouse := true
	return &Config{
		Keybindings: KeybindingsConfig{
			Up:       []string{"up", "k"},
			Down:     []string{"down", "j"},
			Left:     []string{"left", "h"},
			Right:    []string{"right", "l"},
			Grab:     []string{" ", "space", "m"},
			Drop:     []string{" ", "space", "enter"},
			Cancel:   []string{"esc"},
			Input:    []string{"a", "i"},
			Submit:   []string{"enter"},
			Export:   []string{"ctrl+s"},
			Settings: []string{","},
			Help:     []string{"?"},
			Quit:     []string{"q", "ctrl+c"},
		},
		Colors: ColorsConfig{
			Column:        "240",
			FocusedColumn: "99",
			DropColumn:    "220",
			Card:          "246",
			Cursor:        "141",
			Dragged:       "202",
			Title:         "99",
			Status:        "241",
			Muted:         "243",
		},
		Columns: ColumnsConfig{
			Todo:        "To do",
			Doing:       "In progress",
			Done:        "Done",
			Placeholder: "New task",
		},
		UI: UIConfig{
			ColumnWidth: 30,
			Mouse:       &mouse,
			ExportPath:  "kanban.org",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	return filepath.Join(configDir, "kanban", "config.toml"), nil
}

// LoadConfig loads the configuration from the default config file
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads the configuration from path.
// A missing file is created with the defaults. When the file cannot be
// parsed the defaults are returned together with the error.
func LoadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaultCfg := DefaultConfig()
		defaultCfg.path = configPath
		if err := defaultCfg.Save(); err != nil {
			// If we can't save, just return defaults
			return defaultCfg, nil
		}
		return defaultCfg, nil
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		// The defaults still point at configPath so callers that fall
		// back to them never save over a different file
		fallback := DefaultConfig()
		fallback.path = configPath
		fallback.broken = true
		return fallback, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.path = configPath

	// Merge with defaults for any missing values
	config.fillDefaults()

	return &config, nil
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Save saves the configuration to the file it was loaded from
func (c *Config) Save() error {
	if c.broken {
		return fmt.Errorf("config file %s could not be parsed; not overwriting it", c.path)
	}

	configPath := c.path
	if configPath == "" {
		p, err := GetConfigPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// fillDefaults fills in any missing config values with defaults
func (c *Config) fillDefaults() {
	defaults := DefaultConfig()

	fillKeys := func(dst *[]string, def []string) {
		if len(*dst) == 0 {
			*dst = def
		}
	}
	fillKeys(&c.Keybindings.Up, defaults.Keybindings.Up)
	fillKeys(&c.Keybindings.Down, defaults.Keybindings.Down)
	fillKeys(&c.Keybindings.Left, defaults.Keybindings.Left)
	fillKeys(&c.Keybindings.Right, defaults.Keybindings.Right)
	fillKeys(&c.Keybindings.Grab, defaults.Keybindings.Grab)
	fillKeys(&c.Keybindings.Drop, defaults.Keybindings.Drop)
	fillKeys(&c.Keybindings.Cancel, defaults.Keybindings.Cancel)
	fillKeys(&c.Keybindings.Input, defaults.Keybindings.Input)
	fillKeys(&c.Keybindings.Submit, defaults.Keybindings.Submit)
	fillKeys(&c.Keybindings.Export, defaults.Keybindings.Export)
	fillKeys(&c.Keybindings.Settings, defaults.Keybindings.Settings)
	fillKeys(&c.Keybindings.Help, defaults.Keybindings.Help)
	fillKeys(&c.Keybindings.Quit, defaults.Keybindings.Quit)

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&c.Colors.Column, defaults.Colors.Column)
	fill(&c.Colors.FocusedColumn, defaults.Colors.FocusedColumn)
	fill(&c.Colors.DropColumn, defaults.Colors.DropColumn)
	fill(&c.Colors.Card, defaults.Colors.Card)
	fill(&c.Colors.Cursor, defaults.Colors.Cursor)
	fill(&c.Colors.Dragged, defaults.Colors.Dragged)
	fill(&c.Colors.Title, defaults.Colors.Title)
	fill(&c.Colors.Status, defaults.Colors.Status)
	fill(&c.Colors.Muted, defaults.Colors.Muted)

	fill(&c.Columns.Todo, defaults.Columns.Todo)
	fill(&c.Columns.Doing, defaults.Columns.Doing)
	fill(&c.Columns.Done, defaults.Columns.Done)
	fill(&c.Columns.Placeholder, defaults.Columns.Placeholder)

	// Columns narrower than this cannot show a bordered card
	if c.UI.ColumnWidth < 12 {
		c.UI.ColumnWidth = defaults.UI.ColumnWidth
	}
	if c.UI.Mouse == nil {
		c.UI.Mouse = defaults.UI.Mouse
	}
	fill(&c.UI.ExportPath, defaults.UI.ExportPath)

	fill(&c.Log.Level, defaults.Log.Level)
}

// BuildKeyBinding creates a key.Binding from config
func BuildKeyBinding(keys []string, help string, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(help, description),
	)
}

// ColumnTitle returns the display title for a column
func (c *Config) ColumnTitle(col model.ColumnID) string {
	switch col {
	case model.ColumnTodo:
		return c.Columns.Todo
	case model.ColumnDoing:
		return c.Columns.Doing
	case model.ColumnDone:
		return c.Columns.Done
	}
	return string(col)
}

// UpdateColumnText changes a column title or the input placeholder
func (c *Config) UpdateColumnText(name, text string) error {
	if text == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	switch name {
	case string(model.ColumnTodo):
		c.Columns.Todo = text
	case string(model.ColumnDoing):
		c.Columns.Doing = text
	case string(model.ColumnDone):
		c.Columns.Done = text
	case "placeholder":
		c.Columns.Placeholder = text
	default:
		return fmt.Errorf("unknown column setting: %s", name)
	}
	return nil
}

// MouseEnabled reports whether mouse drag and drop is turned on
func (c *Config) MouseEnabled() bool {
	return c.UI.Mouse == nil || *c.UI.Mouse
}

// UpdateKeybinding updates a keybinding in the configuration
func (c *Config) UpdateKeybinding(action string, keys []string) error {
	switch action {
	case "up":
		c.Keybindings.Up = keys
	case "down":
		c.Keybindings.Down = keys
	case "left":
		c.Keybindings.Left = keys
	case "right":
		c.Keybindings.Right = keys
	case "grab":
		c.Keybindings.Grab = keys
	case "drop":
		c.Keybindings.Drop = keys
	case "cancel":
		c.Keybindings.Cancel = keys
	case "input":
		c.Keybindings.Input = keys
	case "submit":
		c.Keybindings.Submit = keys
	case "export":
		c.Keybindings.Export = keys
	case "settings":
		c.Keybindings.Settings = keys
	case "help":
		c.Keybindings.Help = keys
	case "quit":
		c.Keybindings.Quit = keys
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
	return nil
}

// GetAllKeybindings returns a map of all keybindings
func (c *Config) GetAllKeybindings() map[string][]string {
	return map[string][]string{
		"up":       c.Keybindings.Up,
		"down":     c.Keybindings.Down,
		"left":     c.Keybindings.Left,
		"right":    c.Keybindings.Right,
		"grab":     c.Keybindings.Grab,
		"drop":     c.Keybindings.Drop,
		"cancel":   c.Keybindings.Cancel,
		"input":    c.Keybindings.Input,
		"submit":   c.Keybindings.Submit,
		"export":   c.Keybindings.Export,
		"settings": c.Keybindings.Settings,
		"help":     c.Keybindings.Help,
		"quit":     c.Keybindings.Quit,
	}
}
