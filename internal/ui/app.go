package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ReplacedSpace17/Example-Dragg/internal/config"
	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
)

type viewMode int

const (
	modeBoard viewMode = iota
	modeDrag
	modeInput
	modeSettings
)

type uiModel struct {
	state        model.State
	config       *config.Config
	logger       *log.Logger
	mode         viewMode
	help         help.Model
	keys         keyMap
	styles       styleMap
	width        int
	height       int
	focus        int // index of the focused column
	cursor       int // index of the selected task; len(tasks) is the column surface while dragging
	statusMsg    string
	statusExpiry time.Time
	textinput    textinput.Model
	mouseDrag    bool
	hover        hit
	now          func() time.Time

	settingsSection settingsSection
	settingsCursor  int
	settingsInput   textinput.Model
}

func initialModel(board model.Board, cfg *config.Config, logger *log.Logger) uiModel {
	ti := textinput.New()
	ti.Placeholder = cfg.Columns.Placeholder
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = cfg.UI.ColumnWidth - 4

	si := textinput.New()
	si.CharLimit = 100
	si.Width = 50

	h := help.New()
	h.ShowAll = false

	return uiModel{
		state:         model.NewState(board),
		config:        cfg,
		logger:        logger,
		mode:          modeBoard,
		help:          h,
		keys:          newKeyMapFromConfig(cfg),
		styles:        newStyleMapFromConfig(cfg),
		textinput:     ti,
		settingsInput: si,
		now:           time.Now,
	}
}

func (m uiModel) Init() tea.Cmd {
	return nil
}

func (m *uiModel) setStatus(msg string) {
	m.statusMsg = msg
	m.statusExpiry = m.now().Add(3 * time.Second)
}

// focusedColumn returns the column under the keyboard focus
func (m uiModel) focusedColumn() model.ColumnID {
	col, _ := model.ColumnAt(m.focus)
	return col
}

// selectedTask returns the task under the cursor, if any
func (m uiModel) selectedTask() (model.Task, bool) {
	return m.state.Board.TaskAt(m.focusedColumn(), m.cursor)
}

// clampCursor keeps the cursor inside the focused column. While dragging
// the cursor may also rest one past the last task, on the column surface.
func (m *uiModel) clampCursor() {
	limit := m.state.Board.ColumnLen(m.focusedColumn()) - 1
	if m.mode == modeDrag {
		limit++
	}
	if m.cursor > limit {
		m.cursor = limit
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Options adjusts how the program is started
type Options struct {
	Mouse bool
}

// RunUI starts the terminal UI and returns the final board
func RunUI(board model.Board, cfg *config.Config, logger *log.Logger, opts Options) (model.Board, error) {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(initialModel(board, cfg, logger), programOpts...)
	final, err := p.Run()
	if err != nil {
		return board, err
	}
	if fm, ok := final.(uiModel); ok {
		return fm.state.Board, nil
	}
	return board, nil
}
