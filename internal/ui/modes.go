package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
	"github.com/ReplacedSpace17/Example-Dragg/internal/parser"
)

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	// Handle special modes
	switch m.mode {
	case modeDrag:
		return m.updateDrag(msg)
	case modeInput:
		return m.updateInput(msg)
	case modeSettings:
		return m.updateSettings(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.logger.Info("quitting", "tasks", m.state.Board.Len())
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		m.cursor++
		m.clampCursor()

	case key.Matches(keyMsg, m.keys.Left):
		if m.focus > 0 {
			m.focus--
			m.clampCursor()
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.focus < len(model.Columns())-1 {
			m.focus++
			m.clampCursor()
		}

	case key.Matches(keyMsg, m.keys.Grab):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.beginDrag(task.ID)
		if m.state.Dragging() {
			m.mode = modeDrag
		}

	case key.Matches(keyMsg, m.keys.Input):
		return m.startInput(m.focusedColumn())

	case key.Matches(keyMsg, m.keys.Export):
		m.export()

	case key.Matches(keyMsg, m.keys.Settings):
		return m.openSettings()
	}

	return m, nil
}

// updateDrag handles keys while a task is held with the keyboard
func (m uiModel) updateDrag(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.endDrag(nil)
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Cancel):
		m.endDrag(nil)

	case key.Matches(keyMsg, m.keys.Drop):
		m.endDrag(m.keyboardTarget())

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		m.cursor++
		m.clampCursor()

	case key.Matches(keyMsg, m.keys.Left):
		if m.focus > 0 {
			m.focus--
			m.clampCursor()
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.focus < len(model.Columns())-1 {
			m.focus++
			m.clampCursor()
		}
	}

	return m, nil
}

// keyboardTarget is the task under the cursor, or the column surface when
// the cursor sits past the last task
func (m uiModel) keyboardTarget() *model.Target {
	if task, ok := m.selectedTask(); ok {
		return model.OverTask(task.ID)
	}
	return model.OverColumn(m.focusedColumn())
}

// updateInput handles keys while typing a new task
func (m uiModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	col := m.focusedColumn()

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyCtrlC:
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Cancel):
			// The buffer is kept for the next time the column is edited
			m.stopInput()
			return m, nil

		case key.Matches(keyMsg, m.keys.Submit):
			m.state = m.state.Apply(model.Submit{Column: col})
			if m.state.Last.Kind == model.ChangeAppend {
				m.logger.Debug("task added", "column", col, "id", m.state.Last.Task.ID)
				m.cursor = m.state.Board.ColumnLen(col) - 1
				m.setStatus("Task added!")
			}
			m.textinput.SetValue(m.state.PendingFor(col))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	if value := m.textinput.Value(); value != m.state.PendingFor(col) {
		m.state = m.state.Apply(model.SetPending{Column: col, Text: value})
	}
	return m, cmd
}

// startInput focuses the text input of a column
func (m uiModel) startInput(col model.ColumnID) (tea.Model, tea.Cmd) {
	m.focus = col.Index()
	m.clampCursor()
	m.mode = modeInput
	m.textinput.SetValue(m.state.PendingFor(col))
	m.textinput.CursorEnd()
	m.textinput.Focus()
	return m, textinput.Blink
}

// stopInput leaves input mode; the column keeps its pending text
func (m *uiModel) stopInput() {
	if m.mode != modeInput {
		return
	}
	m.mode = modeBoard
	m.textinput.Blur()
}

// updateMouse turns press, motion and release events into a drag gesture
func (m uiModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeDrag || m.mode == modeSettings {
		// keyboard drag in progress, or the board is hidden
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		h := m.hitTest(msg.X, msg.Y)
		switch h.kind {
		case hitTask:
			task, _ := m.state.Board.TaskAt(h.column, h.index)
			m.stopInput()
			m.focus = h.column.Index()
			m.cursor = h.index
			m.beginDrag(task.ID)
			m.mouseDrag = m.state.Dragging()
			m.hover = h
		case hitInput:
			return m.startInput(h.column)
		case hitColumn:
			// The text input belongs to the column it was opened on
			m.stopInput()
			m.focus = h.column.Index()
			m.clampCursor()
		}

	case tea.MouseActionMotion:
		if m.mouseDrag {
			m.hover = m.hitTest(msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		if !m.mouseDrag {
			return m, nil
		}
		m.mouseDrag = false
		m.hover = hit{}
		m.endDrag(m.target(m.hitTest(msg.X, msg.Y)))
	}

	return m, nil
}

func (m *uiModel) beginDrag(id model.TaskID) {
	m.state = m.state.Apply(model.BeginDrag{Task: id})
	if task, ok := m.state.Board.Task(m.state.Active); ok {
		m.setStatus(fmt.Sprintf("Moving: %s", task.Label))
	}
}

// endDrag finishes the current drag and moves the cursor to where the
// task ended up
func (m *uiModel) endDrag(over *model.Target) {
	active := m.state.Active
	m.state = m.state.Apply(model.EndDrag{Task: active, Over: over})
	m.mode = modeBoard

	if col, idx, ok := m.state.Board.Locate(active); ok {
		m.focus = col.Index()
		m.cursor = idx
	}

	change := m.state.Last
	if change.Kind == model.ChangeReorder || change.Kind == model.ChangeTransfer {
		m.logger.Debug("task moved", "kind", change.Kind, "id", change.Task.ID, "from", change.From, "to", change.To)
		m.setStatus("Task moved")
	} else {
		m.statusMsg = ""
	}
	m.clampCursor()
}

// export writes the board to the configured org file
func (m *uiModel) export() {
	path := m.config.UI.ExportPath
	if err := parser.Export(path, m.state.Board, m.now()); err != nil {
		m.logger.Error("export failed", "path", path, "err", err)
		m.setStatus(fmt.Sprintf("Error exporting: %v", err))
		return
	}
	m.logger.Info("board exported", "path", path, "tasks", m.state.Board.Len())
	m.setStatus(fmt.Sprintf("Exported to %s", path))
}
