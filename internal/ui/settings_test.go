package ui

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ReplacedSpace17/Example-Dragg/internal/config"
	"github.com/ReplacedSpace17/Example-Dragg/internal/logging"
	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
)

func newSettingsModel(t *testing.T) (uiModel, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := config.LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	board := model.BoardOf(map[model.ColumnID][]model.Task{
		model.ColumnTodo: {{ID: "A", Label: "A"}},
	})
	return initialModel(board, cfg, logging.Discard()), path
}

func TestSettingsEditColumnTitle(t *testing.T) {
	m, path := newSettingsModel(t)

	m = send(t, m, keyPress(","))
	if m.mode != modeSettings {
		t.Fatalf("mode: got %v, want settings", m.mode)
	}

	m = send(t, m, keyPress("j"), keyPress("enter"))
	if !m.settingsInput.Focused() {
		t.Fatal("enter should start editing")
	}
	if got := m.settingsInput.Value(); got != "In progress" {
		t.Errorf("edit value: got %q", got)
	}

	m.settingsInput.SetValue("Working")
	m = send(t, m, keyPress("enter"))

	if got := m.config.ColumnTitle(model.ColumnDoing); got != "Working" {
		t.Errorf("title: got %q", got)
	}
	saved, err := config.LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := saved.ColumnTitle(model.ColumnDoing); got != "Working" {
		t.Errorf("saved title: got %q", got)
	}

	m = send(t, m, keyPress("esc"))
	if m.mode != modeBoard {
		t.Errorf("esc should leave settings: mode=%v", m.mode)
	}
}

func TestSettingsEmptyTitleRejected(t *testing.T) {
	m, _ := newSettingsModel(t)

	m = send(t, m, keyPress(","), keyPress("enter"))
	m.settingsInput.SetValue("  ")
	m = send(t, m, keyPress("enter"))

	if got := m.config.ColumnTitle(model.ColumnTodo); got != "To do" {
		t.Errorf("title changed to %q", got)
	}
}

func TestSettingsRebindGrab(t *testing.T) {
	m, _ := newSettingsModel(t)

	m = send(t, m, keyPress(","), keyPress("l"))
	if m.settingsSection != settingsSectionKeybindings {
		t.Fatalf("section: got %v", m.settingsSection)
	}

	items := m.settingsItems()
	grab := -1
	for i, item := range items {
		if item.name == "grab" {
			grab = i
		}
	}
	if grab < 0 {
		t.Fatal("grab not listed")
	}
	for i := 0; i < grab; i++ {
		m = send(t, m, keyPress("j"))
	}

	m = send(t, m, keyPress("enter"))
	if got := m.settingsInput.Value(); got != "space,m" {
		t.Errorf("edit value: got %q", got)
	}
	m.settingsInput.SetValue("g")
	m = send(t, m, keyPress("enter"), keyPress("q"))

	if m.mode != modeBoard {
		t.Fatalf("mode: got %v, want board", m.mode)
	}
	m = send(t, m, keyPress("g"))
	if !m.state.Dragging() {
		t.Error("rebound key should pick up the task")
	}
}

func TestSplitKeys(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"up, k", []string{"up", "k"}},
		{"space,enter", []string{" ", "space", "enter"}},
		{" , ,", nil},
	}
	for _, tt := range tests {
		if got := splitKeys(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitKeys(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinKeys(t *testing.T) {
	if got := joinKeys([]string{" ", "space", "enter"}); got != "space,enter" {
		t.Errorf("joinKeys: got %q", got)
	}
}

func TestSettingsEditorCursorBlinks(t *testing.T) {
	m, _ := newSettingsModel(t)
	m = send(t, m, keyPress(","))

	next, cmd := m.Update(keyPress("enter"))
	m = next.(uiModel)
	if cmd == nil {
		t.Fatal("starting an edit should return the blink command")
	}

	// the initial blink message must reach the editor, which then schedules the next blink
	next, cmd = m.Update(cmd())
	m = next.(uiModel)
	if cmd == nil {
		t.Error("blink message was not forwarded to the settings editor")
	}
	if !m.settingsInput.Focused() {
		t.Error("editor lost focus")
	}
}
