package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ReplacedSpace17/Example-Dragg/internal/config"
	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
)

func TestLoadBoardDefaultSeed(t *testing.T) {
	board, err := loadBoard("")
	if err != nil {
		t.Fatalf("loadBoard: %v", err)
	}
	if board.Len() != 4 {
		t.Errorf("default seed: got %d tasks, want 4", board.Len())
	}
}

func TestLoadBoardFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("doing:\n  - Ship it\n"), 0644); err != nil {
		t.Fatal(err)
	}

	board, err := loadBoard(path)
	if err != nil {
		t.Fatalf("loadBoard: %v", err)
	}
	if got := board.Labels(model.ColumnDoing); len(got) != 1 || got[0] != "Ship it" {
		t.Errorf("doing: got %q", got)
	}
}

func TestLoadBoardMissingFile(t *testing.T) {
	if _, err := loadBoard(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing seed")
	}
}

func TestConfigSetKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "config", "set-key", "grab", "g", "G"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("set-key: %v", err)
	}

	cfg, err := config.LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := strings.Join(cfg.Keybindings.Grab, ","); got != "g,G" {
		t.Errorf("grab: got %q", got)
	}

	cmd = rootCmd()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "config", "keys"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("keys: %v", err)
	}
	if !strings.Contains(out.String(), `grab     "g", "G"`) {
		t.Errorf("keys output:\n%s", out.String())
	}
}

func TestConfigSetKeyMalformedFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "mine.toml")
	malformed := []byte("[keybindings\nquit = ")
	if err := os.WriteFile(path, malformed, 0644); err != nil {
		t.Fatal(err)
	}

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "config", "set-key", "quit", "x"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error, got output %q", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, malformed) {
		t.Errorf("config file was rewritten:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(configHome, "kanban", "config.toml")); !os.IsNotExist(err) {
		t.Errorf("default config file was written (stat err %v)", err)
	}

	cmd = rootCmd()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "config", "path"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("path: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != path {
		t.Errorf("path: got %q, want %q", got, path)
	}
}

func TestConfigSetKeyUnknownAction(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "config.toml"), "config", "set-key", "fly", "f"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unknown action")
	}
}
