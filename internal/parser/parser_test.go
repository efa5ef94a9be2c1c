package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
)

func TestParseOrg(t *testing.T) {
	input := `#+TITLE: Board
* TODO Idea inicial
Some notes that are ignored
** Investigar herramientas :research:
* PROG [#A] Desarrollar componente Kanban
#+BEGIN_SRC go
* DONE not a heading
#+END_SRC
* BLOCK Waiting on review
* DONE Instalar dependencias
`
	labels, err := ParseOrg(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseOrg: %v", err)
	}

	want := map[model.ColumnID][]string{
		model.ColumnTodo:  {"Idea inicial", "Investigar herramientas"},
		model.ColumnDoing: {"Desarrollar componente Kanban", "Waiting on review"},
		model.ColumnDone:  {"Instalar dependencias"},
	}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("got %q, want %q", labels, want)
	}
}

func TestWriteOrgRoundTrip(t *testing.T) {
	board := model.NewBoard(map[model.ColumnID][]string{
		model.ColumnTodo:  {"first", "second"},
		model.ColumnDoing: {"  spaced   out "},
		model.ColumnDone:  {"finished"},
	})

	var buf bytes.Buffer
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	if err := WriteOrg(&buf, board, now); err != nil {
		t.Fatalf("WriteOrg: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "#+DATE: <2026-10-17 Sat>") {
		t.Errorf("missing date header:\n%s", out)
	}
	if !strings.Contains(out, "* PROG spaced out\n") {
		t.Errorf("doing heading not written:\n%s", out)
	}

	labels, err := ParseOrg(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseOrg: %v", err)
	}
	if !reflect.DeepEqual(labels[model.ColumnTodo], []string{"first", "second"}) {
		t.Errorf("todo: got %q", labels[model.ColumnTodo])
	}
	if !reflect.DeepEqual(labels[model.ColumnDone], []string{"finished"}) {
		t.Errorf("done: got %q", labels[model.ColumnDone])
	}
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"board.toml": "todo = [\"A\", \"B\"]\ndoing = [\"C\"]\n",
		"board.yaml": "todo:\n  - A\n  - B\ndoing:\n  - C\n",
		"board.org":  "* A\n* TODO B\n* PROG C\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}

			board, err := LoadSeed(path)
			if err != nil {
				t.Fatalf("LoadSeed: %v", err)
			}
			if got := board.Labels(model.ColumnTodo); !reflect.DeepEqual(got, []string{"A", "B"}) {
				t.Errorf("todo: got %q", got)
			}
			if got := board.Labels(model.ColumnDoing); !reflect.DeepEqual(got, []string{"C"}) {
				t.Errorf("doing: got %q", got)
			}
			if board.ColumnLen(model.ColumnDone) != 0 {
				t.Errorf("done: got %q", board.Labels(model.ColumnDone))
			}
		})
	}
}

func TestLoadSeedErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSeed(filepath.Join(dir, "board.json")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := LoadSeed(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("todo: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSeed(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestDefaultSeed(t *testing.T) {
	board := DefaultSeed()
	if board.Len() != 4 {
		t.Errorf("Len: got %d, want 4", board.Len())
	}
	if got := board.Labels(model.ColumnDoing); !reflect.DeepEqual(got, []string{"Build Kanban component"}) {
		t.Errorf("doing: got %q", got)
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanban.org")
	if err := Export(path, DefaultSeed(), time.Now()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	board, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	if board.Len() != 4 {
		t.Errorf("exported board has %d tasks, want 4", board.Len())
	}
}

func TestWriteOrgLossyLabels(t *testing.T) {
	board := model.NewBoard(map[model.ColumnID][]string{
		model.ColumnTodo: {"spaced   out\tlabel", "", "Ship :v2:", "[#A] urgent"},
	})

	var buf bytes.Buffer
	if err := WriteOrg(&buf, board, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("WriteOrg: %v", err)
	}
	labels, err := ParseOrg(&buf)
	if err != nil {
		t.Fatalf("ParseOrg: %v", err)
	}

	want := []string{"spaced out label", "Ship", "urgent"}
	if got := labels[model.ColumnTodo]; !reflect.DeepEqual(got, want) {
		t.Errorf("todo: got %q, want %q", got, want)
	}
}

func TestExportErrors(t *testing.T) {
	dir := t.TempDir()
	if err := Export(dir, DefaultSeed(), time.Now()); err == nil {
		t.Error("expected an error exporting onto a directory")
	}
	if err := Export(filepath.Join(dir, "missing", "kanban.org"), DefaultSeed(), time.Now()); err == nil {
		t.Error("expected an error exporting into a missing directory")
	}
}
