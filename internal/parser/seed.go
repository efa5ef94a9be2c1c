package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
)

// seedFile is the TOML and YAML layout of a seed board
type seedFile struct {
	Todo  []string `toml:"todo" yaml:"todo"`
	Doing []string `toml:"doing" yaml:"doing"`
	Done  []string `toml:"done" yaml:"done"`
}

func (s seedFile) labels() map[model.ColumnID][]string {
	return map[model.ColumnID][]string{
		model.ColumnTodo:  s.Todo,
		model.ColumnDoing: s.Doing,
		model.ColumnDone:  s.Done,
	}
}

// DefaultSeed returns the board shown when no seed file is given
func DefaultSeed() model.Board {
	return model.NewBoard(map[model.ColumnID][]string{
		model.ColumnTodo:  {"Initial idea", "Research tools"},
		model.ColumnDoing: {"Build Kanban component"},
		model.ColumnDone:  {"Install dependencies"},
	})
}

// LoadSeed reads a seed board from path. The format is chosen by file
// extension: .toml, .yaml/.yml or .org.
func LoadSeed(path string) (model.Board, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".org":
		labels, err := ParseOrgFile(path)
		if err != nil {
			return model.Board{}, fmt.Errorf("failed to parse seed file: %w", err)
		}
		return model.NewBoard(labels), nil

	case ".toml":
		var seed seedFile
		if _, err := toml.DecodeFile(path, &seed); err != nil {
			return model.Board{}, fmt.Errorf("failed to parse seed file: %w", err)
		}
		return model.NewBoard(seed.labels()), nil

	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return model.Board{}, fmt.Errorf("failed to read seed file: %w", err)
		}
		var seed seedFile
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return model.Board{}, fmt.Errorf("failed to parse seed file: %w", err)
		}
		return model.NewBoard(seed.labels()), nil
	}

	return model.Board{}, fmt.Errorf("unsupported seed file format %q (use .toml, .yaml or .org)", ext)
}
