package parser

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
)

// Parser patterns
var (
	headingPattern = regexp.MustCompile(`^(\*+)\s+(?:(TODO|PROG|BLOCK|DONE)\s+)?(?:\[#([A-C])\]\s+)?(.+?)(?:\s+(:[[:alnum:]_@#%:]+:)\s*)?$`)
	codeBlockStart = regexp.MustCompile(`^\s*#\+BEGIN_SRC`)
	codeBlockEnd   = regexp.MustCompile(`^\s*#\+END_SRC`)
)

// stateColumns maps org-mode todo keywords onto board columns.
// Headings without a keyword land in todo.
var stateColumns = map[string]model.ColumnID{
	"":      model.ColumnTodo,
	"TODO":  model.ColumnTodo,
	"PROG":  model.ColumnDoing,
	"BLOCK": model.ColumnDoing,
	"DONE":  model.ColumnDone,
}

// ParseOrgFile reads an org-mode file and returns its headings grouped by column
func ParseOrgFile(path string) (map[model.ColumnID][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseOrg(file)
}

// ParseOrg reads org-mode headings from r. Every heading, at any level,
// becomes one task; notes, drawers and code blocks are skipped.
func ParseOrg(r io.Reader) (map[model.ColumnID][]string, error) {
	labels := make(map[model.ColumnID][]string)
	scanner := bufio.NewScanner(r)

	var inCodeBlock bool
	for scanner.Scan() {
		line := scanner.Text()

		if codeBlockStart.MatchString(line) {
			inCodeBlock = true
			continue
		}
		if codeBlockEnd.MatchString(line) {
			inCodeBlock = false
			continue
		}
		if inCodeBlock {
			continue
		}

		matches := headingPattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		col := stateColumns[matches[2]]
		title := strings.TrimSpace(matches[4])
		labels[col] = append(labels[col], title)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return labels, nil
}
