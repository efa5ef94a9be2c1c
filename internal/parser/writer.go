package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
)

// columnStates is the keyword written for each column's headings
var columnStates = map[model.ColumnID]string{
	model.ColumnTodo:  "TODO",
	model.ColumnDoing: "PROG",
	model.ColumnDone:  "DONE",
}

// Export writes the board to path as an org-mode file
func Export(path string, board model.Board, now time.Time) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
	}()

	if err := WriteOrg(file, board, now); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// WriteOrg writes one heading per task, columns in display order.
//
// The export is lossy: whitespace inside a label collapses to single
// spaces, blank labels are skipped, and a label that ends in :tag: or
// starts with a [#A] cookie reads back without that part.
func WriteOrg(w io.Writer, board model.Board, now time.Time) error {
	writer := bufio.NewWriter(w)

	header := fmt.Sprintf("#+TITLE: Kanban\n#+DATE: <%s>\n\n", FormatOrgDate(now))
	if _, err := writer.WriteString(header); err != nil {
		return err
	}

	for _, col := range model.Columns() {
		for _, task := range board.Tasks(col) {
			if err := writeTask(writer, columnStates[col], task); err != nil {
				return err
			}
		}
	}

	return writer.Flush()
}

// writeTask writes a task as a level-one heading
func writeTask(writer *bufio.Writer, state string, task model.Task) error {
	// Headings are single lines
	title := strings.Join(strings.Fields(task.Label), " ")
	if title == "" {
		return nil
	}
	_, err := writer.WriteString("* " + state + " " + title + "\n")
	return err
}
