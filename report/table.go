package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/parsort/harness"
)

// columnGap separates adjacent table columns.
const columnGap = "  "

// WriteTable renders rows onto w as a right-aligned fixed-width table:
// the same columns and values as the CSV, padded so every column is as
// wide as its widest cell or header.
//
// Steps:
//  1. Validate the writer and the row set (same checks as WriteCSV).
//  2. Measure every column's width over the header and all cells.
//  3. Emit the header, a dashed rule, then one line per row.
func WriteTable(w io.Writer, rows []harness.Row) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := checkRows(rows); err != nil {
		return err
	}

	cols := header(rows[0])
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}

	lines := make([][]string, len(rows))
	for r, row := range rows {
		lines[r] = cells(row)
		for i, cell := range lines[r] {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if err := writeLine(w, cols, widths); err != nil {
		return err
	}

	total := len(columnGap) * (len(cols) - 1)
	for _, wd := range widths {
		total += wd
	}
	if _, err := io.WriteString(w, strings.Repeat("-", total)+"\n"); err != nil {
		return fmt.Errorf("report: write rule: %w", err)
	}

	for _, line := range lines {
		if err := writeLine(w, line, widths); err != nil {
			return err
		}
	}

	return nil
}

// writeLine emits one right-aligned table line.
func writeLine(w io.Writer, line []string, widths []int) error {
	var sb strings.Builder
	for i, cell := range line {
		if i > 0 {
			sb.WriteString(columnGap)
		}
		fmt.Fprintf(&sb, "%*s", widths[i], cell)
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("report: write line: %w", err)
	}

	return nil
}
