// Package report renders finalized benchmark rows as CSV and as an
// aligned text table.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/parsort/harness"
)

// secondsPrecision is the fixed number of fractional digits used for
// every time and speedup value, matching the file format downstream
// plotting expects.
const secondsPrecision = 6

// filePerm is the mode for freshly written report files.
const filePerm = 0o644

// WriteCSV renders rows onto w: one header row derived from the engine
// names, then one comma-separated data row per input size, times in
// seconds.
//
// With the stock engine family the header reads exactly
//
//	Input Size,Sequential Time,Bounded Time,Unbounded Time,Bounded Speedup,Unbounded Speedup
//
// Steps:
//  1. Validate the writer and the row set (ErrNilWriter, ErrNoRows,
//     ErrInconsistentRows).
//  2. Emit the header: "Input Size", one "<Name> Time" per engine in
//     baseline-then-variants order, one "<Name> Speedup" per variant.
//  3. Emit one data row per input size, in the rows' order.
func WriteCSV(w io.Writer, rows []harness.Row) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := checkRows(rows); err != nil {
		return err
	}

	if _, err := io.WriteString(w, strings.Join(header(rows[0]), ",")+"\n"); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for _, row := range rows {
		if _, err := io.WriteString(w, strings.Join(cells(row), ",")+"\n"); err != nil {
			return fmt.Errorf("report: write row for size %d: %w", row.Size, err)
		}
	}

	return nil
}

// WriteCSVFile renders rows into the file at path, replacing any previous
// content. I/O failures are wrapped with the path.
func WriteCSVFile(path string, rows []harness.Row) error {
	var sb strings.Builder
	if err := WriteCSV(&sb, rows); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(sb.String()), filePerm); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return nil
}

// checkRows rejects empty input and rows whose engine sets differ.
func checkRows(rows []harness.Row) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	first := rows[0]
	for _, row := range rows[1:] {
		if row.BaselineName != first.BaselineName || len(row.Variants) != len(first.Variants) {
			return fmt.Errorf("%w: size %d", ErrInconsistentRows, row.Size)
		}
		for i, v := range row.Variants {
			if v.Name != first.Variants[i].Name {
				return fmt.Errorf("%w: size %d", ErrInconsistentRows, row.Size)
			}
		}
	}

	return nil
}

// header derives the column names from one row's engine set.
func header(row harness.Row) []string {
	cols := make([]string, 0, 2+2*len(row.Variants))
	cols = append(cols, "Input Size", row.BaselineName+" Time")
	for _, v := range row.Variants {
		cols = append(cols, v.Name+" Time")
	}
	for _, v := range row.Variants {
		cols = append(cols, v.Name+" Speedup")
	}

	return cols
}

// cells renders one row's values in header order.
func cells(row harness.Row) []string {
	out := make([]string, 0, 2+2*len(row.Variants))
	out = append(out, strconv.Itoa(row.Size), formatSeconds(row.BaselineSeconds))
	for _, v := range row.Variants {
		out = append(out, formatSeconds(v.AvgSeconds))
	}
	for _, v := range row.Variants {
		out = append(out, formatSeconds(v.Speedup))
	}

	return out
}

// formatSeconds renders a float with the report's fixed precision.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', secondsPrecision, 64)
}
