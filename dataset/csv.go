// Package dataset implements sequence persistence: one comma-separated
// record per file, round-tripping exactly.
package dataset

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/parsort/sequence"
)

// filePerm is the mode for freshly written dataset files.
const filePerm = 0o644

// WriteFile persists seq to path as "v0,v1,...,vN-1": comma-separated,
// no delimiter after the last value, no final newline. An empty sequence
// writes an empty file. Returns ErrNilSequence for a nil sequence; I/O
// failures are wrapped with the path.
func WriteFile(path string, seq *sequence.Sequence[int64]) error {
	if seq == nil {
		return ErrNilSequence
	}

	var buf bytes.Buffer
	for i, v := range seq.Values() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatInt(v, 10))
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	return nil
}

// ReadFile loads a sequence previously written by WriteFile. A single
// trailing newline (as some editors append) is tolerated; everything else
// must be comma-separated base-10 integers. An empty file yields an empty
// sequence. Malformed tokens return ErrBadRecord wrapped with the token's
// position; I/O failures are wrapped with the path.
func ReadFile(path string) (*sequence.Sequence[int64], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	record := strings.TrimRight(string(raw), "\r\n")
	if record == "" {
		return sequence.FromValues[int64](), nil
	}

	tokens := strings.Split(record, ",")
	data := make([]int64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q) in %s", ErrBadRecord, i, tok, path)
		}
		data[i] = v
	}

	return sequence.Wrap(data), nil
}
