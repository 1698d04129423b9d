package ucdtables

import "io"

// Assignment maps an inclusive codepoint range to one property value.
// A single codepoint is denoted by Lo == Hi.
type Assignment struct {
	Lo, Hi rune
	Value  int
}

// AssignmentReader yields property assignments one-by-one.
// It should return io.EOF when the stream is exhausted.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package ucd to parse concrete formats and feed this API.
type AssignmentReader interface {
	Next() (Assignment, error)
}

// Column describes one property dimension fed into Compile.
type Column struct {
	Name    string // identifies the source in error and trace messages
	Default int    // value for code points no assignment touches
	Reader  AssignmentReader
}

// BuildDense expands streaming range assignments into a dense array with
// one value per code point in [0, size).
//
// The array starts out filled with def; assignments are applied in input
// order, so a later assignment overwrites an earlier one on overlap.
// Assignments are expected to stay within [0, size); keeping them there
// is the caller's contract.
func BuildDense(size int, def int, reader AssignmentReader) ([]int, error) {
	table := make([]int, size)
	if def != 0 {
		for i := range table {
			table[i] = def
		}
	}
	for {
		a, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for cp := a.Lo; cp <= a.Hi; cp++ {
			table[cp] = a.Value
		}
	}
	return table, nil
}

// SliceReader serves assignments from an in-memory slice. It is mainly
// useful for tests and for static property lists.
type SliceReader struct {
	entries []Assignment
	index   int
}

func NewSliceReader(entries []Assignment) *SliceReader {
	return &SliceReader{entries: entries}
}

func (r *SliceReader) Next() (Assignment, error) {
	if r.index >= len(r.entries) {
		return Assignment{}, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry, nil
}
