// Package ucd parses Unicode Character Database files into streaming
// property assignments.
//
// The supported shape is the common UCD line format: `#` starts a
// comment, fields are separated by `;`, and the first field is a code
// point or an inclusive range `XXXX..YYYY` in hex. Readers implement
// ucdtables.AssignmentReader and are meant to be fed straight into the
// table compiler.
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/ucdtables"
)

// MalformedRangeError reports a first field that is not a valid code
// point or codepoint range.
type MalformedRangeError struct {
	Line int
	Text string
}

func (e *MalformedRangeError) Error() string {
	return fmt.Sprintf("line %d: malformed codepoint range %q", e.Line, e.Text)
}

// lineScanner walks a UCD file and yields the semicolon-separated fields
// of each non-empty line, with comments stripped and fields trimmed.
type lineScanner struct {
	scanner *bufio.Scanner
	line    int
	fields  []string
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{scanner: bufio.NewScanner(r)}
}

// next advances to the next line carrying at least two fields.
func (s *lineScanner) next() (bool, error) {
	for s.scanner.Scan() {
		s.line++
		text := s.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		parts := strings.Split(text, ";")
		if len(parts) <= 1 {
			continue
		}
		s.fields = s.fields[:0]
		for _, part := range parts {
			s.fields = append(s.fields, strings.TrimSpace(part))
		}
		return true, nil
	}
	return false, s.scanner.Err()
}

// codepointRange parses the scanner's first field as `XXXX` or
// `XXXX..YYYY`.
func (s *lineScanner) codepointRange() (lo, hi rune, err error) {
	text := s.fields[0]
	first, rest := text, ""
	if i := strings.Index(text, ".."); i >= 0 {
		first, rest = text[:i], text[i+2:]
	}
	l, err := strconv.ParseUint(first, 16, 32)
	if err != nil {
		return 0, 0, &MalformedRangeError{Line: s.line, Text: text}
	}
	lo, hi = rune(l), rune(l)
	if rest != "" {
		h, err := strconv.ParseUint(rest, 16, 32)
		if err != nil {
			return 0, 0, &MalformedRangeError{Line: s.line, Text: text}
		}
		hi = rune(h)
	}
	return lo, hi, nil
}

// PropertyReader streams assignments from files of the Scripts.txt /
// DerivedGeneralCategory.txt shape, where field 1 names a property value.
// The assigned value is the name's index in the enumeration list.
type PropertyReader struct {
	scanner *lineScanner
	ids     map[string]int
}

func NewPropertyReader(r io.Reader, names []string) *PropertyReader {
	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i
	}
	return &PropertyReader{scanner: newLineScanner(r), ids: ids}
}

// Next returns the next assignment, or io.EOF when exhausted.
func (r *PropertyReader) Next() (ucdtables.Assignment, error) {
	ok, err := r.scanner.next()
	if err != nil {
		return ucdtables.Assignment{}, err
	}
	if !ok {
		return ucdtables.Assignment{}, io.EOF
	}
	name := r.scanner.fields[1]
	id, known := r.ids[name]
	if !known {
		return ucdtables.Assignment{}, fmt.Errorf("line %d: property value %q is not in the enumeration list",
			r.scanner.line, name)
	}
	lo, hi, err := r.scanner.codepointRange()
	if err != nil {
		return ucdtables.Assignment{}, err
	}
	return ucdtables.Assignment{Lo: lo, Hi: hi, Value: id}, nil
}

// CaseOffsetReader streams case offsets from UnicodeData.txt: for each
// code point, the distance to its simple uppercase mapping, else to its
// simple lowercase mapping, else 0. UnicodeData.txt lists single code
// points only; the First/Last block markers pass through as ordinary
// single-codepoint lines, as they carry no case mappings anyway.
type CaseOffsetReader struct {
	scanner *lineScanner
}

func NewCaseOffsetReader(r io.Reader) *CaseOffsetReader {
	return &CaseOffsetReader{scanner: newLineScanner(r)}
}

// Next returns the next assignment, or io.EOF when exhausted.
func (r *CaseOffsetReader) Next() (ucdtables.Assignment, error) {
	ok, err := r.scanner.next()
	if err != nil {
		return ucdtables.Assignment{}, err
	}
	if !ok {
		return ucdtables.Assignment{}, io.EOF
	}
	lo, hi, err := r.scanner.codepointRange()
	if err != nil {
		return ucdtables.Assignment{}, err
	}
	return ucdtables.Assignment{Lo: lo, Hi: hi, Value: r.caseOffset(lo)}, nil
}

const (
	fieldUppercase = 12
	fieldLowercase = 13
)

func (r *CaseOffsetReader) caseOffset(cp rune) int {
	for _, f := range []int{fieldUppercase, fieldLowercase} {
		if f >= len(r.scanner.fields) || r.scanner.fields[f] == "" {
			continue
		}
		other, err := strconv.ParseUint(r.scanner.fields[f], 16, 32)
		if err != nil {
			continue // not a case mapping; leave the code point unmapped
		}
		return int(rune(other) - cp)
	}
	return 0
}
