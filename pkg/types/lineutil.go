package types

import "unicode/utf8"

// LineTracker computes 1-indexed line and column numbers for non-decreasing
// character offsets without rescanning text from the start on every call.
// Columns count characters, so multi-byte runes advance the column by one.
type LineTracker struct {
	text   string
	pos    int // byte position in text
	offset int // character offset of pos
	line   int
	column int
}

// NewLineTracker creates a tracker positioned at the start of text.
func NewLineTracker(text string) *LineTracker {
	return &LineTracker{text: text, line: 1, column: 1}
}

// Advance moves the tracker to offset and returns its line and column.
// Offsets behind the current position restart from the beginning of text.
func (t *LineTracker) Advance(offset int) (line, column int) {
	if offset < t.offset {
		t.pos, t.offset, t.line, t.column = 0, 0, 1, 1
	}
	for t.offset < offset && t.pos < len(t.text) {
		r, size := utf8.DecodeRuneInString(t.text[t.pos:])
		if r == '\n' {
			t.line++
			t.column = 1
		} else {
			t.column++
		}
		t.pos += size
		t.offset++
	}
	return t.line, t.column
}
