package core

import (
	"fmt"
	"slices"
)

// Buffer is the document: an ordered, 0-indexed list of lines plus the
// cursor that edits apply at. A Buffer always holds at least one line.
type Buffer interface {
	// Reading
	GetLines() []string          // Lines as strings, in document order
	GetLineRunes(row int) []rune // Runes of one line, nil when row is out of range
	LineRuneCount(row int) int   // Length of one line in runes
	LineCount() int              // Number of lines, never zero

	// Editing
	InsertLine(row int, text string) error          // New line at row; row == LineCount() appends
	DeleteLine(row int) error                       // Remove a line, leaving one empty line at minimum
	ReplaceLine(row int, text string) error         // Overwrite a line's text
	InsertRunesAt(row, col int, runes []rune) error // Splice runes in before col
	DeleteRunesAt(row, col int, count int) error    // Remove up to count runes from col to line end

	// Cursor
	GetCursor() Cursor
	SetCursor(Cursor) // Stores the cursor clamped to the buffer

	// Clone returns a deep copy that shares nothing with the receiver.
	Clone() Buffer
}

type lineBuffer struct {
	lines  [][]rune
	cursor Cursor
}

// NewBuffer returns a buffer with one empty line and the cursor at (0,0).
func NewBuffer() Buffer {
	return &lineBuffer{lines: [][]rune{{}}}
}

// NewBufferFromLines returns a buffer holding lines, cursor at (0,0).
func NewBufferFromLines(lines ...string) Buffer {
	b := &lineBuffer{lines: make([][]rune, 0, max(len(lines), 1))}
	for _, line := range lines {
		b.lines = append(b.lines, []rune(line))
	}
	b.ensureLine()
	return b
}

// ensureLine restores the one-line minimum after a deletion.
func (b *lineBuffer) ensureLine() {
	if len(b.lines) == 0 {
		b.lines = append(b.lines, []rune{})
	}
}

func (b *lineBuffer) hasRow(row int) bool {
	return row >= 0 && row < len(b.lines)
}

func (b *lineBuffer) checkRow(op string, row int) error {
	if !b.hasRow(row) {
		return fmt.Errorf("%s: %w: row %d, buffer has %d lines", op, ErrInvalidPosition, row, len(b.lines))
	}
	return nil
}

func (b *lineBuffer) checkCol(op string, row, col int) error {
	if n := len(b.lines[row]); col < 0 || col > n {
		return fmt.Errorf("%s: %w: col %d, line %d has %d runes", op, ErrInvalidPosition, col, row, n)
	}
	return nil
}

func (b *lineBuffer) GetLines() []string {
	out := make([]string, 0, len(b.lines))
	for _, line := range b.lines {
		out = append(out, string(line))
	}
	return out
}

func (b *lineBuffer) GetLineRunes(row int) []rune {
	if !b.hasRow(row) {
		return nil
	}
	return b.lines[row]
}

func (b *lineBuffer) LineRuneCount(row int) int {
	return len(b.GetLineRunes(row))
}

func (b *lineBuffer) LineCount() int {
	return len(b.lines)
}

func (b *lineBuffer) GetCursor() Cursor {
	return b.cursor
}

// SetCursor keeps the row inside the buffer and the column inside
// [0, len(line)]. The column may sit one past the last rune.
func (b *lineBuffer) SetCursor(c Cursor) {
	c.Position.Row = max(0, min(c.Position.Row, len(b.lines)-1))
	c.Position.Col = max(0, min(c.Position.Col, len(b.lines[c.Position.Row])))
	b.cursor = c
}

func (b *lineBuffer) InsertLine(row int, text string) error {
	if row < 0 || row > len(b.lines) {
		return fmt.Errorf("insert line: %w: row %d, buffer has %d lines", ErrInvalidPosition, row, len(b.lines))
	}
	b.lines = slices.Insert(b.lines, row, []rune(text))
	return nil
}

func (b *lineBuffer) DeleteLine(row int) error {
	if err := b.checkRow("delete line", row); err != nil {
		return err
	}
	b.lines = slices.Delete(b.lines, row, row+1)
	b.ensureLine()
	b.SetCursor(b.cursor)
	return nil
}

func (b *lineBuffer) ReplaceLine(row int, text string) error {
	if err := b.checkRow("replace line", row); err != nil {
		return err
	}
	b.lines[row] = []rune(text)
	b.SetCursor(b.cursor)
	return nil
}

func (b *lineBuffer) InsertRunesAt(row, col int, runes []rune) error {
	if err := b.checkRow("insert runes", row); err != nil {
		return err
	}
	if err := b.checkCol("insert runes", row, col); err != nil {
		return err
	}
	b.lines[row] = slices.Insert(slices.Clone(b.lines[row]), col, runes...)
	return nil
}

// DeleteRunesAt never joins lines: a count reaching past the line end stops there.
func (b *lineBuffer) DeleteRunesAt(row, col int, count int) error {
	if count <= 0 {
		return nil
	}
	if err := b.checkRow("delete runes", row); err != nil {
		return err
	}
	if err := b.checkCol("delete runes", row, col); err != nil {
		return err
	}
	line := b.lines[row]
	b.lines[row] = slices.Delete(slices.Clone(line), col, min(col+count, len(line)))
	b.SetCursor(b.cursor)
	return nil
}

func (b *lineBuffer) Clone() Buffer {
	lines := make([][]rune, len(b.lines))
	for i, line := range b.lines {
		lines[i] = slices.Clone(line)
	}
	return &lineBuffer{lines: lines, cursor: b.cursor}
}
