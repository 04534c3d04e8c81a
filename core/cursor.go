package core

import "unicode"

// Cursor is the point in a Buffer where edits apply.
type Cursor struct {
	Position Position
}

// Motions move the cursor within the buffer. A motion that cannot move
// returns a boundary error and leaves the cursor where it was. No motion
// wraps to an adjacent line.

// fitCol pulls the column back inside the current line after a row change.
func (c *Cursor) fitCol(buffer Buffer) {
	c.Position.Col = max(0, min(c.Position.Col, buffer.LineRuneCount(c.Position.Row)))
}

func (c *Cursor) MoveLeft(buffer Buffer) error {
	if c.Position.Col == 0 {
		return ErrStartOfLine
	}
	c.Position.Col--
	c.fitCol(buffer)
	return nil
}

// MoveRight stops at the append position one past the last rune.
func (c *Cursor) MoveRight(buffer Buffer) error {
	if c.Position.Col >= buffer.LineRuneCount(c.Position.Row) {
		return ErrEndOfLine
	}
	c.Position.Col++
	return nil
}

func (c *Cursor) MoveUp(buffer Buffer) error {
	if c.Position.Row == 0 {
		return ErrStartOfBuffer
	}
	c.Position.Row--
	c.fitCol(buffer)
	return nil
}

func (c *Cursor) MoveDown(buffer Buffer) error {
	if c.Position.Row+1 >= buffer.LineCount() {
		return ErrEndOfBuffer
	}
	c.Position.Row++
	c.fitCol(buffer)
	return nil
}

func (c *Cursor) MoveToLineStart() {
	c.Position.Col = 0
}

// MoveToAfterLineEnd places the cursor on the append position.
func (c *Cursor) MoveToAfterLineEnd(buffer Buffer) {
	c.Position.Col = buffer.LineRuneCount(c.Position.Row)
}

// A word is a maximal run of non-space runes.

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// wordEnd skips the rest of the word at col, then the spaces after it,
// and returns where it stopped: the start of the next word or len(line).
func wordEnd(line []rune, col int) int {
	for col < len(line) && !isSpace(line[col]) {
		col++
	}
	for col < len(line) && isSpace(line[col]) {
		col++
	}
	return col
}

// wordStart walks back over spaces, then over the word before them.
func wordStart(line []rune, col int) int {
	for col > 0 && isSpace(line[col-1]) {
		col--
	}
	for col > 0 && !isSpace(line[col-1]) {
		col--
	}
	return col
}

// MoveWordForward lands on the next word of the line, or on the append
// position when the line has no further word.
func (c *Cursor) MoveWordForward(buffer Buffer) error {
	line := buffer.GetLineRunes(c.Position.Row)
	if c.Position.Col >= len(line) {
		return ErrEndOfLine
	}
	c.Position.Col = wordEnd(line, c.Position.Col)
	return nil
}

// MoveWordBackward lands on the start of the word containing or preceding
// the cursor.
func (c *Cursor) MoveWordBackward(buffer Buffer) error {
	if c.Position.Col == 0 {
		return ErrStartOfLine
	}
	c.fitCol(buffer)
	c.Position.Col = wordStart(buffer.GetLineRunes(c.Position.Row), c.Position.Col)
	return nil
}
