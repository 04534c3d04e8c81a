package core

import (
	"fmt"
)

// operation is one entry of the dispatch table. Its classification is data:
// modifying operations get an undo snapshot, repeatable ones become the
// command replayed by "r".
type operation struct {
	id          CommandID
	description string
	modifying   bool
	repeatable  bool
	needsArg    bool
	run         func(e *editor, arg string) error
}

// CommandInfo describes a command for the help table.
type CommandInfo struct {
	ID          CommandID
	Description string
	Modifying   bool
}

// commandTable lists every command in help order.
var commandTable = []operation{
	{id: CmdHelp, description: "display this help info", repeatable: true, run: showHelp},
	{id: CmdToggleRowCursor, description: "toggle row cursor on and off", repeatable: true, run: toggleRowCursor},
	{id: CmdToggleLineCursor, description: "toggle line cursor on and off", repeatable: true, run: toggleLineCursor},
	{id: CmdLeft, description: "move cursor left", repeatable: true, run: moveLeft},
	{id: CmdUp, description: "move cursor up", repeatable: true, run: moveUp},
	{id: CmdDown, description: "move cursor down", repeatable: true, run: moveDown},
	{id: CmdRight, description: "move cursor right", repeatable: true, run: moveRight},
	{id: CmdLineStart, description: "move cursor to beginning of the line", repeatable: true, run: moveLineStart},
	{id: CmdLineEnd, description: "move cursor to end of the line", repeatable: true, run: moveLineEnd},
	{id: CmdWordForward, description: "move cursor to beginning of next word", repeatable: true, run: moveWordForward},
	{id: CmdWordBackward, description: "move cursor to beginning of previous word", repeatable: true, run: moveWordBackward},
	{id: CmdInsert, description: "insert <text> before cursor", modifying: true, repeatable: true, needsArg: true, run: insertText},
	{id: CmdAppend, description: "append <text> after cursor", modifying: true, repeatable: true, needsArg: true, run: appendText},
	{id: CmdDeleteChar, description: "delete character at cursor", modifying: true, repeatable: true, run: deleteChar},
	{id: CmdDeleteWord, description: "delete word and trailing spaces at cursor", modifying: true, repeatable: true, run: deleteWord},
	{id: CmdYankLine, description: "copy current line to memory", modifying: true, repeatable: true, run: yankLine},
	{id: CmdPasteBelow, description: "paste copied line below line cursor", modifying: true, repeatable: true, run: pasteBelow},
	{id: CmdPasteAbove, description: "paste copied line above line cursor", modifying: true, repeatable: true, run: pasteAbove},
	{id: CmdDeleteLine, description: "delete line", modifying: true, repeatable: true, run: deleteLine},
	{id: CmdOpenBelow, description: "insert empty line below", modifying: true, repeatable: true, run: openBelow},
	{id: CmdOpenAbove, description: "insert empty line above", modifying: true, repeatable: true, run: openAbove},
	{id: CmdUndo, description: "undo previous command", run: undo},
	{id: CmdRepeat, description: "repeat last command", run: repeat},
	{id: CmdShow, description: "show content", repeatable: true, run: show},
	{id: CmdQuit, description: "quit program", repeatable: true, run: quit},
}

// operations indexes commandTable by token. It is filled in init because
// "r" dispatches back through it.
var operations map[CommandID]operation

func init() {
	operations = make(map[CommandID]operation, len(commandTable))
	for _, op := range commandTable {
		operations[op.id] = op
	}
}

// Commands returns the command table in help order.
func Commands() []CommandInfo {
	infos := make([]CommandInfo, len(commandTable))
	for i, op := range commandTable {
		infos[i] = CommandInfo{ID: op.id, Description: op.description, Modifying: op.modifying}
	}
	return infos
}

// --- Display and session ---

func showHelp(e *editor, _ string) error {
	e.DispatchSignal(HelpSignal{})
	return nil
}

func show(e *editor, _ string) error {
	e.DispatchSignal(RenderSignal{})
	return nil
}

func quit(e *editor, _ string) error {
	e.state.Quit = true
	e.DispatchSignal(QuitSignal{})
	return nil
}

func toggleRowCursor(e *editor, _ string) error {
	e.state.ShowRowCursor = !e.state.ShowRowCursor
	return nil
}

func toggleLineCursor(e *editor, _ string) error {
	e.state.ShowLineCursor = !e.state.ShowLineCursor
	return nil
}

// --- Navigation ---

// moveCursor applies a cursor motion and writes the result back to the buffer.
func moveCursor(e *editor, motion func(c *Cursor) error) error {
	cursor := e.buffer.GetCursor()
	if err := motion(&cursor); err != nil {
		return err
	}
	e.buffer.SetCursor(cursor)
	return nil
}

func moveLeft(e *editor, _ string) error {
	return moveCursor(e, func(c *Cursor) error { return c.MoveLeft(e.buffer) })
}

func moveRight(e *editor, _ string) error {
	return moveCursor(e, func(c *Cursor) error { return c.MoveRight(e.buffer) })
}

func moveUp(e *editor, _ string) error {
	return moveCursor(e, func(c *Cursor) error { return c.MoveUp(e.buffer) })
}

func moveDown(e *editor, _ string) error {
	return moveCursor(e, func(c *Cursor) error { return c.MoveDown(e.buffer) })
}

func moveLineStart(e *editor, _ string) error {
	return moveCursor(e, func(c *Cursor) error {
		c.MoveToLineStart()
		return nil
	})
}

func moveLineEnd(e *editor, _ string) error {
	return moveCursor(e, func(c *Cursor) error {
		c.MoveToAfterLineEnd(e.buffer)
		return nil
	})
}

func moveWordForward(e *editor, _ string) error {
	return moveCursor(e, func(c *Cursor) error { return c.MoveWordForward(e.buffer) })
}

func moveWordBackward(e *editor, _ string) error {
	return moveCursor(e, func(c *Cursor) error { return c.MoveWordBackward(e.buffer) })
}

// --- Text edits ---

// insertAt splices text into the cursor line at col and leaves the cursor
// just past the inserted text.
func insertAt(e *editor, col int, text string) error {
	cursor := e.buffer.GetCursor()
	runes := []rune(text)
	if err := e.buffer.InsertRunesAt(cursor.Position.Row, col, runes); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	cursor.Position.Col = col + len(runes)
	e.buffer.SetCursor(cursor)
	return nil
}

func insertText(e *editor, arg string) error {
	return insertAt(e, e.buffer.GetCursor().Position.Col, arg)
}

// appendText inserts after the character under the cursor, or at the
// cursor when it is already past the last character.
func appendText(e *editor, arg string) error {
	pos := e.buffer.GetCursor().Position
	col := min(pos.Col+1, e.buffer.LineRuneCount(pos.Row))
	return insertAt(e, col, arg)
}

func deleteChar(e *editor, _ string) error {
	pos := e.buffer.GetCursor().Position
	if pos.Col >= e.buffer.LineRuneCount(pos.Row) {
		return ErrEndOfLine
	}
	return e.buffer.DeleteRunesAt(pos.Row, pos.Col, 1)
}

func deleteWord(e *editor, _ string) error {
	pos := e.buffer.GetCursor().Position
	end := wordEnd(e.buffer.GetLineRunes(pos.Row), pos.Col)
	if end <= pos.Col {
		return ErrEndOfLine
	}
	return e.buffer.DeleteRunesAt(pos.Row, pos.Col, end-pos.Col)
}

func yankLine(e *editor, _ string) error {
	line := string(e.buffer.GetLineRunes(e.GetCursor().Row))
	e.clipboard = line
	e.hasClipboard = true

	if e.external != nil {
		if err := e.external.Write(line); err != nil {
			e.logger.Warn("failed to copy to system clipboard", "err", err)
			e.DispatchSignal(ErrorSignal{err: fmt.Errorf("failed to copy to clipboard: %w", err)})
		}
	}
	return nil
}

// insertLineAt adds a line at row and moves the cursor to its start.
func insertLineAt(e *editor, row int, text string) error {
	if err := e.buffer.InsertLine(row, text); err != nil {
		return err
	}
	e.buffer.SetCursor(Cursor{Position: Position{Row: row, Col: 0}})
	return nil
}

func pasteBelow(e *editor, _ string) error {
	if !e.hasClipboard {
		return ErrEmptyClipboard
	}
	return insertLineAt(e, e.GetCursor().Row+1, e.clipboard)
}

func pasteAbove(e *editor, _ string) error {
	if !e.hasClipboard {
		return ErrEmptyClipboard
	}
	return insertLineAt(e, e.GetCursor().Row, e.clipboard)
}

func openBelow(e *editor, _ string) error {
	return insertLineAt(e, e.GetCursor().Row+1, "")
}

func openAbove(e *editor, _ string) error {
	return insertLineAt(e, e.GetCursor().Row, "")
}

func deleteLine(e *editor, _ string) error {
	row := e.GetCursor().Row
	if err := e.buffer.DeleteLine(row); err != nil {
		return err
	}
	e.buffer.SetCursor(Cursor{Position: Position{Row: row, Col: 0}})
	return nil
}

// --- History ---

func undo(e *editor, _ string) error {
	return e.Undo()
}

func repeat(e *editor, _ string) error {
	return e.Repeat()
}
