package core

import (
	"log/slog"
)

// State holds the display toggles and the session flag
type State struct {
	ShowRowCursor  bool // Highlight the character under the cursor
	ShowLineCursor bool // Mark the cursor line in a one-column gutter
	Quit           bool // Flag indicating if the session should end
}

// InitialState creates a default state
func InitialState() State {
	return State{}
}

// Concrete implementation of Editor
type editor struct {
	buffer Buffer
	state  State

	clipboard    string // Last yanked line
	hasClipboard bool
	external     Clipboard // Optional mirror for yanked lines

	history     *History
	lastCommand *Command // Replayed by "r"; never "u" or "r"

	logger       *slog.Logger
	updateSignal chan Signal
}

// New creates a new editor instance holding one empty line
func New(opts ...Option) Editor {
	e := &editor{
		buffer:       NewBuffer(),
		state:        InitialState(),
		history:      NewHistory(0),
		logger:       slog.Default(),
		updateSignal: make(chan Signal, 100), // Buffered channel for updates
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *editor) GetBuffer() Buffer {
	return e.buffer
}

func (e *editor) SetBuffer(buffer Buffer) {
	e.buffer = buffer
	e.buffer.SetCursor(e.buffer.GetCursor())
	// Reset history when buffer changes completely
	e.history.Clear()
	e.lastCommand = nil
}

func (e *editor) GetCursor() Position {
	return e.buffer.GetCursor().Position
}

func (e *editor) GetState() State {
	return e.state
}

func (e *editor) View() View {
	return View{
		Lines:          e.buffer.GetLines(),
		Cursor:         e.GetCursor(),
		ShowRowCursor:  e.state.ShowRowCursor,
		ShowLineCursor: e.state.ShowLineCursor,
	}
}

func (e *editor) Clipboard() (string, bool) {
	return e.clipboard, e.hasClipboard
}

func (e *editor) LastCommand() (Command, bool) {
	if e.lastCommand == nil {
		return Command{}, false
	}
	return *e.lastCommand, true
}

func (e *editor) HistoryLen() int {
	return e.history.Len()
}

func (e *editor) GetUpdateSignalChan() <-chan Signal {
	return e.updateSignal // Return the read-only channel
}

// Execute parses one line of input and dispatches it. Unrecognized input
// is ignored; ok reports whether a command ran.
func (e *editor) Execute(input string) (Command, bool) {
	cmd, ok := Parse(input)
	if !ok {
		e.logger.Debug("ignoring input", "input", input, "err", ErrUnknownCommand)
		return Command{}, false
	}

	e.Dispatch(cmd)
	return cmd, true
}

// Dispatch runs a command through the operation table. Modifying commands
// push a snapshot first. Boundary conditions are absorbed.
func (e *editor) Dispatch(cmd Command) {
	op, ok := operations[cmd.ID]
	if !ok {
		e.logger.Debug("ignoring command", "command", cmd.String(), "err", ErrUnknownCommand)
		return
	}

	if op.modifying {
		e.history.Push(e.snapshot())
	}

	if err := op.run(e, cmd.Arg); err != nil {
		if !absorbed(err) {
			e.logger.Error("command failed", "command", cmd.String(), "err", err)
		} else {
			e.logger.Debug("command had no effect", "command", cmd.String(), "reason", err)
		}
	}

	// Keep the cursor inside the buffer whatever the operation did
	e.buffer.SetCursor(e.buffer.GetCursor())

	if op.repeatable {
		last := cmd
		e.lastCommand = &last
	}
}

// --- History Management (Snapshot Implementation) ---

func (e *editor) snapshot() Snapshot {
	return Snapshot{
		buffer:         e.buffer.Clone(),
		clipboard:      e.clipboard,
		hasClipboard:   e.hasClipboard,
		showRowCursor:  e.state.ShowRowCursor,
		showLineCursor: e.state.ShowLineCursor,
	}
}

func (e *editor) restore(s Snapshot) {
	e.buffer = s.buffer
	e.clipboard = s.clipboard
	e.hasClipboard = s.hasClipboard
	e.state.ShowRowCursor = s.showRowCursor
	e.state.ShowLineCursor = s.showLineCursor
}

// Undo replaces the live state with the most recent snapshot.
func (e *editor) Undo() error {
	s, err := e.history.Pop()
	if err != nil {
		return err
	}

	e.restore(s)
	return nil
}

// Repeat dispatches the last repeatable command again.
func (e *editor) Repeat() error {
	last, ok := e.LastCommand()
	if !ok {
		return ErrNothingToRepeat
	}

	e.Dispatch(last)
	return nil
}
