package core

import (
	"log/slog"
)

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (rune index; len(line) is the append position)
}

// View is the read-only picture of the editor a renderer needs.
type View struct {
	Lines          []string
	Cursor         Position
	ShowRowCursor  bool
	ShowLineCursor bool
}

// Editor represents the main editor interface
type Editor interface {
	// Input handling
	Execute(input string) (Command, bool) // Parse and dispatch one line of input
	Dispatch(cmd Command)                 // Run an already parsed command

	// Buffer access
	GetBuffer() Buffer
	SetBuffer(Buffer) // Replace the buffer and reset history
	GetCursor() Position
	View() View

	// State Management
	GetState() State
	Clipboard() (string, bool)
	LastCommand() (Command, bool)

	// History management
	Undo() error
	Repeat() error
	HistoryLen() int

	GetUpdateSignalChan() <-chan Signal // For UI updates
	DispatchSignal(signal Signal)
}

// Clipboard receives every yanked line when a system clipboard is attached.
type Clipboard interface {
	Write(text string) error
}

// Option configures an editor created by New.
type Option func(*editor)

// WithClipboard mirrors yanked lines to an external clipboard.
func WithClipboard(clipboard Clipboard) Option {
	return func(e *editor) {
		e.external = clipboard
	}
}

// WithLogger sets the logger used for absorbed conditions.
func WithLogger(logger *slog.Logger) Option {
	return func(e *editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxHistory caps the number of undo snapshots. Zero means no cap.
func WithMaxHistory(limit int) Option {
	return func(e *editor) {
		e.history = NewHistory(limit)
	}
}

// WithBuffer starts the editor on an existing buffer.
func WithBuffer(buffer Buffer) Option {
	return func(e *editor) {
		if buffer != nil {
			e.buffer = buffer
		}
	}
}
