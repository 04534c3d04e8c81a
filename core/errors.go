package core

import (
	"errors"
)

// Motion and edit primitives report boundary conditions with these errors.
// The dispatcher absorbs all of them: a command that cannot apply is a no-op.
var (
	ErrEndOfBuffer     = errors.New("end of buffer")
	ErrStartOfBuffer   = errors.New("start of buffer")
	ErrEndOfLine       = errors.New("end of line")
	ErrStartOfLine     = errors.New("start of line")
	ErrInvalidPosition = errors.New("invalid position")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrEmptyClipboard  = errors.New("clipboard is empty")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrNothingToRepeat = errors.New("nothing to repeat")
)

// absorbed reports whether err is one of the conditions the dispatcher
// swallows without telling the user.
func absorbed(err error) bool {
	switch {
	case errors.Is(err, ErrEndOfBuffer),
		errors.Is(err, ErrStartOfBuffer),
		errors.Is(err, ErrEndOfLine),
		errors.Is(err, ErrStartOfLine),
		errors.Is(err, ErrEmptyClipboard),
		errors.Is(err, ErrNothingToUndo),
		errors.Is(err, ErrNothingToRepeat):
		return true
	}
	return false
}
