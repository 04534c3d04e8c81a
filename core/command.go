package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CommandID identifies an editor command by the token the user types.
type CommandID string

const (
	CmdHelp             CommandID = "?"
	CmdToggleRowCursor  CommandID = "."
	CmdToggleLineCursor CommandID = ";"
	CmdLeft             CommandID = "h"
	CmdUp               CommandID = "j"
	CmdDown             CommandID = "k"
	CmdRight            CommandID = "l"
	CmdLineStart        CommandID = "^"
	CmdLineEnd          CommandID = "$"
	CmdWordForward      CommandID = "w"
	CmdWordBackward     CommandID = "b"
	CmdInsert           CommandID = "i"
	CmdAppend           CommandID = "a"
	CmdDeleteChar       CommandID = "x"
	CmdDeleteWord       CommandID = "dw"
	CmdYankLine         CommandID = "yy"
	CmdPasteBelow       CommandID = "p"
	CmdPasteAbove       CommandID = "P"
	CmdDeleteLine       CommandID = "dd"
	CmdOpenBelow        CommandID = "o"
	CmdOpenAbove        CommandID = "O"
	CmdUndo             CommandID = "u"
	CmdRepeat           CommandID = "r"
	CmdShow             CommandID = "s"
	CmdQuit             CommandID = "q"
)

// Command is a parsed line of input: the command token plus its argument text.
type Command struct {
	ID  CommandID
	Arg string
}

func (c Command) String() string {
	if c.Arg == "" {
		return string(c.ID)
	}
	return string(c.ID) + " " + c.Arg
}

// IsModifying reports whether the command takes an undo snapshot before it runs.
func (id CommandID) IsModifying() bool {
	op, ok := operations[id]
	return ok && op.modifying
}

// Parse splits a raw input line into a command token and its argument.
// The token is the first run of non-space characters. The argument is
// everything after the single space or tab that ends the token, kept verbatim.
// Unknown tokens, and i/a without text, are reported with ok == false.
func Parse(input string) (cmd Command, ok bool) {
	input = strings.TrimLeftFunc(input, unicode.IsSpace)
	if input == "" {
		return Command{}, false
	}

	token, arg := input, ""
	if i := strings.IndexFunc(input, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(input[i:])
		token, arg = input[:i], input[i+size:]
	}
	id := CommandID(token)

	op, known := operations[id]
	if !known {
		return Command{}, false
	}
	if op.needsArg && arg == "" {
		return Command{}, false
	}
	if !op.needsArg {
		arg = ""
	}

	return Command{ID: id, Arg: arg}, true
}
