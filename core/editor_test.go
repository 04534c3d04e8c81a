package core

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EditorTestSuite struct {
	suite.Suite
	editor *editor
}

func TestEditorSuite(t *testing.T) {
	suite.Run(t, new(EditorTestSuite))
}

func (s *EditorTestSuite) SetupTest() {
	s.editor = New().(*editor)
}

// load replaces the buffer and places the cursor.
func (s *EditorTestSuite) load(row, col int, lines ...string) {
	b := NewBufferFromLines(lines...)
	b.SetCursor(Cursor{Position: Position{Row: row, Col: col}})
	s.editor.SetBuffer(b)
}

func (s *EditorTestSuite) run(inputs ...string) {
	for _, in := range inputs {
		s.editor.Execute(in)
	}
}

func (s *EditorTestSuite) assertState(lines []string, row, col int) {
	s.T().Helper()
	s.Equal(lines, s.editor.GetBuffer().GetLines())
	s.Equal(Position{Row: row, Col: col}, s.editor.GetCursor())
}

func (s *EditorTestSuite) TestInitialState() {
	s.assertState([]string{""}, 0, 0)
	s.Equal(State{}, s.editor.GetState())
	s.Equal(0, s.editor.HistoryLen())

	_, ok := s.editor.Clipboard()
	s.False(ok)
	_, ok = s.editor.LastCommand()
	s.False(ok)
}

func (s *EditorTestSuite) TestInsertAppendUndoDelete() {
	s.run("i Hello")
	s.assertState([]string{"Hello"}, 0, 5)

	s.run("a !")
	s.assertState([]string{"Hello!"}, 0, 6)

	s.run("u")
	s.assertState([]string{"Hello"}, 0, 5)

	s.run("dd")
	s.assertState([]string{""}, 0, 0)
}

func (s *EditorTestSuite) TestWordThenDeleteWord() {
	s.load(0, 0, "foo bar", "baz")

	s.run("w")
	s.assertState([]string{"foo bar", "baz"}, 0, 4)

	s.run("dw")
	s.assertState([]string{"foo ", "baz"}, 0, 4)
}

func (s *EditorTestSuite) TestYankMovePaste() {
	s.load(0, 0, "hello", "world")

	s.run("yy", "k", "p")
	s.assertState([]string{"hello", "world", "hello"}, 2, 0)
}

func (s *EditorTestSuite) TestYankPasteDeleteRoundTrip() {
	s.load(0, 2, "alpha", "beta")

	s.run("yy", "p")
	s.assertState([]string{"alpha", "alpha", "beta"}, 1, 0)

	s.run("dd")
	s.Equal([]string{"alpha", "beta"}, s.editor.GetBuffer().GetLines())
}

func (s *EditorTestSuite) TestInsertInsideLine() {
	s.load(0, 2, "abcd")
	s.run("i XY")
	s.assertState([]string{"abXYcd"}, 0, 4)
}

func (s *EditorTestSuite) TestInsertKeepsArgumentVerbatim() {
	s.run("i hello  world ")
	s.assertState([]string{"hello  world "}, 0, 13)
}

func (s *EditorTestSuite) TestAppend() {
	s.load(0, 0, "ac")
	s.run("a b")
	s.assertState([]string{"abc"}, 0, 2)

	s.load(0, 0, "")
	s.run("a x")
	s.assertState([]string{"x"}, 0, 1)

	s.load(0, 2, "ab")
	s.run("a c")
	s.assertState([]string{"abc"}, 0, 3)
}

func (s *EditorTestSuite) TestDeleteChar() {
	s.load(0, 1, "abc")
	s.run("x")
	s.assertState([]string{"ac"}, 0, 1)

	s.run("x")
	s.assertState([]string{"a"}, 0, 1)

	s.run("x")
	s.assertState([]string{"a"}, 0, 1)
}

func (s *EditorTestSuite) TestDeleteWordBoundaries() {
	tests := []struct {
		name string
		line string
		col  int
		want string
	}{
		{"word and trailing spaces", "foo   bar", 0, "bar"},
		{"from inside a word", "foo bar", 1, "fbar"},
		{"last word", "foo bar", 4, "foo "},
		{"lone space run", "foo   bar", 3, "foobar"},
		{"trailing space run", "foo   ", 3, "foo"},
		{"at end of line", "foo", 3, "foo"},
		{"empty line", "", 0, ""},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.load(0, tt.col, tt.line, "next")
			s.run("dw")
			s.Equal([]string{tt.want, "next"}, s.editor.GetBuffer().GetLines())
			s.LessOrEqual(s.editor.GetCursor().Col, len([]rune(tt.want)))
		})
	}
}

func (s *EditorTestSuite) TestDeleteLine() {
	s.load(1, 2, "a", "bcd", "e")
	s.run("dd")
	s.assertState([]string{"a", "e"}, 1, 0)

	s.run("dd")
	s.assertState([]string{"a"}, 0, 0)

	s.run("dd")
	s.assertState([]string{""}, 0, 0)

	s.run("dd")
	s.assertState([]string{""}, 0, 0)
}

func (s *EditorTestSuite) TestOpenLines() {
	s.load(0, 1, "a", "b")
	s.run("o")
	s.assertState([]string{"a", "", "b"}, 1, 0)

	s.load(0, 1, "a", "b")
	s.run("O")
	s.assertState([]string{"", "a", "b"}, 0, 0)
}

func (s *EditorTestSuite) TestPasteAbove() {
	s.load(1, 0, "a", "b")
	s.run("yy", "P")
	s.assertState([]string{"a", "b", "b"}, 1, 0)
}

func (s *EditorTestSuite) TestPasteWithEmptyClipboardIsNoop() {
	s.load(0, 0, "a")
	s.run("p", "P")
	s.assertState([]string{"a"}, 0, 0)
}

func (s *EditorTestSuite) TestPasteEmptyYankedLine() {
	s.load(0, 0, "")
	s.run("yy", "p")
	s.assertState([]string{"", ""}, 1, 0)
}

func (s *EditorTestSuite) TestNavigation() {
	s.load(0, 0, "foo bar", "x")

	s.run("l", "l")
	s.Equal(Position{0, 2}, s.editor.GetCursor())
	s.run("h")
	s.Equal(Position{0, 1}, s.editor.GetCursor())
	s.run("$")
	s.Equal(Position{0, 7}, s.editor.GetCursor())
	s.run("b")
	s.Equal(Position{0, 4}, s.editor.GetCursor())
	s.run("^")
	s.Equal(Position{0, 0}, s.editor.GetCursor())
	s.run("$", "k")
	s.Equal(Position{1, 1}, s.editor.GetCursor())
	s.run("j")
	s.Equal(Position{0, 1}, s.editor.GetCursor())
}

func (s *EditorTestSuite) TestMotionsClampSilently() {
	s.load(0, 0, "ab")

	s.run("h", "j", "k", "b")
	s.assertState([]string{"ab"}, 0, 0)

	s.run("$", "l", "w")
	s.assertState([]string{"ab"}, 0, 2)
	s.Equal(0, s.editor.HistoryLen())
}

func (s *EditorTestSuite) TestNavigationDoesNotSnapshot() {
	s.load(0, 0, "foo bar")
	s.run("w", "b", "$", "^", ".", ";", "s", "?")
	s.Equal(0, s.editor.HistoryLen())
}

func (s *EditorTestSuite) TestUndoRestoresEveryModifyingCommand() {
	commands := []string{"i zz", "a zz", "x", "dw", "yy", "p", "P", "dd", "o", "O"}

	for _, command := range commands {
		s.Run(command, func() {
			s.SetupTest()
			s.load(1, 2, "first line", "second line", "third")
			s.run("yy", "j")
			s.Require().Equal(1, s.editor.HistoryLen())

			wantLines := s.editor.GetBuffer().GetLines()
			wantCursor := s.editor.GetCursor()
			wantClip, _ := s.editor.Clipboard()

			s.run(command)
			s.Equal(2, s.editor.HistoryLen())

			s.run("u")
			s.Equal(wantLines, s.editor.GetBuffer().GetLines())
			s.Equal(wantCursor, s.editor.GetCursor())
			clip, ok := s.editor.Clipboard()
			s.True(ok)
			s.Equal(wantClip, clip)
		})
	}
}

func (s *EditorTestSuite) TestUndoRestoresClipboard() {
	s.load(0, 0, "hello")
	s.run("yy")
	clip, ok := s.editor.Clipboard()
	s.True(ok)
	s.Equal("hello", clip)

	s.run("u")
	_, ok = s.editor.Clipboard()
	s.False(ok)
}

func (s *EditorTestSuite) TestUndoRestoresToggles() {
	s.run("i a", ".", ";")
	s.True(s.editor.GetState().ShowRowCursor)

	s.run("u")
	s.False(s.editor.GetState().ShowRowCursor)
	s.False(s.editor.GetState().ShowLineCursor)
}

func (s *EditorTestSuite) TestConsecutiveUndoWalksBack() {
	s.run("i a", "i b", "i c")
	s.assertState([]string{"abc"}, 0, 3)

	s.run("u", "u")
	s.assertState([]string{"a"}, 0, 1)

	s.run("u")
	s.assertState([]string{""}, 0, 0)

	s.run("u")
	s.assertState([]string{""}, 0, 0)
}

func (s *EditorTestSuite) TestUndoWithEmptyHistory() {
	s.ErrorIs(s.editor.Undo(), ErrNothingToUndo)
	s.run("u")
	s.assertState([]string{""}, 0, 0)
}

func (s *EditorTestSuite) TestRepeatInsert() {
	s.run("i hello", "r")
	s.assertState([]string{"hellohello"}, 0, 10)
	s.Equal(2, s.editor.HistoryLen())

	s.run("u")
	s.assertState([]string{"hello"}, 0, 5)
}

func (s *EditorTestSuite) TestRepeatMotion() {
	s.load(0, 0, "abc")
	s.run("l", "r")
	s.Equal(Position{0, 2}, s.editor.GetCursor())
	s.Equal(0, s.editor.HistoryLen())
}

func (s *EditorTestSuite) TestRepeatRepeatsLastRepeatable() {
	s.run("i x", "r", "r")
	s.assertState([]string{"xxx"}, 0, 3)

	last, ok := s.editor.LastCommand()
	s.True(ok)
	s.Equal(Command{ID: CmdInsert, Arg: "x"}, last)
}

func (s *EditorTestSuite) TestUndoIsNeverLastCommand() {
	s.load(0, 0, "abcd")
	s.run("l", "u", "r")
	s.Equal(Position{0, 2}, s.editor.GetCursor())

	last, ok := s.editor.LastCommand()
	s.True(ok)
	s.Equal(Command{ID: CmdRight}, last)
}

func (s *EditorTestSuite) TestRepeatWithoutLastCommand() {
	s.ErrorIs(s.editor.Repeat(), ErrNothingToRepeat)
	s.run("r")
	s.assertState([]string{""}, 0, 0)
	s.Equal(0, s.editor.HistoryLen())
}

func (s *EditorTestSuite) TestUnknownInputIsIgnored() {
	s.run("i a")
	before := s.editor.HistoryLen()

	cmd, ok := s.editor.Execute("zz top")
	s.False(ok)
	s.Equal(Command{}, cmd)
	s.Equal(before, s.editor.HistoryLen())

	last, _ := s.editor.LastCommand()
	s.Equal(CmdInsert, last.ID)
}

func (s *EditorTestSuite) TestArgumentlessInsertIsIgnored() {
	_, ok := s.editor.Execute("i")
	s.False(ok)
	s.Equal(0, s.editor.HistoryLen())
}

func (s *EditorTestSuite) TestToggles() {
	s.run(".")
	s.True(s.editor.GetState().ShowRowCursor)
	s.run(";")
	s.True(s.editor.GetState().ShowLineCursor)
	s.run(".", ";")
	s.Equal(State{}, s.editor.GetState())
}

func (s *EditorTestSuite) TestSignals() {
	s.run("s", "?", "q")

	signals := s.editor.GetUpdateSignalChan()
	s.IsType(RenderSignal{}, <-signals)
	s.IsType(HelpSignal{}, <-signals)
	s.IsType(QuitSignal{}, <-signals)
	s.True(s.editor.GetState().Quit)
}

func (s *EditorTestSuite) TestSnapshotDoesNotAliasLiveState() {
	s.run("i abc")
	s.Require().Equal(1, s.editor.history.Len())
	snap := s.editor.history.snapshots[0]

	s.run("i def", "o")
	s.Equal([]string{""}, snap.buffer.GetLines())
	s.Equal(Position{0, 0}, snap.buffer.GetCursor().Position)
}

func (s *EditorTestSuite) TestView() {
	s.load(1, 1, "a", "bc")
	s.run(".")

	v := s.editor.View()
	s.Equal([]string{"a", "bc"}, v.Lines)
	s.Equal(Position{1, 1}, v.Cursor)
	s.True(v.ShowRowCursor)
	s.False(v.ShowLineCursor)
}

func (s *EditorTestSuite) TestSetBufferResetsHistory() {
	s.run("i a", "i b")
	s.load(0, 0, "fresh")
	s.Equal(0, s.editor.HistoryLen())
	_, ok := s.editor.LastCommand()
	s.False(ok)
}

type recordingClipboard struct {
	written []string
	err     error
}

func (c *recordingClipboard) Write(text string) error {
	c.written = append(c.written, text)
	return c.err
}

func TestYankMirrorsToClipboard(t *testing.T) {
	clip := &recordingClipboard{}
	e := New(WithClipboard(clip), WithBuffer(NewBufferFromLines("hello", "world")))

	e.Execute("yy")
	e.Execute("k")
	e.Execute("yy")

	assert.Equal(t, []string{"hello", "world"}, clip.written)
	assert.Empty(t, e.GetUpdateSignalChan())
}

func TestYankMirrorFailureIsSignalled(t *testing.T) {
	clip := &recordingClipboard{err: errors.New("boom")}
	e := New(WithClipboard(clip), WithBuffer(NewBufferFromLines("hello")))

	e.Execute("yy")

	got, ok := e.Clipboard()
	assert.True(t, ok)
	assert.Equal(t, "hello", got)

	require.Len(t, e.GetUpdateSignalChan(), 1)
	signal := <-e.GetUpdateSignalChan()
	errSignal, ok := signal.(ErrorSignal)
	require.True(t, ok)
	assert.ErrorContains(t, errSignal.Value(), "boom")
}

func TestMaxHistory(t *testing.T) {
	e := New(WithMaxHistory(2))
	for _, in := range []string{"i a", "i b", "i c"} {
		e.Execute(in)
	}
	assert.Equal(t, 2, e.HistoryLen())

	require.NoError(t, e.Undo())
	require.NoError(t, e.Undo())
	assert.ErrorIs(t, e.Undo(), ErrNothingToUndo)
	assert.Equal(t, []string{"a"}, e.GetBuffer().GetLines())
}

func TestSignalChannelNeverBlocks(t *testing.T) {
	e := New()
	for i := 0; i < 150; i++ {
		e.Execute("s")
	}
	assert.Len(t, e.GetUpdateSignalChan(), 100)
}

func TestCursorStaysInBounds(t *testing.T) {
	inputs := []string{
		"h", "j", "k", "l", "^", "$", "w", "b", "i ab c", "a d ", "x", "dw",
		"yy", "p", "P", "dd", "o", "O", "u", "r", ".", ";", "s",
	}
	rng := rand.New(rand.NewSource(1))
	e := New()

	for i := 0; i < 5000; i++ {
		in := inputs[rng.Intn(len(inputs))]
		e.Execute(in)

		lines := e.GetBuffer().GetLines()
		pos := e.GetCursor()
		require.NotEmpty(t, lines, "after %q", in)
		require.GreaterOrEqual(t, pos.Row, 0, "after %q", in)
		require.Less(t, pos.Row, len(lines), "after %q", in)
		require.GreaterOrEqual(t, pos.Col, 0, "after %q", in)
		require.LessOrEqual(t, pos.Col, len([]rune(lines[pos.Row])), "after %q", in)

		// drain render signals from "s"
		for len(e.GetUpdateSignalChan()) > 0 {
			<-e.GetUpdateSignalChan()
		}
	}
}
