// Package render turns an editor view into display rows.
//
// With the line cursor on, every row gets a one-column gutter holding "*"
// on the cursor row. With the row cursor on, the character under the
// cursor is highlighted, or a caret row is drawn under it when color is off.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/lined/core"
	"github.com/rivo/uniseg"
)

type Theme struct {
	CursorStyle     lipgloss.Style
	LineMarkerStyle lipgloss.Style
	HelpKeyStyle    lipgloss.Style
	HelpTextStyle   lipgloss.Style
	ErrorStyle      lipgloss.Style
}

var DefaultTheme = Theme{
	CursorStyle:     lipgloss.NewStyle().Background(lipgloss.Color("2")),
	LineMarkerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	HelpKeyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true),
	HelpTextStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	ErrorStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

const (
	lineMarker = "*"
	caret      = "^"
)

type Renderer struct {
	theme Theme
	color bool
}

type Option func(*Renderer)

// WithColor turns styling on or off. Without color the row cursor is drawn
// as a caret row.
func WithColor(color bool) Option {
	return func(r *Renderer) {
		r.color = color
	}
}

func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{theme: DefaultTheme, color: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rows renders every line of the view.
func (r *Renderer) Rows(v core.View) []string {
	rows := make([]string, 0, len(v.Lines)+1)

	for i, line := range v.Lines {
		current := i == v.Cursor.Row

		gutter := ""
		if v.ShowLineCursor {
			gutter = " "
			if current {
				gutter = r.style(r.theme.LineMarkerStyle, lineMarker)
			}
		}

		if !current || !v.ShowRowCursor {
			rows = append(rows, gutter+line)
			continue
		}

		if r.color {
			rows = append(rows, gutter+r.cursorSegment(line, v.Cursor.Col))
			continue
		}

		// Plain output: keep the line untouched and point at the cursor from below
		rows = append(rows, gutter+line)
		pad := ""
		if v.ShowLineCursor {
			pad = " "
		}
		rows = append(rows, pad+strings.Repeat(" ", displayWidth(line, v.Cursor.Col))+caret)
	}

	return rows
}

// cursorSegment highlights the rune at col. A cursor past the last rune
// highlights a trailing space.
func (r *Renderer) cursorSegment(line string, col int) string {
	runes := []rune(line)
	col = max(0, min(col, len(runes)))

	under := " "
	rest := ""
	if col < len(runes) {
		under = string(runes[col])
		rest = string(runes[col+1:])
	}

	return string(runes[:col]) + r.theme.CursorStyle.Render(under) + rest
}

// displayWidth returns the terminal width of the first col runes of line.
func displayWidth(line string, col int) int {
	runes := []rune(line)
	col = max(0, min(col, len(runes)))
	return uniseg.StringWidth(string(runes[:col]))
}

// Help renders the command table as aligned "cmd - description" rows.
func (r *Renderer) Help(commands []core.CommandInfo) []string {
	width := 0
	for _, c := range commands {
		width = max(width, uniseg.StringWidth(string(c.ID)))
	}

	rows := make([]string, 0, len(commands))
	for _, c := range commands {
		key := string(c.ID) + strings.Repeat(" ", width-uniseg.StringWidth(string(c.ID)))
		rows = append(rows, r.style(r.theme.HelpKeyStyle, key)+" - "+r.style(r.theme.HelpTextStyle, c.Description))
	}
	return rows
}

// Error renders a failure reported by the editor.
func (r *Renderer) Error(err error) string {
	return r.style(r.theme.ErrorStyle, err.Error())
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}
