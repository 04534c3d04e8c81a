package bubble_adapter

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/lined/internal/session"
)

type Theme struct {
	PromptStyle      lipgloss.Style
	EchoStyle        lipgloss.Style
	PlaceholderStyle lipgloss.Style
}

var DefaultTheme = Theme{
	PromptStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true),
	EchoStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	PlaceholderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var errClipboardUnsupported = errors.New("system clipboard is not available")

// SystemClipboard mirrors yanked lines to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// Model is the interactive prompt. Every submitted line is executed by the
// session and its output is printed above the prompt, so the terminal
// scrollback holds the whole transcript.
type Model struct {
	session  *session.Session
	input    textinput.Model
	prompt   string
	theme    Theme
	quitting bool
}

func New(s *session.Session, prompt string) Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "? for help"
	input.PromptStyle = DefaultTheme.PromptStyle
	input.PlaceholderStyle = DefaultTheme.PlaceholderStyle
	input.Focus()

	return Model{
		session: s,
		input:   input,
		prompt:  prompt,
		theme:   DefaultTheme,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line and prints the echo and the output.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	out, quit := m.session.Handle(line)

	cmds := []tea.Cmd{tea.Println(m.theme.EchoStyle.Render(m.prompt + line))}
	if len(out) > 0 {
		cmds = append(cmds, tea.Println(strings.Join(out, "\n")))
	}
	if quit {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}

	return m, tea.Sequence(cmds...)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View()
}

// Quitting reports whether the session has ended.
func (m Model) Quitting() bool {
	return m.quitting
}
