// Package session connects an editor to its renderer: one line of input in,
// display rows out.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ionut-t/lined/core"
	"github.com/ionut-t/lined/render"
)

type Session struct {
	editor   core.Editor
	renderer *render.Renderer
	autoShow bool
	logger   *slog.Logger
}

type Option func(*Session)

// WithAutoShow renders the buffer after every recognized command except
// help and quit.
func WithAutoShow(autoShow bool) Option {
	return func(s *Session) {
		s.autoShow = autoShow
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(editor core.Editor, renderer *render.Renderer, opts ...Option) *Session {
	s := &Session{
		editor:   editor,
		renderer: renderer,
		autoShow: true,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Editor() core.Editor {
	return s.editor
}

// Handle executes one line of input and returns the rows to print.
// quit is true once the editor has processed "q". The buffer is not shown
// after help, whether "?" was typed or replayed by "r".
func (s *Session) Handle(line string) (out []string, quit bool) {
	cmd, ok := s.editor.Execute(line)
	if ok {
		s.logger.Debug("executed", "command", cmd.String(), "cursor", s.editor.GetCursor())
	}

	rendered, helped := false, false
	for drained := false; !drained; {
		select {
		case signal := <-s.editor.GetUpdateSignalChan():
			switch signal := signal.(type) {
			case core.RenderSignal:
				out = append(out, s.renderer.Rows(s.editor.View())...)
				rendered = true
			case core.HelpSignal:
				out = append(out, s.renderer.Help(core.Commands())...)
				helped = true
			case core.ErrorSignal:
				out = append(out, s.renderer.Error(signal.Value()))
			case core.QuitSignal:
				quit = true
			}
		default:
			drained = true
		}
	}

	if ok && s.autoShow && !rendered && !helped && !quit {
		out = append(out, s.renderer.Rows(s.editor.View())...)
	}

	return out, quit || s.editor.GetState().Quit
}

// Run reads commands line by line from r until "q", EOF or ctx is done,
// writing rendered rows to w.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, quit := s.Handle(strings.TrimSuffix(scanner.Text(), "\r"))
		for _, row := range out {
			if _, err := fmt.Fprintln(w, row); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		if quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
