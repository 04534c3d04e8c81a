package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	adapter "github.com/ionut-t/lined/adapter-bubbletea"
	"github.com/ionut-t/lined/core"
	"github.com/ionut-t/lined/internal/config"
	"github.com/ionut-t/lined/internal/logger"
	"github.com/ionut-t/lined/internal/session"
	"github.com/ionut-t/lined/render"
)

var (
	// Version info (set by ldflags)
	version = "dev"

	// Flags
	configPath string
	scriptPath string
	debug      bool
	noColor    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "lined",
		Short: "A line-oriented modal text editor",
		Long: `lined edits an in-memory buffer one command per line.

Type ? at the prompt for the list of commands, q to quit.
When stdin is not a terminal, or --script is given, commands are read
line by line and the rendered buffer is written to stdout.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			if noColor {
				cfg.Color = false
			}
			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/lined/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&scriptPath, "script", "", "read commands from a file instead of stdin")
	rootCmd.Flags().String("prompt", ">", "input prompt")
	_ = v.BindPFlag("prompt", rootCmd.Flags().Lookup("prompt"))

	return rootCmd
}

func run(ctx context.Context, cfg *config.Config) error {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if debug {
		level = logger.LevelDebug
	}
	logger.InitLogger(level, cfg.Log.File)
	defer logger.Close()
	logger.Info("lined starting", "version", version, "config", configPath)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		return runLines(ctx, cfg, f, os.Stdout)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runLines(ctx, cfg, os.Stdin, os.Stdout)
	}

	sess := newSession(cfg, cfg.Color)
	p := tea.NewProgram(adapter.New(sess, cfg.Prompt), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logger.Debug("lined exited", "history", sess.Editor().HistoryLen())
	return nil
}

func newSession(cfg *config.Config, color bool) *session.Session {
	opts := []core.Option{
		core.WithLogger(logger.With("component", "core")),
		core.WithMaxHistory(cfg.History.Limit),
	}
	if cfg.Clipboard.System {
		opts = append(opts, core.WithClipboard(adapter.SystemClipboard{}))
	}

	return session.New(
		core.New(opts...),
		render.New(render.WithColor(color)),
		session.WithAutoShow(cfg.AutoShow),
		session.WithLogger(logger.With("component", "session")),
	)
}

// runLines executes commands read from r without a prompt. Styled output
// only reaches a terminal, so rows written anywhere else draw the row
// cursor as a caret row.
func runLines(ctx context.Context, cfg *config.Config, r io.Reader, w io.Writer) error {
	sess := newSession(cfg, cfg.Color && isTerminal(w))
	if err := sess.Run(ctx, r, w); err != nil {
		return err
	}
	logger.Debug("lined exited", "history", sess.Editor().HistoryLen())
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
