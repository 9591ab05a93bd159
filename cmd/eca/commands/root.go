// Package commands implements the eca command line.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"unbounded-ca/internal/printer"
	"unbounded-ca/internal/runconfig"
)

// app carries state shared by all subcommands once the root has loaded the
// configuration.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg    runconfig.Config
	logger *slog.Logger
}

// NewRootCmd builds the eca command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "eca",
		Short: "Simulate elementary cellular automata on an unbounded tape",
		Long: `eca simulates one-dimensional elementary cellular automata over an
infinite tape of inactive cells, materializing only the window the rule
actually reaches. Two engines are available: a linked cell graph that can
prune decayed boundary cells, and a centered two-sided tape.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML run file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newRunCmd(a), newCenterCmd(a), newVerifyCmd(a), newSimsCmd(a))
	return root
}

// Execute runs the command tree, printing any error to stderr.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printer.Failure(root.ErrOrStderr(), "Error: "+err.Error(), nil)
	}
	return err
}

func (a *app) setup(stderr io.Writer) error {
	logger, err := newLogger(stderr, a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logger.With("run_id", uuid.NewString())
	if a.noColor {
		printer.SetColor(false)
	}

	a.cfg = runconfig.Default()
	if a.configPath != "" {
		cfg, err := runconfig.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.logger.Debug("loaded config", "path", a.configPath)
	}
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
