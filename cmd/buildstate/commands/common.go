package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/buildstate/internal/config"
	"git.home.luguber.info/inful/buildstate/internal/logfields"
	"git.home.luguber.info/inful/buildstate/internal/metrics"
	"git.home.luguber.info/inful/buildstate/internal/state"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Global) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out(), format, args...)
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config          string           `short:"c" help:"Configuration file path (default: buildstate.yaml if present)"`
	StateFile       string           `short:"s" name:"state-file" help:"Global state file (overrides state.file and BUILDSTATE_STATE_FILE)"`
	MetricsTextfile string           `name:"metrics-textfile" help:"Write Prometheus metrics to this textfile when the command finishes"`
	Verbose         bool             `short:"v" help:"Enable verbose logging"`
	Version         kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init        InitCmd        `cmd:"" help:"Initialize a new configuration file"`
	Show        ShowCmd        `cmd:"" help:"Show the recorded global state"`
	AddPackages AddPackagesCmd `cmd:"" name:"add-packages" help:"Record build packages used by the build"`
	AddSnaps    AddSnapsCmd    `cmd:"" name:"add-snaps" help:"Record build snaps used by the build"`
	SetGrade    SetGradeCmd    `cmd:"" name:"set-grade" help:"Set the grade the artifact must meet"`
	ClearGrade  ClearGradeCmd  `cmd:"" name:"clear-grade" help:"Remove the required grade"`
	CheckExec   CheckExecCmd   `cmd:"" name:"check-exec" help:"Check that paths are runnable executables"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ResolveStatePath determines the state file. Priority: CLI flag > env > config file > default.
func ResolveStatePath(cliStateFile string, cfg *config.Config) string {
	if cliStateFile != "" {
		return cliStateFile
	}
	return cfg.State.File
}

func (c *CLI) configPath() string {
	if c.Config == "" {
		return config.DefaultConfigFile
	}
	return c.Config
}

// withStore loads configuration, opens the state store for fn and exports
// metrics afterwards when a textfile is configured.
func (c *CLI) withStore(g *Global, fn func(st *state.Store) error) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	textfile := cfg.Metrics.Textfile
	if c.MetricsTextfile != "" {
		textfile = c.MetricsTextfile
	}

	reg := prom.NewRegistry()
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if textfile != "" {
		recorder = metrics.NewPrometheusRecorder(reg)
	}

	st := state.NewStore(ResolveStatePath(c.StateFile, cfg)).
		WithLogger(g.logger()).
		WithRecorder(recorder)

	runErr := fn(st)

	if textfile != "" {
		if err := metrics.WriteTextfile(textfile, reg); err != nil {
			g.logger().Warn("Failed to write metrics textfile", logfields.Path(textfile), logfields.Error(err))
		}
	}
	return runErr
}
