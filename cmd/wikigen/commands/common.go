package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/wikigen/internal/config"
	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
)

// Global is shared state passed to every command's Run method.
type Global struct {
	Context context.Context
}

// CLI definition & global flags.
type CLI struct {
	Root     string           `short:"r" help:"Repository root holding functions/, articles/, elements/ and web/" default:"." type:"path"`
	Config   string           `short:"c" help:"Configuration file path (default: <root>/wikigen.yaml when present)" type:"path"`
	Verbose  bool             `short:"v" help:"Enable verbose logging"`
	LogLevel string           `name:"log-level" help:"Log level (debug|info|warn|error)" env:"WIKIGEN_LOG_LEVEL"`
	Version  kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Clear the output directory and generate the wiki"`
	Clear ClearCmd `cmd:"" help:"Delete the generated wiki output"`

	level slog.LevelVar
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	c.level.Set(c.flagLevel().SlogLevel())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &c.level}))
	slog.SetDefault(logger)
	return nil
}

func (c *CLI) flagLevel() config.LogLevel {
	if c.Verbose {
		return config.LogLevelDebug
	}
	return config.NormalizeLogLevel(c.LogLevel)
}

// loadConfig loads the repository configuration. The configured log level
// applies only when neither --verbose nor --log-level/WIKIGEN_LOG_LEVEL is given.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Root, c.Config)
	if err != nil {
		return nil, err
	}
	if !c.Verbose && c.LogLevel == "" {
		c.level.Set(cfg.Logging.Level.SlogLevel())
	}
	slog.Debug("Configuration loaded", slog.String("config", cfg.String()))
	return cfg, nil
}

// ExitCode maps the outcome of a command to the process exit status. An
// interrupted run exits cleanly.
func ExitCode(ctx context.Context, err error, verbose bool) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		slog.Info("Interrupted, stopping")
		return 0
	}
	return ferrors.NewCLIErrorAdapter(verbose, slog.Default()).Report(err)
}
