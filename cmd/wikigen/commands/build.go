package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/wikigen/internal/builder"
	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
	"git.home.luguber.info/inful/wikigen/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	MetricsFile string `name:"metrics-file" help:"Write build metrics in Prometheus text format to this file (overrides metrics_file)" type:"path"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if b.MetricsFile != "" {
		cfg.MetricsFile = b.MetricsFile
	}

	var opts []builder.Option
	var prom *metrics.PrometheusRecorder
	if cfg.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		opts = append(opts, builder.WithRecorder(prom))
	}

	report, buildErr := builder.New(cfg, opts...).Build(g.Context)

	if prom != nil && report != nil {
		if err := prom.WriteTextfile(cfg.MetricsFile); err != nil {
			werr := ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write metrics file").
				Fatal().WithContext("path", cfg.MetricsFile).Build()
			if buildErr == nil {
				return werr
			}
			slog.Warn("Failed to write metrics file", logfields.Path(cfg.MetricsFile), logfields.Error(err))
		} else {
			slog.Debug("Wrote metrics file", logfields.Path(cfg.MetricsFile))
		}
	}
	return buildErr
}
