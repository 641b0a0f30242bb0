// Package builder runs the wiki generation pipeline: load records, resolve
// function models, walk the category tree, resolve cross-references, emit
// pages and copy static assets.
package builder

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/wikigen/internal/config"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
	"git.home.luguber.info/inful/wikigen/internal/metrics"
	"git.home.luguber.info/inful/wikigen/internal/site"
)

// Builder generates the wiki described by a configuration.
type Builder struct {
	cfg      *config.Config
	recorder metrics.Recorder
	observer BuildObserver
	now      func() time.Time
	stages   []StageDef
}

// Option customises a Builder.
type Option func(*Builder)

// WithRecorder reports stage and build metrics to rec.
func WithRecorder(rec metrics.Recorder) Option {
	return func(b *Builder) {
		if rec != nil {
			b.recorder = rec
		}
	}
}

// WithClock overrides the time source used for the report and the copyright year.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// New creates a Builder for cfg.
func New(cfg *config.Config, opts ...Option) *Builder {
	b := &Builder{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
		stages:   defaultStages(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.observer = recorderObserver{rec: b.recorder}
	return b
}

// Clear deletes the output directory.
func (b *Builder) Clear() error {
	slog.Info("Clearing wiki build output", logfields.Path(b.cfg.Output.Directory))
	if _, err := site.Clear(b.cfg.Output.Directory); err != nil {
		return err
	}
	slog.Info("Done clearing wiki build output")
	return nil
}

// Build clears the output directory and generates the whole site. The
// returned report is non-nil whenever the pipeline started.
func (b *Builder) Build(ctx context.Context) (*BuildReport, error) {
	if err := b.Clear(); err != nil {
		return nil, err
	}

	start := b.now()
	s := &Session{
		ID:     uuid.NewString(),
		Config: b.cfg,
		Now:    start,
	}
	s.Report = newBuildReport(s.ID, start)

	log := slog.With(logfields.BuildID(s.ID))
	log.Info("Building wiki", logfields.Path(b.cfg.Output.Directory))

	err := runStages(ctx, s, b.stages, b.observer)
	s.Report.finish(b.now(), err, errors.Is(err, context.Canceled))
	b.observer.OnBuildComplete(s.Report)

	if err != nil {
		log.Warn("Build stopped", slog.String("outcome", string(s.Report.Outcome)), logfields.Error(err))
		return s.Report, err
	}
	log.Info("Done building wiki", slog.String("summary", s.Report.Summary()))
	return s.Report, nil
}
