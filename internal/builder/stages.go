package builder

import (
	"context"
	"errors"
	"log/slog"
	"time"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
)

// StageName is a strongly-typed identifier for a build stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageLoadRecords      StageName = "load_records"
	StageResolveFunctions StageName = "resolve_functions"
	StageWalkCategories   StageName = "walk_categories"
	StageResolveRelations StageName = "resolve_relations"
	StageEmitPages        StageName = "emit_pages"
	StageCopyAssets       StageName = "copy_assets"
)

// Stage is one step of the pipeline operating on the session.
type Stage func(ctx context.Context, s *Session) error

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// StageResult enumerates per-stage outcomes.
type StageResult string

const (
	StageResultSuccess  StageResult = "success"
	StageResultFatal    StageResult = "fatal"
	StageResultCanceled StageResult = "canceled"
)

func defaultStages() []StageDef {
	return []StageDef{
		{StageLoadRecords, stageLoadRecords},
		{StageResolveFunctions, stageResolveFunctions},
		{StageWalkCategories, stageWalkCategories},
		{StageResolveRelations, stageResolveRelations},
		{StageEmitPages, stageEmitPages},
		{StageCopyAssets, stageCopyAssets},
	}
}

// runStages executes stages in order, recording timing and stopping on the
// first error. Cancellation is honoured between stages.
func runStages(ctx context.Context, s *Session, stages []StageDef, observer BuildObserver) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			observer.OnStageComplete(st.Name, 0, StageResultCanceled)
			return ferrors.WrapError(err, ferrors.CategoryInternal, "build canceled").
				WithContext("stage", string(st.Name)).Build()
		}
		observer.OnStageStart(st.Name)
		t0 := time.Now()
		err := st.Fn(ctx, s)
		dur := time.Since(t0)
		s.Report.StageDurations[string(st.Name)] = dur

		result := StageResultSuccess
		switch {
		case errors.Is(err, context.Canceled):
			result = StageResultCanceled
		case err != nil:
			result = StageResultFatal
		}
		observer.OnStageComplete(st.Name, dur, result)
		slog.Debug("Stage finished",
			logfields.BuildID(s.ID),
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000),
			slog.String("result", string(result)))
		if err != nil {
			return err
		}
	}
	return nil
}
