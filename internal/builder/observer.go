package builder

import (
	"time"

	"git.home.luguber.info/inful/wikigen/internal/metrics"
)

// BuildObserver receives callbacks around stage execution and build lifecycle.
type BuildObserver interface {
	OnStageStart(stage StageName)
	OnStageComplete(stage StageName, duration time.Duration, result StageResult)
	OnBuildComplete(report *BuildReport)
}

// recorderObserver adapts metrics.Recorder into a BuildObserver.
type recorderObserver struct{ rec metrics.Recorder }

func (r recorderObserver) OnStageStart(StageName) {}

func (r recorderObserver) OnStageComplete(stage StageName, d time.Duration, result StageResult) {
	r.rec.ObserveStageDuration(string(stage), d)
	if result == StageResultFatal {
		r.rec.IncStageResult(string(stage), metrics.ResultFatal)
		return
	}
	if result == StageResultSuccess {
		r.rec.IncStageResult(string(stage), metrics.ResultSuccess)
	}
}

func (r recorderObserver) OnBuildComplete(report *BuildReport) {
	r.rec.ObserveBuildDuration(report.Duration())
	r.rec.IncBuildOutcome(metrics.BuildOutcomeLabel(report.Outcome))
	for kind, n := range report.Pages {
		r.rec.AddPages(string(kind), n)
	}
	for _, o := range report.Omissions {
		r.rec.IncSoftOmission(o.Reason)
	}
}
