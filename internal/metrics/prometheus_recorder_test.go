package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("load_records", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncStageResult("load_records", ResultSuccess)
	pr.IncBuildOutcome(BuildOutcomeSuccess)
	pr.AddPages("function", 3)
	pr.AddPages("function", 0)
	pr.IncSoftOmission("unknown_category")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	counters := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				counters[mf.GetName()] += c.GetValue()
			}
		}
	}
	assert.InDelta(t, 3, counters["wikigen_pages_written_total"], 0)
	assert.InDelta(t, 1, counters["wikigen_soft_omissions_total"], 0)
	assert.InDelta(t, 1, counters["wikigen_build_outcomes_total"], 0)
	assert.InDelta(t, 1, counters["wikigen_stage_results_total"], 0)
}

func TestPrometheusRecorderWriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.AddPages("article", 2)

	path := filepath.Join(t.TempDir(), "wikigen.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `wikigen_pages_written_total{kind="article"} 2`), string(data))
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveStageDuration("emit_pages", time.Second)
		pr.IncBuildOutcome(BuildOutcomeFailed)
		pr.AddPages("category", 1)
		pr.IncSoftOmission("duplicate_category")
	})
}

func TestNoopRecorderSatisfiesRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.AddPages("function", 1)
	r.IncBuildOutcome(BuildOutcomeCanceled)
}
