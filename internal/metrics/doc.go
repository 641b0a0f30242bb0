// Package metrics records build metrics.
//
// Components receive a Recorder. NoopRecorder is the default and does
// nothing; PrometheusRecorder collects into a Prometheus registry that the
// CLI writes to a textfile after the build when metrics_file is configured.
package metrics
