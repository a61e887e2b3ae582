// Package metrics provides observability hooks for global build state persistence.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	store := state.NewStore(path) // NoopRecorder
//	store = store.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// PrometheusRecorder registers its collectors on the given registry. Short-lived
// CLI invocations export them with WriteTextfile for the node exporter textfile
// collector instead of serving an HTTP endpoint.
package metrics
