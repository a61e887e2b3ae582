package metrics

import "time"

// OperationLabel names a state persistence operation.
type OperationLabel string

const (
	OperationLoad OperationLabel = "load"
	OperationSave OperationLabel = "save"
)

// ResultLabel enumerates operation result categories for counters.
type ResultLabel string

const (
	ResultSuccess    ResultLabel = "success"
	ResultMissing    ResultLabel = "missing" // no state file at the path
	ResultFileSystem ResultLabel = "filesystem_error"
	ResultDecode     ResultLabel = "decode_error"
	ResultFailed     ResultLabel = "failed"
)

// EntryKind labels the accumulated sequences of a state record.
type EntryKind string

const (
	EntryBuildPackages EntryKind = "build_packages"
	EntryBuildSnaps    EntryKind = "build_snaps"
)

// Recorder defines observability hooks for state persistence. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveStateOperation(op OperationLabel, result ResultLabel, d time.Duration)
	SetStateEntries(kind EntryKind, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStateOperation(OperationLabel, ResultLabel, time.Duration) {}
func (NoopRecorder) SetStateEntries(EntryKind, int)                                   {}
