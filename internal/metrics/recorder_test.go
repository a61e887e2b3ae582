package metrics

import (
	"time"
)

type testRecorder struct {
	ops     map[OperationLabel]map[ResultLabel]int
	entries map[EntryKind]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{ops: map[OperationLabel]map[ResultLabel]int{}, entries: map[EntryKind]int{}}
}

func (t *testRecorder) ObserveStateOperation(op OperationLabel, result ResultLabel, _ time.Duration) {
	m, ok := t.ops[op]
	if !ok {
		m = map[ResultLabel]int{}
		t.ops[op] = m
	}
	m[result]++
}

func (t *testRecorder) SetStateEntries(kind EntryKind, n int) { t.entries[kind] = n }

var (
	_ Recorder = (*testRecorder)(nil)
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)
