package state

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/buildstate/internal/errors"
	"git.home.luguber.info/inful/buildstate/internal/metrics"
)

type recordedOp struct {
	op     metrics.OperationLabel
	result metrics.ResultLabel
}

type fakeRecorder struct {
	ops     []recordedOp
	entries map[metrics.EntryKind]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{entries: map[metrics.EntryKind]int{}}
}

func (f *fakeRecorder) ObserveStateOperation(op metrics.OperationLabel, result metrics.ResultLabel, _ time.Duration) {
	f.ops = append(f.ops, recordedOp{op, result})
}

func (f *fakeRecorder) SetStateEntries(kind metrics.EntryKind, n int) { f.entries[kind] = n }

func newTestStore(t *testing.T) (*Store, *fakeRecorder, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	rec := newFakeRecorder()
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	st := NewStore(filepath.Join(t.TempDir(), "state")).WithLogger(logger).WithRecorder(rec)
	return st, rec, &logs
}

func TestStoreLoadOrNewMissingFile(t *testing.T) {
	st, rec, logs := newTestStore(t)

	s, err := st.LoadOrNew()
	require.NoError(t, err)
	require.True(t, NewGlobalState().Equal(s))
	require.Equal(t, []recordedOp{{metrics.OperationLoad, metrics.ResultMissing}}, rec.ops)
	require.Contains(t, logs.String(), "starting empty")

	_, err = st.Load()
	require.True(t, errors.IsCategory(err, errors.CategoryFileSystem))
}

func TestStoreLoadOrNewSurfacesDecodeErrors(t *testing.T) {
	st, rec, _ := newTestStore(t)
	require.NoError(t, os.WriteFile(st.Path(), []byte("!BuildState\n"), 0o644))

	s, err := st.LoadOrNew()
	require.Nil(t, s)
	require.True(t, errors.IsCategory(err, errors.CategoryDecode))
	require.Equal(t, []recordedOp{{metrics.OperationLoad, metrics.ResultDecode}}, rec.ops)
}

func TestStoreSaveRecordsEntries(t *testing.T) {
	st, rec, logs := newTestStore(t)
	s := NewGlobalState()
	s.AppendBuildPackages("gcc", "make")
	s.AppendBuildSnaps("core22")

	require.NoError(t, st.Save(s))
	require.Equal(t, 2, rec.entries[metrics.EntryBuildPackages])
	require.Equal(t, 1, rec.entries[metrics.EntryBuildSnaps])
	require.Contains(t, logs.String(), "required_grade=null")
	require.Contains(t, logs.String(), "operation=save")

	loaded, err := st.Load()
	require.NoError(t, err)
	require.True(t, s.Equal(loaded))
	require.Equal(t, []recordedOp{
		{metrics.OperationSave, metrics.ResultSuccess},
		{metrics.OperationLoad, metrics.ResultSuccess},
	}, rec.ops)
}

func TestStoreSaveFailure(t *testing.T) {
	var logs bytes.Buffer
	rec := newFakeRecorder()
	st := NewStore(filepath.Join(t.TempDir(), "no-such-dir", "state")).
		WithRecorder(rec).
		WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	err := st.Save(NewGlobalState())
	require.True(t, errors.IsCategory(err, errors.CategoryFileSystem))
	require.Equal(t, []recordedOp{{metrics.OperationSave, metrics.ResultFileSystem}}, rec.ops)
}

func TestStoreUpdate(t *testing.T) {
	st, _, _ := newTestStore(t)

	s, saved, err := st.Update(func(s *GlobalState) error {
		s.AppendBuildPackages("pkg1", "pkg2")
		return nil
	})
	require.NoError(t, err)
	require.True(t, saved)
	require.Equal(t, []string{"pkg1", "pkg2"}, s.BuildPackages())

	s, saved, err = st.Update(func(s *GlobalState) error {
		s.AppendBuildPackages("pkg1")
		return nil
	})
	require.NoError(t, err)
	require.False(t, saved, "re-appending known packages must not rewrite the file")
	require.Equal(t, []string{"pkg1", "pkg2"}, s.BuildPackages())

	_, saved, err = st.Update(func(s *GlobalState) error {
		s.SetRequiredGrade(strPtr(GradeStable))
		return nil
	})
	require.NoError(t, err)
	require.True(t, saved)

	loaded, err := st.Load()
	require.NoError(t, err)
	grade, ok := loaded.RequiredGrade()
	require.True(t, ok)
	require.Equal(t, GradeStable, grade)
}

func TestStoreUpdateWritesEmptyStateOnFirstRun(t *testing.T) {
	st, _, _ := newTestStore(t)
	_, saved, err := st.Update(func(*GlobalState) error { return nil })
	require.NoError(t, err)
	require.True(t, saved)
	_, err = os.Stat(st.Path())
	require.NoError(t, err)
}

func TestStoreUpdateCallbackError(t *testing.T) {
	st, rec, _ := newTestStore(t)
	boom := fmt.Errorf("step failed")
	_, saved, err := st.Update(func(s *GlobalState) error {
		s.AppendBuildSnaps("core22")
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.False(t, saved)
	for _, op := range rec.ops {
		require.NotEqual(t, metrics.OperationSave, op.op)
	}
}

func TestNewStoreDefaults(t *testing.T) {
	st := NewStore("state").WithLogger(nil).WithRecorder(nil)
	require.Equal(t, "state", st.Path())
	require.NotNil(t, st.logger)
	require.IsType(t, metrics.NoopRecorder{}, st.recorder)
}
