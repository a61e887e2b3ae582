package state

import (
	stdErrors "errors"
	"io/fs"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/buildstate/internal/errors"
	"git.home.luguber.info/inful/buildstate/internal/logfields"
	"git.home.luguber.info/inful/buildstate/internal/metrics"
)

// Store binds a global state file to the pipeline's logger and metrics.
// It does not lock; callers serialize access to the path.
type Store struct {
	path     string
	logger   *slog.Logger
	recorder metrics.Recorder
}

// NewStore creates a store for the state file at path.
func NewStore(path string) *Store {
	return &Store{
		path:     path,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
}

// WithLogger sets the logger used for persistence events.
func (st *Store) WithLogger(l *slog.Logger) *Store {
	if l != nil {
		st.logger = l
	}
	return st
}

// WithRecorder sets the metrics recorder.
func (st *Store) WithRecorder(r metrics.Recorder) *Store {
	if r != nil {
		st.recorder = r
	}
	return st
}

// Path returns the state file path.
func (st *Store) Path() string { return st.path }

// Load restores the state file. Every failure surfaces.
func (st *Store) Load() (*GlobalState, error) {
	start := time.Now()
	s, err := LoadGlobalState(st.path)
	elapsed := time.Since(start)
	if err != nil {
		st.recorder.ObserveStateOperation(metrics.OperationLoad, resultFor(err), elapsed)
		st.logger.Debug("Global state load failed",
			logfields.Operation(string(metrics.OperationLoad)),
			logfields.Path(st.path),
			logfields.Error(err))
		return nil, err
	}
	st.recorder.ObserveStateOperation(metrics.OperationLoad, metrics.ResultSuccess, elapsed)
	st.logger.Debug("Global state loaded",
		logfields.Operation(string(metrics.OperationLoad)),
		logfields.Path(st.path),
		logfields.Packages(s.buildPackages.Len()),
		logfields.Snaps(s.buildSnaps.Len()),
		logfields.Grade(s.requiredGrade),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return s, nil
}

// LoadOrNew restores the state file, or returns an empty record when the file
// does not exist yet. Decode and permission failures still surface.
func (st *Store) LoadOrNew() (*GlobalState, error) {
	s, _, err := st.loadOrNew()
	return s, err
}

func (st *Store) loadOrNew() (*GlobalState, bool, error) {
	s, err := st.Load()
	if err == nil {
		return s, true, nil
	}
	if stdErrors.Is(err, fs.ErrNotExist) {
		st.logger.Info("No global state recorded yet, starting empty", logfields.Path(st.path))
		return NewGlobalState(), false, nil
	}
	return nil, false, err
}

// Save persists s, replacing the previous snapshot.
func (st *Store) Save(s *GlobalState) error {
	start := time.Now()
	err := s.Save(st.path)
	elapsed := time.Since(start)
	if err != nil {
		st.recorder.ObserveStateOperation(metrics.OperationSave, resultFor(err), elapsed)
		st.logger.Debug("Global state save failed",
			logfields.Operation(string(metrics.OperationSave)),
			logfields.Path(st.path),
			logfields.Error(err))
		return err
	}
	st.recorder.ObserveStateOperation(metrics.OperationSave, metrics.ResultSuccess, elapsed)
	st.recorder.SetStateEntries(metrics.EntryBuildPackages, s.buildPackages.Len())
	st.recorder.SetStateEntries(metrics.EntryBuildSnaps, s.buildSnaps.Len())
	st.logger.Debug("Global state saved",
		logfields.Operation(string(metrics.OperationSave)),
		logfields.Path(st.path),
		logfields.Packages(s.buildPackages.Len()),
		logfields.Snaps(s.buildSnaps.Len()),
		logfields.Grade(s.requiredGrade),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return nil
}

// Update restores the state (empty when missing), applies fn and saves the
// result when fn changed it. It returns the resulting state and whether it was
// written.
func (st *Store) Update(fn func(*GlobalState) error) (*GlobalState, bool, error) {
	s, found, err := st.loadOrNew()
	if err != nil {
		return nil, false, err
	}
	before := s.Clone()
	if err := fn(s); err != nil {
		return nil, false, err
	}
	if found && s.Equal(before) {
		st.logger.Debug("Global state unchanged, skipping save", logfields.Path(st.path))
		return s, false, nil
	}
	if err := st.Save(s); err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func resultFor(err error) metrics.ResultLabel {
	if stdErrors.Is(err, fs.ErrNotExist) {
		return metrics.ResultMissing
	}
	switch errors.GetCategory(err) {
	case errors.CategoryFileSystem:
		return metrics.ResultFileSystem
	case errors.CategoryDecode:
		return metrics.ResultDecode
	default:
		return metrics.ResultFailed
	}
}
