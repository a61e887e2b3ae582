package state

import (
	"git.home.luguber.info/inful/buildstate/internal/util/sets"
)

// Grades understood by downstream consumers. The record itself stores any value.
const (
	GradeStable = "stable"
	GradeDevel  = "devel"
)

// GlobalState is the mutable record of build-time requirements accumulated
// across build steps. The zero value is an empty record.
type GlobalState struct {
	buildPackages sets.Ordered[string]
	buildSnaps    sets.Ordered[string]
	requiredGrade *string
}

// NewGlobalState returns an empty record: no packages, no snaps, absent grade.
func NewGlobalState() *GlobalState {
	return &GlobalState{}
}

// AppendBuildPackages adds names not yet recorded, keeping first-seen order.
func (s *GlobalState) AppendBuildPackages(names ...string) {
	s.buildPackages.Add(names...)
}

// AppendBuildSnaps adds names not yet recorded, keeping first-seen order.
func (s *GlobalState) AppendBuildSnaps(names ...string) {
	s.buildSnaps.Add(names...)
}

// SetRequiredGrade overwrites the grade. A nil grade marks it absent.
func (s *GlobalState) SetRequiredGrade(grade *string) {
	if grade == nil {
		s.requiredGrade = nil
		return
	}
	g := *grade
	s.requiredGrade = &g
}

// ClearRequiredGrade is SetRequiredGrade(nil).
func (s *GlobalState) ClearRequiredGrade() { s.requiredGrade = nil }

// BuildPackages returns a copy of the recorded build packages.
func (s *GlobalState) BuildPackages() []string { return s.buildPackages.Values() }

// BuildSnaps returns a copy of the recorded build snaps.
func (s *GlobalState) BuildSnaps() []string { return s.buildSnaps.Values() }

// RequiredGrade returns the grade and whether one is set.
func (s *GlobalState) RequiredGrade() (string, bool) {
	if s.requiredGrade == nil {
		return "", false
	}
	return *s.requiredGrade, true
}

// Equal reports observational equality: same sequences in the same order and
// the same grade or absence of one.
func (s *GlobalState) Equal(other *GlobalState) bool {
	if s == nil || other == nil {
		return s == other
	}
	if !s.buildPackages.Equal(&other.buildPackages) || !s.buildSnaps.Equal(&other.buildSnaps) {
		return false
	}
	g1, ok1 := s.RequiredGrade()
	g2, ok2 := other.RequiredGrade()
	return ok1 == ok2 && g1 == g2
}

// Clone returns an independent copy.
func (s *GlobalState) Clone() *GlobalState {
	c := NewGlobalState()
	c.AppendBuildPackages(s.BuildPackages()...)
	c.AppendBuildSnaps(s.BuildSnaps()...)
	c.SetRequiredGrade(s.requiredGrade)
	return c
}
