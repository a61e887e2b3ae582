// Package state holds the global build state that an incremental build carries
// from one invocation to the next.
//
// A GlobalState accumulates the build packages and build snaps that producing an
// artifact required, plus the grade the artifact must meet. The pipeline either
// creates it empty or restores it with LoadGlobalState, mutates it as steps discover
// requirements, and persists it with Save. Save always replaces the whole file.
//
// Store binds a state file path to logging and metrics for pipeline callers.
package state
