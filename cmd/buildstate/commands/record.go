package commands

import (
	"git.home.luguber.info/inful/buildstate/internal/errors"
	"git.home.luguber.info/inful/buildstate/internal/logfields"
	"git.home.luguber.info/inful/buildstate/internal/state"
)

// AddPackagesCmd implements the 'add-packages' command.
type AddPackagesCmd struct {
	Names []string `arg:"" name:"name" help:"Build package names"`
}

func (a *AddPackagesCmd) Run(g *Global, root *CLI) error {
	return root.record(g, "build packages", func(gs *state.GlobalState) int {
		before := len(gs.BuildPackages())
		gs.AppendBuildPackages(a.Names...)
		return len(gs.BuildPackages()) - before
	})
}

// AddSnapsCmd implements the 'add-snaps' command.
type AddSnapsCmd struct {
	Names []string `arg:"" name:"name" help:"Build snap names"`
}

func (a *AddSnapsCmd) Run(g *Global, root *CLI) error {
	return root.record(g, "build snaps", func(gs *state.GlobalState) int {
		before := len(gs.BuildSnaps())
		gs.AppendBuildSnaps(a.Names...)
		return len(gs.BuildSnaps()) - before
	})
}

// record applies an append to the persisted state and reports how many names were new.
func (c *CLI) record(g *Global, what string, apply func(*state.GlobalState) int) error {
	return c.withStore(g, func(st *state.Store) error {
		added := 0
		_, _, err := st.Update(func(gs *state.GlobalState) error {
			added = apply(gs)
			return nil
		})
		if err != nil {
			return err
		}
		g.logger().Info("Recorded "+what, logfields.Path(st.Path()), logfields.Count(added))
		g.printf("Recorded %d new %s\n", added, what)
		return nil
	})
}

// SetGradeCmd implements the 'set-grade' command.
type SetGradeCmd struct {
	Grade string `arg:"" help:"Required grade (stable|devel)"`
}

func (s *SetGradeCmd) Run(g *Global, root *CLI) error {
	if s.Grade != state.GradeStable && s.Grade != state.GradeDevel {
		return errors.ValidationFailed("grade", "must be "+state.GradeStable+" or "+state.GradeDevel)
	}
	return root.withStore(g, func(st *state.Store) error {
		grade := s.Grade
		if _, _, err := st.Update(func(gs *state.GlobalState) error {
			gs.SetRequiredGrade(&grade)
			return nil
		}); err != nil {
			return err
		}
		g.printf("Required grade set to %s\n", grade)
		return nil
	})
}

// ClearGradeCmd implements the 'clear-grade' command.
type ClearGradeCmd struct{}

func (c *ClearGradeCmd) Run(g *Global, root *CLI) error {
	return root.withStore(g, func(st *state.Store) error {
		if _, _, err := st.Update(func(gs *state.GlobalState) error {
			gs.ClearRequiredGrade()
			return nil
		}); err != nil {
			return err
		}
		g.printf("Required grade cleared\n")
		return nil
	})
}
