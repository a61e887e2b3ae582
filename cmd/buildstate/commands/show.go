package commands

import (
	"strings"

	"git.home.luguber.info/inful/buildstate/internal/state"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format string `short:"f" enum:"text,yaml" default:"text" help:"Output format (text|yaml)"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	return root.withStore(g, func(st *state.Store) error {
		gs, err := st.LoadOrNew()
		if err != nil {
			return err
		}
		if s.Format == "yaml" {
			doc, err := gs.Document()
			if err != nil {
				return err
			}
			_, err = g.out().Write(doc)
			return err
		}

		g.printf("state file:     %s\n", st.Path())
		g.printf("build packages: %s\n", listOrNone(gs.BuildPackages()))
		g.printf("build snaps:    %s\n", listOrNone(gs.BuildSnaps()))
		grade, ok := gs.RequiredGrade()
		if !ok {
			grade = "(none)"
		}
		g.printf("required grade: %s\n", grade)
		return nil
	})
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
