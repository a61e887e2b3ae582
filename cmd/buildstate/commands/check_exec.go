package commands

import (
	"fmt"

	"git.home.luguber.info/inful/buildstate/internal/executable"
)

// CheckExecCmd implements the 'check-exec' command.
type CheckExecCmd struct {
	Paths []string `arg:"" name:"path" help:"Paths to check"`
}

func (c *CheckExecCmd) Run(g *Global, _ *CLI) error {
	valid := executable.Filter(c.Paths...)
	ok := make(map[string]bool, len(valid))
	for _, p := range valid {
		ok[p] = true
	}

	invalid := 0
	for _, p := range c.Paths {
		if ok[p] {
			g.printf("ok       %s\n", p)
			continue
		}
		invalid++
		g.printf("invalid  %s\n", p)
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d paths are not valid executables", invalid, len(c.Paths))
	}
	return nil
}
