package commands

import (
	"git.home.luguber.info/inful/buildstate/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.configPath()
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	g.printf("Wrote configuration to %s\n", path)
	return nil
}
