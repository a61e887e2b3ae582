package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/buildstate/cmd/buildstate/commands"
	"git.home.luguber.info/inful/buildstate/internal/errors"
	"git.home.luguber.info/inful/buildstate/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("buildstate"),
		kong.Description("Inspect and update the global state carried between incremental snap builds."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()}, cli)
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
