package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/navsync/cmd/navsync/commands"
	"git.home.luguber.info/inful/navsync/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("navsync"),
		kong.Description("Keep the mkdocs navigation in sync with the documentation content tree."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
