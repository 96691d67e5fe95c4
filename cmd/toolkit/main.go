package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"

	"github.com/kxue43/x2l-toolkit/version"
	"github.com/kxue43/x2l-toolkit/x2l"
)

type CLI struct {
	Version kong.VersionFlag `help:"Show version information and quit."`
	X2L     x2l.Cmd          `cmd:"" name:"x2l" help:"Read file names from stdin (one per line) and lowercase their extensions."`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	defaults := []kong.Option{
		kong.Name("toolkit"),
		kong.Description("Personal CLI toolkit."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
	}

	return kong.New(cli, append(defaults, options...)...)
}

func finish(ctx *kong.Context, err error) {
	if errors.Is(err, x2l.ErrInputRead) {
		// Already reported on stderr by the command.
		ctx.Exit(1)

		return
	}

	ctx.FatalIfErrorf(err)
}

func main() {
	var cli CLI

	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	finish(ctx, ctx.Run())
}
