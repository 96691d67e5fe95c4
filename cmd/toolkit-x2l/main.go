package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"

	"github.com/kxue43/x2l-toolkit/version"
	"github.com/kxue43/x2l-toolkit/x2l"
)

type CLI struct {
	x2l.Cmd `embed:""`
	Version kong.VersionFlag `help:"Show version information and quit."`
}

// newParser builds the parser with the default options followed by options.
func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	defaults := []kong.Option{
		kong.Name("toolkit-x2l"),
		// Detail of a HelpProvider is only shown for subcommands, not for the application.
		kong.Description(x2l.Summary + "\n\n" + x2l.Details),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
	}

	return kong.New(cli, append(defaults, options...)...)
}

// finish exits with status 1 on input read failures, which the command has already
// reported, and lets kong report any other error.
func finish(ctx *kong.Context, err error) {
	if errors.Is(err, x2l.ErrInputRead) {
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
