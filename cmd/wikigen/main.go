package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/wikigen/cmd/wikigen/commands"
	"git.home.luguber.info/inful/wikigen/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// run parses args, executes the selected command and returns the exit code.
func run(ctx context.Context, args []string, options ...kong.Option) int {
	cli := &commands.CLI{}
	options = append([]kong.Option{
		kong.Name("wikigen"),
		kong.Description("Generate the static scripting wiki from function, article and element records."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	}, options...)
	parser, err := kong.New(cli, options...)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(parser.Stderr, "wikigen: error: %v\n", err)
		return 1
	}
	err = kctx.Run(&commands.Global{Context: ctx}, cli)
	return commands.ExitCode(ctx, err, cli.Verbose)
}
