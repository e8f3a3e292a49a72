// Command rcl reconciles two versions of a balance history.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/reconcile/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	cmd.Complete(commander, flag.CommandLine, name)

	flag.Parse()
	cmd.SetupLogging()

	// Unknown commands are looked up as rcl-<command> extensions.
	if sub := flag.Arg(0); sub != "" && !cmd.IsCommand(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
