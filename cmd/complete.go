package cmd

import (
	"flag"

	"github.com/etnz/reconcile/date"
	"github.com/etnz/reconcile/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors complete the values of flags by name.
var flagPredictors = map[string]complete.Predictor{
	"format":   predict.Set(Formats),
	"p":        predict.Set(date.Periods()),
	"config":   predict.Files("*.yaml"),
	"currency": predict.Something,
}

// Completion returns the shell completion of the commands registered in c.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: predictFlags(fs)}
		switch cmd.Name() {
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(append(topics, docs.Readme))
		case "help", "flags", "commands":
		default:
			sub.Args = predict.Files("*.json")
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// Complete answers the shell completion requests, and exits if it was one.
// Run COMP_INSTALL=1 rcl to install the completion in the shell.
func Complete(c *subcommands.Commander, global *flag.FlagSet, name string) {
	Completion(c, global).Complete(name)
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
