package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/reconcile/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	json    bool
	dataset string
}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "count the dates where two versions of a balance history diverge"
}
func (*summaryCmd) Usage() string {
	return `rcl summary [-json] [-dataset <label>] <old.json> <new.json>

  Prints how many dates were added, removed, changed or left unchanged, the
  net difference and the first date where both versions diverge.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the summary as JSON.")
	f.StringVar(&c.dataset, "dataset", "", "Label of the dataset to compare. Defaults to the first one.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	oldFile, newFile, err := versions(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.dataset != "" {
		cfg.Dataset = c.dataset
	}

	r, err := CompareFiles(cfg.ChartSelectors(), oldFile, newFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r.Summary()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	opts, err := options(cfg, "", oldFile, newFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(r, opts))
	return subcommands.ExitSuccess
}
