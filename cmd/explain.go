package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/reconcile/agent"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

type explainCmd struct {
	model   string
	dataset string
}

func (*explainCmd) Name() string { return "explain" }
func (*explainCmd) Synopsis() string {
	return "chat with Gemini about where and why two versions diverge"
}
func (*explainCmd) Usage() string {
	return `rcl explain [-model <model>] [-dataset <label>] <old.json> <new.json> [question...]

  Starts an interactive session with an AI assistant that can read the
  reconciliation report. The question, if any, is asked first.

  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Gemini model to use. Defaults to the config model.")
	f.StringVar(&c.dataset, "dataset", "", "Label of the dataset to compare. Defaults to the first one.")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if c.model != "" {
		cfg.Model = c.model
	}

	r, err := CompareFiles(cfg.ChartSelectors(), oldFile, newFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Str("model", cfg.Model).Int("rows", r.Len()).Msg("starting explain session")

	a := agent.New(os.Stdout, os.Stdin, cfg.Model, agent.NewAuditor(r, cfg.Model))
	if err := a.Run(ctx, client, strings.Join(f.Args()[2:], " ")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
