package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/reconcile"
	"github.com/etnz/reconcile/config"
	"github.com/etnz/reconcile/date"
	"github.com/etnz/reconcile/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Formats lists the values of the -format flag.
var Formats = []string{"text", "markdown", "table", "json"}

type compareCmd struct {
	format       string
	changed      bool
	from, to     string
	period       string
	date         string
	dataset      string
	currency     string
	title        string
	activityDiff bool
}

func (*compareCmd) Name() string { return "compare" }
func (*compareCmd) Synopsis() string {
	return "compare two versions of a balance history, date by date"
}
func (*compareCmd) Usage() string {
	return `rcl compare [-format <format>] [-changed] [-from <date>] [-to <date>] [-p <period> [-d <date>]] <old.json> <new.json>

  Pairs both versions by date and prints, for every date present in either
  one, the old balance, the new balance, the difference and both activity
  lists. A date present in one version only has a missing side.
  
  See 'rcl topic formats'.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Output format (text, markdown, table, json). Defaults to the config format.")
	f.BoolVar(&c.changed, "changed", false, "Only print the dates whose balance moved or that exist in one version only.")
	f.StringVar(&c.from, "from", "", "First date to print.")
	f.StringVar(&c.to, "to", "", "Last date to print.")
	f.StringVar(&c.period, "p", "", "Only print a period (day, week, month, quarter, year) around -d.")
	f.StringVar(&c.date, "d", "", "The date used by -p (defaults to today).")
	f.StringVar(&c.dataset, "dataset", "", "Label of the dataset to compare. Defaults to the first one.")
	f.StringVar(&c.currency, "currency", "", "ISO 4217 code to format amounts as money.")
	f.StringVar(&c.title, "title", "", "Title of the markdown report.")
	f.BoolVar(&c.activityDiff, "activity-diff", false, "Print the activity entries found in one version only.")
}

// apply overrides the config with the flags that are set.
func (c *compareCmd) apply(cfg *config.Config) error {
	if c.format != "" {
		cfg.Format = c.format
	}
	if c.dataset != "" {
		cfg.Dataset = c.dataset
	}
	if c.currency != "" {
		cfg.Currency = strings.ToUpper(c.currency)
	}
	cfg.ChangedOnly = cfg.ChangedOnly || c.changed
	return cfg.Validate()
}

// dateRange returns the range of dates to print, zero when all are.
func (c *compareCmd) dateRange() (date.Range, error) {
	var rng date.Range
	if c.period != "" {
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			return rng, err
		}
		on := date.Today()
		if c.date != "" {
			if on, err = date.Parse(c.date); err != nil {
				return rng, err
			}
		}
		rng = date.NewRange(on, p)
	}
	if c.from != "" {
		d, err := date.Parse(c.from)
		if err != nil {
			return rng, fmt.Errorf("-from: %w", err)
		}
		rng.From = d
	}
	if c.to != "" {
		d, err := date.Parse(c.to)
		if err != nil {
			return rng, fmt.Errorf("-to: %w", err)
		}
		rng.To = d
	}
	return rng, nil
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := c.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rng, err := c.dateRange()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	r, err := CompareFiles(cfg.ChartSelectors(), oldFile, newFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r = filter(r, cfg.ChangedOnly, rng)

	opts, err := options(cfg, c.title, oldFile, newFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	opts.ActivityDiff = c.activityDiff

	if err := write(os.Stdout, cfg.Format, r, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// filter keeps the rows within rng, and the changed ones only if changedOnly.
func filter(r *reconcile.Report, changedOnly bool, rng date.Range) *reconcile.Report {
	if from, to := rng.Bounds(); from != "" || to != "" {
		for _, key := range r.Keys() {
			if !date.IsKey(key) {
				log.Warn().Str("key", key).Msg("keys are not dates, the range compares them as text")
				break
			}
		}
		log.Debug().Stringer("range", rng).Msg("filtering dates")
		r = r.Between(from, to)
	}
	if changedOnly {
		r = r.Changed()
	}
	return r
}

// options returns the rendering options of a config.
func options(cfg *config.Config, title, oldFile, newFile string) (renderer.Options, error) {
	fm, err := renderer.NewFormatter(cfg.Currency)
	if err != nil {
		return renderer.Options{}, err
	}
	return renderer.Options{
		Formatter: fm,
		Title:     title,
		OldSource: filepath.Base(oldFile),
		NewSource: filepath.Base(newFile),
	}, nil
}

// write renders the report in format.
func write(w io.Writer, format string, r *reconcile.Report, opts renderer.Options) error {
	switch format {
	case "text":
		return renderer.Text(w, r, opts)
	case "markdown":
		fprintMarkdown(w, renderer.Markdown(r, opts))
		return nil
	case "table":
		return renderer.Table(w, r, opts)
	case "json":
		return renderer.JSON(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
