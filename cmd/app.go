// Package cmd implements the rcl command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/reconcile"
	"github.com/etnz/reconcile/config"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&compareCmd{}, "reconcile")
	c.Register(&summaryCmd{}, "reconcile")
	c.Register(&explainCmd{}, "reconcile")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", os.Getenv(EnvConfig), "Path to the YAML config file. Defaults to "+config.DefaultFile+" when it exists. Overrides the RCL_CONFIG environment variable.")

// LoadConfig reads the config file and the RCL_* environment variables.
func LoadConfig() (*config.Config, error) {
	return config.LoadWithEnv(*configFile)
}

// versions returns the old and new file names of a command line.
func versions(f *flag.FlagSet) (oldFile, newFile string, err error) {
	if f.NArg() < 2 {
		return "", "", errors.New("an old and a new chart document are required")
	}
	if f.Arg(0) == "-" && f.Arg(1) == "-" {
		return "", "", errors.New("only one version can be read from standard input")
	}
	return f.Arg(0), f.Arg(1), nil
}

// DecodeVersions reads both versions of a balance history. Both sources are
// read, and both errors are reported.
func DecodeVersions(sel reconcile.Selectors, oldFile, newFile string) (old, new reconcile.Dataset, err error) {
	old, oldErr := decodeFile(sel, oldFile)
	new, newErr := decodeFile(sel, newFile)
	return old, new, errors.Join(oldErr, newErr)
}

func decodeFile(sel reconcile.Selectors, name string) (reconcile.Dataset, error) {
	f, err := openSource(name)
	if err != nil {
		return reconcile.Dataset{}, err
	}
	defer f.Close()

	d, err := reconcile.DecodeChart(f, sel)
	if err != nil {
		return reconcile.Dataset{}, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

// CompareFiles decodes and compares two versions of a balance history.
func CompareFiles(sel reconcile.Selectors, oldFile, newFile string) (*reconcile.Report, error) {
	old, new, err := DecodeVersions(sel, oldFile, newFile)
	if err != nil {
		return nil, err
	}
	r, err := reconcile.Compare(old, new)
	if err != nil {
		return nil, fmt.Errorf("comparing %s with %s: %w", oldFile, newFile, err)
	}
	return r, nil
}
