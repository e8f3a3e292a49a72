package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Environment variables passed to extensions.
const (
	EnvConfig  = "RCL_CONFIG"
	EnvVerbose = "RCL_VERBOSE"
)

// RunExtension attempts to find and execute an external rcl-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	cmd, err := extension(subcommand, args)
	if err != nil {
		log.Debug().Err(err).Str("subcommand", subcommand).Msg("no extension")
		return false, 0
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", cmd.Path, err)
		return true, 1
	}
	return true, 0
}

// extension returns the command running rcl-<subcommand> with the global
// flags passed as environment variables.
func extension(subcommand string, args []string) (*exec.Cmd, error) {
	lp, err := exec.LookPath("rcl-" + subcommand)
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(lp, args...)
	cmd.Env = append(os.Environ(),
		EnvConfig+"="+*configFile,
		EnvVerbose+"="+strconv.FormatBool(*verbose),
	)
	return cmd, nil
}

// IsCommand reports whether name is registered in c.
func IsCommand(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}
