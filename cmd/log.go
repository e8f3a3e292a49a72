package cmd

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var verbose = flag.Bool("v", envBool(EnvVerbose), "Print debug diagnostics on stderr. Overrides the RCL_VERBOSE environment variable.")

func envBool(name string) bool {
	b, _ := strconv.ParseBool(os.Getenv(name))
	return b
}

// SetupLogging sends diagnostics to stderr, warnings only unless -v is set.
// It must be called after the flags are parsed.
func SetupLogging() {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
