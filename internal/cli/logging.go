package cli

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envLogLevel overrides the level chosen by --verbose and --quiet.
const envLogLevel = "TRIAD_LOG_LEVEL"

func registerLogFlags(fs *pflag.FlagSet) {
	fs.BoolP("verbose", "v", false, "enable verbose output")
	fs.BoolP("quiet", "q", false, "suppress non-error output")
}

// newLogger builds the command's logger. It writes to the command's error
// stream so log lines never mix with analysis output.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}
	if env := strings.TrimSpace(os.Getenv(envLogLevel)); env != "" {
		if l := hclog.LevelFromString(env); l != hclog.NoLevel {
			level = l
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "triad",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}
