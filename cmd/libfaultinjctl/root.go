// Command libfaultinjctl inspects the LIBFAULTINJ_* policy an operator
// has set in their environment, without starting a target process under
// LD_PRELOAD. It reads the exact same variables internal/policy reads
// and reports the effective delay, errno, likelihood, and path/address
// match rules libfaultinj.so would apply right now.
//
// It carries no taint-registry state of its own: every descriptor's
// taint only exists inside a process that has actually loaded
// libfaultinj.so, so this tool can only ever answer "what would happen
// to a freshly tainted descriptor", not "what is currently tainted in
// process X".
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"libfaultinj/internal/diag"
)

var (
	// Version is set at build time via -ldflags.
	Version = "0.1.0"
)

var (
	flagLogFormat string
	flagDebug     bool
)

var rootCmd = &cobra.Command{
	Use:   "libfaultinjctl",
	Short: "Inspect libfaultinj's fault-injection policy",
	Long: `libfaultinjctl reads the LIBFAULTINJ_* environment variables and
reports what libfaultinj.so would do for a given libc call, path, or
address, without loading the shared library into any process.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "set the format for log output (text or json)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func setupLogging() {
	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}

	logger := diag.NewLogger(diag.Config{
		Level:  level,
		Format: flagLogFormat,
		Output: os.Stderr,
	})
	diag.SetDefault(logger)
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
