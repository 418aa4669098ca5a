package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"libfaultinj/internal/policy"
)

var policyCmd = &cobra.Command{
	Use:   "policy <call>",
	Short: "Show the effective fault-injection policy for a libc call",
	Long: `policy reports the delay, errno and likelihood libfaultinj would
apply to <call> (e.g. "read", "write", "open") right now, based on the
LIBFAULTINJ_* variables currently set in this process's environment.`,
	Args: cobra.ExactArgs(1),
	RunE: runPolicy,
}

func init() {
	rootCmd.AddCommand(policyCmd)
}

func runPolicy(cmd *cobra.Command, args []string) error {
	call := args[0]

	delayMs := policy.DelayMillis(call)
	likelihood := policy.LikelihoodPct()
	errno, hasErrno := policy.ErrnoFor(call)

	out := cmd.OutOrStdout()
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}

	errnoField := "(none)"
	if hasErrno {
		errnoField = fmt.Sprintf("%d", errno)
	}

	if isTTY {
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "call\t%s\n", call)
		fmt.Fprintf(w, "delay_ms\t%d\n", delayMs)
		fmt.Fprintf(w, "errno\t%s\n", errnoField)
		fmt.Fprintf(w, "likelihood_pct\t%g\n", likelihood)
		return w.Flush()
	}

	fmt.Fprintf(out, "%s\t%d\t%s\t%g\n", call, delayMs, errnoField, likelihood)
	return nil
}
