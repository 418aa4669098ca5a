package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"libfaultinj/internal/policy"
)

var matchPathCmd = &cobra.Command{
	Use:   "match-path <path>",
	Short: "Report whether a path falls under ERROR_PATH / DELAY_PATH",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchPath,
}

var matchAddrCmd = &cobra.Command{
	Use:   "match-addr <ip>",
	Short: "Report whether an IPv4 address matches ERROR_ADDR",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchAddr,
}

func init() {
	rootCmd.AddCommand(matchPathCmd)
	rootCmd.AddCommand(matchAddrCmd)
}

func runMatchPath(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	errPrefix, hasErr := policy.ErrorPathPrefix()
	delayPrefix, hasDelay := policy.DelayPathPrefix()

	errMatch := hasErr && policy.MatchesPath(path, errPrefix)
	delayMatch := hasDelay && policy.MatchesPath(path, delayPrefix)

	fmt.Fprintf(out, "error_path_match\t%t\n", errMatch)
	fmt.Fprintf(out, "delay_path_match\t%t\n", delayMatch)
	return nil
}

func runMatchAddr(cmd *cobra.Command, args []string) error {
	ip := net.ParseIP(args[0])
	if ip == nil {
		return fmt.Errorf("not a valid IP address: %q", args[0])
	}

	host, hasHost := policy.ErrorAddrHost()
	match := hasHost && policy.MatchesAddr(ip, host)

	fmt.Fprintf(cmd.OutOrStdout(), "error_addr_match\t%t\n", match)
	return nil
}
