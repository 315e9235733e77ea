package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/wallethunt/internal/cli"
	"github.com/aretw0/wallethunt/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "wallethunt [flags] <input-file>",
	Short: "Wallethunt sweeps candidate seed words through a wallet recovery engine",
	Long: `Wallethunt enumerates every combination of the candidate words listed in the
input file and hands each one to an external recovery engine together with the
target address. Tried candidates are remembered, so a hunt can be stopped and
resumed at any time.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runHunt,
}

// exitError carries a process exit status through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	code := cli.ExitError
	if ee, ok := err.(*exitError); ok {
		code = ee.code
		err = ee.err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default ./"+config.DefaultPath+" if present)")
	pf.String("wallet-type", "", "Wallet type passed to the engine (default ethereum)")
	pf.String("dir", "", "Directory holding the exclusion and match files")
	pf.String("store", "", "Exclusion store backend: file, redis or memory")
	pf.String("redis-addr", "", "Redis address for --store redis")
	pf.Bool("strict", false, "Treat input lint warnings as errors")
	pf.Bool("debug", false, "Enable debug logging on stderr")
}
