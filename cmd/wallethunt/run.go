package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/wallethunt"
	"github.com/aretw0/wallethunt/internal/cli"
)

func runHunt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Flags().GetBool("quiet")
	force, _ := cmd.Flags().GetBool("force")

	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Cancel()

	out, err := cli.Hunt(ctx, cfg, cli.HuntOptions{
		InputPath: args[0],
		Force:     force,
		Quiet:     quiet,
		Version:   wallethunt.Version,
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
		Logger:    cli.NewLogger(cfg.Log, cmd.ErrOrStderr()),
	})

	code := cli.ExitCode(out, err)
	if code == cli.ExitFound {
		return nil
	}
	if code == cli.ExitInterrupted {
		// Already reported by the presenter.
		err = nil
	}
	return &exitError{code: code, err: err}
}

func init() {
	f := rootCmd.Flags()
	f.IntP("typos", "t", 1, "Typo budget handed to the engine (--big-typos)")
	f.Int("addr-limit", 1, "Number of addresses the engine derives per candidate")
	f.String("engine", "", `Engine command line (default "python3 seedrecover.py")`)
	f.String("metrics-addr", "", "Serve /metrics, /health and /info on this address")
	f.BoolP("quiet", "q", false, "Only print the final result")
	f.Bool("force", false, "Search even if a match is already recorded")
}
