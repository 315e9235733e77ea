package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/wallethunt/internal/cli"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates <input-file>",
	Short: "List the candidate phrases in enumeration order",
	Long: `Lists the candidates of the input file, one per line, prefixed with "x" when the
exclusion set already covers them and "." when they are still pending.
Nothing is sent to the engine.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		offset, _ := cmd.Flags().GetUint64("offset")
		limit, _ := cmd.Flags().GetUint64("limit")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.ListCandidates(ctx, cfg, cli.ListOptions{
			InputPath: args[0],
			Offset:    offset,
			Limit:     limit,
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)

	candidatesCmd.Flags().Uint64("offset", 0, "Index of the first candidate to list")
	candidatesCmd.Flags().Uint64("limit", 0, "Maximum number of candidates to list (0 for all)")
}
