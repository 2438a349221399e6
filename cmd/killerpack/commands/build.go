package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Compile the puzzle directory into an archive and index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := appCtx.Compile(true)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Built %d puzzles.\n", sum.Puzzles)
			fmt.Fprintf(out, "Archive: %s (%d bytes)\n", cfg.Archive, sum.ArchiveBytes)
			fmt.Fprintf(out, "Index:   %s (%d bytes)\n", cfg.Index, sum.IndexBytes)
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Parse and encode every puzzle without writing output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := appCtx.Compile(false)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d puzzles, archive would be %d bytes\n",
				sum.Puzzles, sum.ArchiveBytes)
			return nil
		},
	}
}
