package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"killerpack/internal/store"
)

// lookup: resolve a puzzle id through the published index.
func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <id>",
		Short: "Print the byte range of a puzzle in the archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("puzzle id %q is not an integer", args[0])
			}
			start, end, err := store.NewFileOutputStore(cfg.Archive, cfg.Index).Locate(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "puzzle %d: offset %d, %d bytes\n", id, start, end-start)
			return nil
		},
	}
}
