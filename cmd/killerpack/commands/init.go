package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"killerpack/internal/app"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default " + app.DefaultConfigFile,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.DefaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := app.WriteConfig(path, app.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
}
