package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"killerpack/internal/crypto"
	"killerpack/internal/store"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print BLAKE2b-256 digests of the archive and index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, index, err := store.NewFileOutputStore(cfg.Archive, cfg.Index).ReadOutputs()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", crypto.Digest(archive), cfg.Archive)
			fmt.Fprintf(out, "%s  %s\n", crypto.Digest(index), cfg.Index)
			return nil
		},
	}
	return cmd
}
