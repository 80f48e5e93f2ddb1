package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/nonce"
)

// nonce: print fresh nonces, or the successors of --after.
func nonceCmd() *cobra.Command {
	var (
		after string
		count int
	)
	cmd := &cobra.Command{
		Use:   "nonce",
		Short: "Print a fresh nonce, or the successor of --after",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			seq := nonce.NewSequence()
			if after != "" {
				if _, err := seq.SetHex(after, false); err != nil {
					return err
				}
			}
			for i := 0; i < count; i++ {
				n, err := seq.Next()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n.Hex())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&after, "after", "", "previous nonce (48 hex chars) to advance from")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of nonces to print")
	return cmd
}
