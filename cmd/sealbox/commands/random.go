package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sealbox/internal/crypto"
)

func randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random <length>",
		Short: "Print random bytes in hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("length %q: %w", args[0], err)
			}
			b, err := crypto.RandomBytes(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.Hex(b))
			return nil
		},
	}
}
