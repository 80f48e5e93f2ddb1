package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/keys"
)

// fingerprint [public-key]: print the fingerprint of a key, --public-key by default.
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [public-key]",
		Short: "Print the fingerprint of a public key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := appCtx.Config.PublicKey
			if len(args) == 1 {
				in = args[0]
			}
			pub, err := keys.LoadPublicKey([]byte(in), true)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", pub.Fingerprint())
			return nil
		},
	}
}
