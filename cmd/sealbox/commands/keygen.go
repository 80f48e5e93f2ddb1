package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sealbox/internal/keys"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and print it in hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, sec, err := keys.GenerateKeypair()
			if err != nil {
				return err
			}
			defer sec.Destroy()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Public: %s\n", pub.Hex())
			fmt.Fprintf(out, "Secret: %s\n", sec.Hex())
			fmt.Fprintf(out, "Fingerprint: %s\n", pub.Fingerprint())
			appCtx.Log.Info("generated key pair", zap.String("fingerprint", pub.Fingerprint()))
			return nil
		},
	}
}
