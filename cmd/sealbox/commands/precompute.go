package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sealbox/internal/keys"
)

func precomputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "precompute",
		Short: "Derive the shared key of --peer-key and our key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			peer, err := keys.LoadPublicKey([]byte(appCtx.Config.PeerKey), true)
			if err != nil {
				return fmt.Errorf("peer key: %w", err)
			}
			sec, err := appCtx.SecretKey()
			if err != nil {
				return fmt.Errorf("our key pair: %w", err)
			}
			defer sec.Destroy()

			shared, err := keys.LoadPrecompKey(peer, sec)
			if err != nil {
				return err
			}
			defer shared.Destroy()

			fmt.Fprintf(cmd.OutOrStdout(), "Shared: %s\n", shared.Hex())
			appCtx.Log.Debug("precomputed shared key", zap.String("peer", peer.Fingerprint()))
			return nil
		},
	}
}
