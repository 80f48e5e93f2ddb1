package commands

import (
	"bytes"
	"encoding/hex"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sealbox/internal/domain"
	"sealbox/internal/protocol/box"
)

// open [ciphertext]: decrypt a hex ciphertext (or stdin) from --peer-key.
func openCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [ciphertext]",
		Short: "Decrypt a message from --peer-key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := messageArg(cmd, args)
			if err != nil {
				return err
			}
			ct, err := hex.DecodeString(string(bytes.TrimSpace(in)))
			if err != nil {
				return domain.Wrap(domain.CodeGeneral, err, "decode ciphertext")
			}

			n, err := appCtx.Nonce()
			if err != nil {
				return err
			}
			peer, sec, release, err := appCtx.Counterpart()
			if err != nil {
				return err
			}
			defer release()

			pt, err := box.Open(ct, &n, peer, sec)
			if err != nil {
				appCtx.Log.Warn("open failed", zap.String("code", domain.CodeOf(err).String()))
				return err
			}
			_, err = cmd.OutOrStdout().Write(pt)
			return err
		},
	}
	cmd.Flags().String("nonce", "", "nonce the message was sealed with (48 hex chars)")
	return cmd
}
