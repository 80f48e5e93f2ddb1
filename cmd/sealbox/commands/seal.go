package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sealbox/internal/nonce"
	"sealbox/internal/protocol/box"
)

// seal [message]: encrypt message (or stdin) for --peer-key.
func sealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seal [message]",
		Short: "Encrypt a message for --peer-key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := messageArg(cmd, args)
			if err != nil {
				return err
			}

			seq := nonce.NewSequence()
			if nonceHex := appCtx.Config.Nonce; nonceHex != "" {
				// The given nonce is used as is.
				if _, err := seq.SetHex(nonceHex, false); err != nil {
					return err
				}
			} else if _, err := seq.Next(); err != nil {
				return err
			}
			n, _ := seq.Current()

			peer, sec, release, err := appCtx.Counterpart()
			if err != nil {
				return err
			}
			defer release()

			ct, err := box.Seal(msg, &n, peer, sec)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Nonce: %s\n", n.Hex())
			fmt.Fprintf(out, "Ciphertext: %s\n", hex.EncodeToString(ct))
			appCtx.Log.Debug("sealed message",
				zap.Int("plaintext_bytes", len(msg)),
				zap.Int("ciphertext_bytes", len(ct)),
				zap.Bool("precomputed", sec == nil),
			)
			return nil
		},
	}
	cmd.Flags().String("nonce", "", "nonce to use (48 hex chars); a fresh one by default")
	return cmd
}

func messageArg(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	return io.ReadAll(cmd.InOrStdin())
}
