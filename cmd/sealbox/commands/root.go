package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sealbox/internal/app"
)

var (
	appCtx *app.App
	v      *viper.Viper
)

// NewRootCommand builds the sealbox command tree.
func NewRootCommand() *cobra.Command {
	v = app.NewViper()

	root := &cobra.Command{
		Use:           "sealbox",
		Short:         "Public-key authenticated encryption (Curve25519, XSalsa20, Poly1305)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := app.LoadConfig(v)
			if err != nil {
				return err
			}
			log, err := app.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	root.PersistentFlags().String("public-key", "", "our public key (64 hex chars)")
	root.PersistentFlags().String("secret-key", "", "our secret key (64 hex chars)")
	root.PersistentFlags().String("peer-key", "", "the peer's public key (64 hex chars)")
	root.PersistentFlags().Bool("precompute", false, "derive a shared key once and use the afternm path")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		keygenCmd(),
		fingerprintCmd(),
		precomputeCmd(),
		nonceCmd(),
		sealCmd(),
		openCmd(),
		randomCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
