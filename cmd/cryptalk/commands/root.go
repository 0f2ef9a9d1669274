package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cryptalk/internal/app"
)

var (
	home       string
	passphrase string
	appCtx     *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cryptalk",
		Short: "End-to-end encrypted messaging core CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".cryptalk")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.cryptalk)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")

	root.AddCommand(
		initCmd(),
		fingerprintCmd(),
		startSessionCmd(),
		sessionsCmd(),
		sealCmd(),
		openCmd(),
		ratchetCmd(),
		clearCmd(),
		panicCmd(),
	)
	return root.Execute()
}
