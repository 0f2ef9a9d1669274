package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptalk/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print identity fingerprint and public keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := appCtx.Identity.LoadIdentity(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(id.XPub.Slice()))
			fmt.Printf("X25519 public key: %s\n", crypto.B64(id.XPub.Slice()))
			fmt.Printf("Ed25519 public key: %s\n", crypto.B64(id.EdPub.Slice()))
			return nil
		},
	}
}
