package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptalk/internal/crypto"
	"cryptalk/internal/domain"
)

// ratchet <session-id> <their-ratchet-public-key>: perform a DH ratchet
// step with the peer's freshly shared ratchet key.
func ratchetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ratchet <session-id> <their-ratchet-public-key>",
		Short: "Rotate session keys with a fresh DH exchange",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			stored := domain.SessionID(args[0])

			theirPub, err := parsePublicKey(args[1])
			if err != nil {
				return err
			}

			live, err := restoreSession(stored)
			if err != nil {
				return err
			}
			if err := appCtx.Engine.PerformDHRatchet(live, theirPub); err != nil {
				appCtx.Engine.ClearSession(live)
				return err
			}
			newPub, err := appCtx.Engine.RatchetPublicKey(live)
			if err != nil {
				appCtx.Engine.ClearSession(live)
				return err
			}
			if err := persistAs(stored, live); err != nil {
				return err
			}

			fmt.Printf("Ratchet advanced.\nNew ratchet public key: %s\n", crypto.B64(newPub.Slice()))
			return nil
		},
	}
}
