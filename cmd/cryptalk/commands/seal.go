package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptalk/internal/crypto"
	"cryptalk/internal/domain"
	"cryptalk/internal/wire"
)

// seal <session-id> <message>: encrypt a message on the stored session.
func sealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seal <session-id> <message>",
		Short: "Encrypt a message for a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			stored := domain.SessionID(args[0])

			live, err := restoreSession(stored)
			if err != nil {
				return err
			}
			msg, err := appCtx.Engine.EncryptMessage(live, args[1])
			if err != nil {
				appCtx.Engine.ClearSession(live)
				return err
			}
			// Persist the advanced chain before printing so a reused key
			// can never leave this process.
			if err := persistAs(stored, live); err != nil {
				return err
			}

			data, err := wire.NewMessage(msg).Encode()
			if err != nil {
				return err
			}
			fmt.Println(crypto.B64(data))
			return nil
		},
	}
}
