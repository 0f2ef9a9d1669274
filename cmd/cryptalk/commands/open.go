package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptalk/internal/crypto"
	"cryptalk/internal/domain"
	"cryptalk/internal/wire"
)

// open <session-id> <envelope>: decrypt a received envelope.
func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <session-id> <envelope>",
		Short: "Decrypt a received envelope",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			stored := domain.SessionID(args[0])

			raw, err := crypto.FromB64(args[1])
			if err != nil {
				return fmt.Errorf("decoding envelope: %w", err)
			}
			env, err := wire.Decode(raw)
			if err != nil {
				return err
			}
			if env.Kind == wire.KindDummy {
				fmt.Println("(cover traffic, discarded)")
				return nil
			}

			live, err := restoreSession(stored)
			if err != nil {
				return err
			}
			plaintext, err := appCtx.Engine.DecryptMessage(live, *env.Message)
			if err != nil {
				appCtx.Engine.ClearSession(live)
				return err
			}
			if err := persistAs(stored, live); err != nil {
				return err
			}

			fmt.Println(plaintext)
			return nil
		},
	}
}
