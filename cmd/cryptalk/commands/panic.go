package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// panic: wipe every in-memory session and delete all stored conversations.
// Meant for duress; asks no questions and leaves nothing recoverable.
func panicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panic",
		Short: "Wipe all sessions immediately",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Engine.EmergencyPanic()
			if err := appCtx.Conversations.DeleteAllConversations(); err != nil {
				return err
			}
			fmt.Println("All sessions wiped.")
			return nil
		},
	}
}
