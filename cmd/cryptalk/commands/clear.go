package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptalk/internal/domain"
)

// clear <session-id>: wipe a single session and delete its stored state.
func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <session-id>",
		Short: "Destroy a session and its stored state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.SessionID(args[0])
			if err := appCtx.Conversations.DeleteConversation(id); err != nil {
				return err
			}
			appCtx.Engine.ClearSession(id)
			fmt.Printf("Session %s cleared.\n", id)
			return nil
		},
	}
}
