package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sessions: list the stored conversations.
func sessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List stored sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := appCtx.Conversations.ListConversations()
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Println("No sessions.")
				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}
