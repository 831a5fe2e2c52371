package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/joinrss-backend/internal/app"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Maintain sign-in sessions",
		RunE:  requireSubcommand,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "cleanup",
		Short: "Delete expired and signed-out sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), cmd.ErrOrStderr(), func(c *app.Container) error {
				n, err := c.Auth.CleanupSessions(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired/revoked sessions.\n", n)
				return nil
			})
		},
	})
	return cmd
}
