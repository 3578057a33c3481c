package cli

import (
	"github.com/spf13/cobra"
)

// newUsersCommand создает команду списка пользователей.
func newUsersCommand(deps *Deps) *cobra.Command {
	var withTasks bool

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if withTasks {
				composed, err := deps.Board.ListUsersWithTasks(ctx)
				if err != nil {
					return err
				}
				renderUsersWithTasks(cmd.OutOrStdout(), composed)
				return nil
			}

			users, err := deps.Board.ListUsers(ctx)
			if err != nil {
				return err
			}
			renderUsers(cmd.OutOrStdout(), users)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTasks, "with-tasks", false, "fetch task lists for every user")

	return cmd
}
