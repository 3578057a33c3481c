package cli

import (
	"github.com/spf13/cobra"
)

// newUserCommand создает команду просмотра одного пользователя.
func newUserCommand(deps *Deps) *cobra.Command {
	var withTasks bool

	cmd := &cobra.Command{
		Use:   "user <id>",
		Short: "Show a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			if withTasks {
				composed, err := deps.Board.GetUserWithTasks(ctx, userID)
				if err != nil {
					return err
				}
				renderUserWithTasks(cmd.OutOrStdout(), *composed)
				return nil
			}

			user, err := deps.Board.GetUser(ctx, userID)
			if err != nil {
				return err
			}
			renderUser(cmd.OutOrStdout(), *user)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTasks, "with-tasks", false, "fetch the user's task list as well")

	return cmd
}
