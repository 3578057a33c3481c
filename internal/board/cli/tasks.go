package cli

import (
	"github.com/spf13/cobra"
)

// newTasksCommand создает команду списка задач пользователя.
func newTasksCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks <userId>",
		Short: "List tasks of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			tasks, err := deps.Board.ListTasks(cmd.Context(), userID)
			if err != nil {
				return err
			}
			renderTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}
}
