package cli

import (
	"github.com/spf13/cobra"

	"gotaskboard/internal/board/app/session"
)

// newDoneCommand создает команду переключения флага завершения задачи.
func newDoneCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "done <userId> <taskId>",
		Short: "Toggle completion of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			taskID, err := parseTaskID(args[1])
			if err != nil {
				return err
			}

			sess := session.NewSession(deps.Board, deps.Config.Overlay.LocalIDThreshold)
			if err := sess.Open(ctx, userID); err != nil {
				return err
			}

			if _, err := sess.ToggleTask(ctx, taskID); err != nil {
				return err
			}

			renderTasks(cmd.OutOrStdout(), sess.Tasks())
			return nil
		},
	}
}
