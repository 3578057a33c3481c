package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"gotaskboard/internal/board/app/session"
)

// newAddCommand создает команду добавления задачи.
func newAddCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "add <userId> <title>...",
		Short: "Create a task for a user",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			title := strings.Join(args[1:], " ")

			sess := session.NewSession(deps.Board, deps.Config.Overlay.LocalIDThreshold)
			if err := sess.Open(ctx, userID); err != nil {
				return err
			}

			if _, err := sess.CreateTask(ctx, title); err != nil {
				return err
			}

			renderTasks(cmd.OutOrStdout(), sess.Tasks())
			return nil
		},
	}
}
