package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gotaskboard/pkg/logger"
	"gotaskboard/pkg/shutdown"
)

// Константы для логирования режима наблюдения.
const (
	LogWatchStarted = "watch mode started"
	LogWatchRefresh = "refreshing board"
	LogWatchFailed  = "board refresh failed"
	LogWatchStopped = "watch mode stopped"
)

// newWatchCommand создает команду периодического обновления доски.
// Команда работает до получения SIGINT или SIGTERM.
func newWatchCommand(deps *Deps) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Periodically refresh all users with their tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			log := logger.Log(ctx)
			log.Info(ctx, LogWatchStarted, zap.Duration("interval", interval))

			done := make(chan struct{})
			go func() {
				defer close(done)

				refresh := func() {
					log.Debug(ctx, LogWatchRefresh)
					composed, err := deps.Board.ListUsersWithTasks(ctx)
					if err != nil {
						log.Warn(ctx, LogWatchFailed, zap.Error(err))
						return
					}
					renderUsersWithTasks(cmd.OutOrStdout(), composed)
				}

				refresh()

				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						refresh()
					case <-ctx.Done():
						return
					}
				}
			}()

			shutdown.Wait(deps.Config.Shutdown.Timeout, func(hookCtx context.Context) error {
				cancel()
				select {
				case <-done:
				case <-hookCtx.Done():
				}
				return nil
			})

			log.Info(ctx, LogWatchStopped)
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "refresh interval (defaults to configuration)")
	cmd.PreRun = func(_ *cobra.Command, _ []string) {
		if interval <= 0 {
			interval = deps.Config.Watch.Interval
		}
	}

	return cmd
}
