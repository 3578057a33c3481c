// Package cli содержит терминальный слой представления доски задач.
// Команды только вызывают операции фасада и отображают результаты;
// доменной логики здесь нет.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gotaskboard/internal/board/config"
	"gotaskboard/internal/board/domain/entities"
	servicesPort "gotaskboard/internal/board/ports/services"
)

// Deps содержит зависимости команд.
type Deps struct {
	Board  servicesPort.Board
	Config *config.Config
}

// NewRootCommand создает корневую команду доски задач.
func NewRootCommand(deps *Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "board",
		Short: "Terminal board for users and their tasks",
		Long: `Board lists users from a remote REST service, shows their task
collections and lets you create, toggle and delete tasks.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newUsersCommand(deps))
	rootCmd.AddCommand(newUserCommand(deps))
	rootCmd.AddCommand(newTasksCommand(deps))
	rootCmd.AddCommand(newAddCommand(deps))
	rootCmd.AddCommand(newDoneCommand(deps))
	rootCmd.AddCommand(newRmCommand(deps))
	rootCmd.AddCommand(newProbeCommand(deps))
	rootCmd.AddCommand(newWatchCommand(deps))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// parseUserID разбирает аргумент с идентификатором пользователя.
func parseUserID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", entities.ErrInvalidUserID, arg)
	}
	return id, nil
}

// parseTaskID разбирает аргумент с идентификатором задачи.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", entities.ErrInvalidTaskID, arg)
	}
	return id, nil
}
