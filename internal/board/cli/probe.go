package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Сообщения команды probe.
const (
	msgBackendReachable   = "backend is reachable"
	msgBackendUnreachable = "backend is unreachable"
)

// newProbeCommand создает команду проверки доступности бэкенда.
func newProbeCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check connectivity to the remote service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if deps.Board.Probe(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), msgBackendReachable)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), msgBackendUnreachable)
			return nil
		},
	}
}
