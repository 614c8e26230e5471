package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"letterpress/internal/deps"
	"letterpress/internal/logging"
	"letterpress/internal/preflight"
	"letterpress/internal/tools"
)

func newDepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "deps",
		Short:       "Check that the external training tools are installed",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := tools.NewRunner(logging.NewNop())
			statuses := preflight.CheckSystemDeps(runner.Resolve)

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "missing"
				location := status.Detail
				if status.Available {
					state = "ok"
					location = status.Path
				}
				rows = append(rows, []string{status.Name, state, location, status.Description})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Status", "Location", "Purpose"},
				rows,
			))

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}
