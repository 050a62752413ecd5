package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/runner/schedule"
	"tableflip.dev/weekend/pkg/runner/selection"
)

func addClear(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	selections := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the grid, or with --selections start over entirely",
		Example: `
weekend clear
weekend clear --selections
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			if selections {
				r := selection.Remove{All: true, JSON: output.JSON, Out: cmd.OutOrStdout(), Planner: s.planner}
				return output.HandleError(r.Do(cmd.Context()))
			}
			u := schedule.Unschedule{All: true, JSON: output.JSON, Out: cmd.OutOrStdout(), Planner: s.planner}
			return output.HandleError(u.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&selections, "selections", false, "Also remove every selected activity.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
