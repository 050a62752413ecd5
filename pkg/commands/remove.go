package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/runner/selection"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}
	all := false

	cmd := &cobra.Command{
		Use:     "remove <activity id>",
		Aliases: []string{"rm", "drop"},
		Short:   "Take an activity off your weekend",
		Example: `
weekend remove 1
weekend remove --all
`,
		Args: func(_ *cobra.Command, args []string) error {
			if all {
				return nil
			}
			if len(args) != 1 {
				return errors.New("requires one activity id, or --all")
			}
			return io.ParseID(args[0])
		},
		ValidArgsFunction: selectedCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			r := selection.Remove{
				ID:      io.ID,
				All:     all,
				JSON:    output.JSON,
				ShowID:  io.ShowID,
				Out:     cmd.OutOrStdout(),
				Planner: s.planner,
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove every selected activity.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
