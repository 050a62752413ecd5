package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/runner/selection"
)

func addRecommend(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Add every activity the current theme recommends",
		Example: `
weekend theme adventurous
weekend recommend
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			r := selection.Recommend{
				JSON:    output.JSON,
				ShowID:  io.ShowID,
				Out:     cmd.OutOrStdout(),
				Planner: s.planner,
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
