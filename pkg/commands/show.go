package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/printers"
	"tableflip.dev/weekend/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}
	width := printers.DefaultWidth

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"get", "grid"},
		Short:   "Print the weekend grid and what is still unscheduled",
		Example: `
weekend show
weekend show --width 140
weekend show --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			sh := show.Show{
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Width:   width,
				Out:     cmd.OutOrStdout(),
				Planner: s.planner,
			}
			return output.HandleError(sh.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", printers.DefaultWidth, "Width of the printed grid in columns.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
