package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/runner/settings"
	"tableflip.dev/weekend/pkg/theme"
)

func addTheme(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	var id theme.ID

	cmd := &cobra.Command{
		Use:   "theme [theme]",
		Short: "List the themes, or switch to one",
		Example: `
weekend theme
weekend theme lazy
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			var err error
			id, err = theme.Parse(args[0])
			return err
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var out []string
			for _, t := range theme.All() {
				out = append(out, string(t.ID)+"\t"+t.Name)
			}
			return out, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			t := settings.Theme{
				ID:      id,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
				Planner: s.planner,
			}
			return output.HandleError(t.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
