package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	var (
		name        string
		longWeekend string
		autoSave    bool
	)

	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "Show or change your name, long weekend and auto-save",
		Example: `
weekend settings
weekend settings --name Sam --long-weekend friday
weekend settings --auto-save=false
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			var changes app.Settings
			flags := cmd.Flags()
			if flags.Changed("name") {
				changes.UserName = &name
			}
			if flags.Changed("long-weekend") {
				lw, err := plan.ParseLongWeekend(longWeekend)
				if err != nil {
					return output.HandleError(err)
				}
				changes.LongWeekend = &lw
			}
			if flags.Changed("auto-save") {
				changes.AutoSave = &autoSave
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			st := settings.Settings{
				Changes: changes,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
				Planner: s.planner,
			}
			return output.HandleError(st.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name, shown in the weekend header.")
	cmd.Flags().StringVar(&longWeekend, "long-weekend", "", "Extra days: none, friday, monday or both.")
	cmd.Flags().BoolVar(&autoSave, "auto-save", true, "Save every change to disk.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
