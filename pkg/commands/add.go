package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/runner/selection"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	po := &options.PlaceOptions{}
	co := &options.CustomOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "add <activity id>",
		Aliases: []string{"pick", "select"},
		Short:   "Add an activity to your weekend",
		Example: `
weekend add 1
weekend add 6 --place "Cafe Luna" --address "12 Main St"
weekend add --custom "Kite flying" --custom-category social --location Beach
`,
		Args: func(_ *cobra.Command, args []string) error {
			if co.Name != "" {
				if len(args) > 0 {
					return errors.New("--custom takes no activity id")
				}
				return nil
			}
			if len(args) != 1 {
				return errors.New("requires one activity id")
			}
			return io.ParseID(args[0])
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return catalogCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			custom, err := co.Activity()
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			a := selection.Add{
				ID:      io.ID,
				Place:   po.Place,
				Address: po.Address,
				Link:    po.Link,
				Custom:  custom,
				JSON:    output.JSON,
				ShowID:  io.ShowID,
				Out:     cmd.OutOrStdout(),
				Planner: s.planner,
			}
			return output.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddPlaceArgs(cmd, po)
	options.AddCustomArgs(cmd, co)
	_ = cmd.RegisterFlagCompletionFunc("custom-category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
