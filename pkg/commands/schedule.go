package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/runner/schedule"
)

func addSchedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}
	var slot plan.Slot

	cmd := &cobra.Command{
		Use:     "schedule <activity id> <day> <time>",
		Aliases: []string{"move", "put"},
		Short:   "Place an activity on the weekend grid",
		Long: `Place a selected activity into a day and hour. If the slot is taken, the
activity already there moves into the slot being vacated, or becomes
unscheduled when the moved activity had no slot yet.`,
		Example: `
weekend schedule 1 saturday 9am
weekend schedule 6 sun "11:00 AM"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("requires an activity id, a day and a time")
			}
			if err := io.ParseID(args[0]); err != nil {
				return err
			}
			var err error
			slot, err = plan.ParseSlot(args[1], args[2])
			return err
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return selectedCompletions(cmd, args, toComplete)
			case 1:
				return dayCompletions(), cobra.ShellCompDirectiveNoFileComp
			case 2:
				return timeCompletions(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			sc := schedule.Schedule{
				ID:      io.ID,
				Slot:    slot,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
				Planner: s.planner,
			}
			return output.HandleError(sc.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addUnschedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "unschedule <activity id>",
		Short: "Take an activity off the grid but keep it selected",
		Example: `
weekend unschedule 1
weekend unschedule --all
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

			u := schedule.Unschedule{
				ID:      io.ID,
				All:     all,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
				Planner: s.planner,
			}
			return output.HandleError(u.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Clear the whole grid.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
