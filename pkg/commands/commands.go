package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "weekend",
		Short: base.Wrap80("Plan a weekend on the command line: pick activities, lay them out on a Saturday and Sunday grid, and save the plans you like."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addCatalog(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addRecommend(topLevel)
	addSchedule(topLevel)
	addUnschedule(topLevel)
	addClear(topLevel)
	addVibe(topLevel)
	addShow(topLevel)
	addTheme(topLevel)
	addSettings(topLevel)
	addPlans(topLevel)
	addUI(topLevel)
	addWatch(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
