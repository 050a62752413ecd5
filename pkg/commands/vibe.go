package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/runner/selection"
)

func addVibe(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}
	var vibe plan.Vibe

	cmd := &cobra.Command{
		Use:   "vibe <activity id> <happy|relaxed|energetic|none>",
		Short: "Tag a selected activity with a vibe",
		Example: `
weekend vibe 1 energetic
weekend vibe 1 none
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an activity id and a vibe")
			}
			if err := io.ParseID(args[0]); err != nil {
				return err
			}
			var err error
			vibe, err = plan.ParseVibe(args[1])
			return err
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return selectedCompletions(cmd, args, toComplete)
			}
			if len(args) == 1 {
				out := []string{"none"}
				for _, v := range plan.AllVibes() {
					out = append(out, string(v)+"\t"+v.Emoji())
				}
				return out, cobra.ShellCompDirectiveNoFileComp
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

			v := selection.Vibe{
				ID:      io.ID,
				Vibe:    vibe,
				JSON:    output.JSON,
				ShowID:  io.ShowID,
				Out:     cmd.OutOrStdout(),
				Planner: s.planner,
			}
			return output.HandleError(v.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
