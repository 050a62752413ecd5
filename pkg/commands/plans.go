package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/runner/plans"
)

func addPlans(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"saved"},
		Short:   "List, save, load and delete named weekend plans",
		Example: `
weekend plans
weekend plans list
weekend plans save Beach weekend
weekend plans load 1749837600000
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlans(cmd, output, plans.List, "", "")
		},
	}
	options.AddOutputArg(cmd, output)

	addPlansList(cmd)
	addPlansSave(cmd)
	addPlansByID(cmd, plans.Load, "load", "Replace the current weekend with a saved plan")
	addPlansByID(cmd, plans.Delete, "delete", "Delete a saved plan")

	topLevel.AddCommand(cmd)
}

func addPlansList(parent *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved plans, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlans(cmd, output, plans.List, "", "")
		},
	}
	options.AddOutputArg(cmd, output)

	parent.AddCommand(cmd)
}

func addPlansSave(parent *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the current weekend under a name",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a plan name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlans(cmd, output, plans.Save, strings.Join(args, " "), "")
		},
	}
	options.AddOutputArg(cmd, output)

	parent.AddCommand(cmd)
}

func addPlansByID(parent *cobra.Command, action plans.Action, use, short string) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   use + " <plan id>",
		Short: short,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires one plan id")
			}
			return nil
		},
		ValidArgsFunction: planCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlans(cmd, output, action, "", args[0])
		},
	}
	if action == plans.Delete {
		cmd.Aliases = []string{"rm"}
	}
	options.AddOutputArg(cmd, output)

	parent.AddCommand(cmd)
}

func runPlans(cmd *cobra.Command, output *options.OutputOptions, action plans.Action, name, id string) error {
	cmd.SilenceUsage = true
	s, err := openSession(cmd.Context())
	if err != nil {
		return output.HandleError(err)
	}
	defer s.Close()

	p := plans.Plans{
		Action:  action,
		Name:    name,
		ID:      id,
		JSON:    output.JSON,
		Out:     cmd.OutOrStdout(),
		Planner: s.planner,
	}
	return output.HandleError(p.Do(cmd.Context()))
}
