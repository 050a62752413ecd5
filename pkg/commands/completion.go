package commands

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(weekend completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(weekend completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func catalogCompletions() []string {
	all := activity.Default().All()
	out := make([]string, 0, len(all))
	for _, a := range all {
		out = append(out, strconv.Itoa(a.ID)+"\t"+a.Name)
	}
	return out
}

func categoryCompletions() []string {
	out := []string{string(activity.CategoryAll)}
	for _, c := range activity.AllCategories() {
		out = append(out, string(c))
	}
	return out
}

func selectedCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := openSession(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer s.Close()
	selected := s.planner.State().Selected
	out := make([]string, 0, len(selected))
	for _, a := range selected {
		out = append(out, strconv.Itoa(a.ID)+"\t"+a.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func planCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := openSession(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer s.Close()
	var out []string
	for _, p := range s.planner.Plans() {
		out = append(out, p.ID+"\t"+p.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func dayCompletions() []string {
	var out []string
	for _, d := range plan.AllDays() {
		out = append(out, string(d))
	}
	return out
}

func timeCompletions() []string {
	var out []string
	for _, ts := range plan.TimeSlots() {
		out = append(out, strconv.Quote(string(ts)))
	}
	return out
}
