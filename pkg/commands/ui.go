package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/weekend/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"ui", "board"},
		Short:   "open the interactive weekend board",
		Example: `
weekend plan
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			return teaui.Run(s.planner)
		},
	}

	topLevel.AddCommand(cmd)
}
