package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the grid whenever the saved weekend changes",
		Example: `
weekend watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			w := watch.Watch{
				Store:   s.store,
				Planner: s.planner,
				Log:     s.log,
				Out:     cmd.OutOrStdout(),
			}
			return w.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
