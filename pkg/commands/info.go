package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where the weekend is stored.",
		Example: `
weekend info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			i := info.Info{
				Config: s.cfg,
				Store:  s.store,
				Out:    cmd.OutOrStdout(),
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
