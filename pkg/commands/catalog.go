package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/commands/options"
	"tableflip.dev/weekend/pkg/runner/catalog"
)

func addCatalog(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "catalog [search]",
		Aliases: []string{"browse", "ls"},
		Short:   "List the activities you can pick from",
		Example: `
weekend catalog
weekend catalog brunch
weekend catalog --search "game night"
weekend catalog --category outdoor
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			category, err := co.ParsedCategory()
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			c := catalog.Catalog{
				Query:    strings.TrimSpace(strings.Join(append(args, co.Search), " ")),
				Category: category,
				JSON:     output.JSON,
				Out:      cmd.OutOrStdout(),
				Planner:  s.planner,
			}
			return output.HandleError(c.Do(cmd.Context()))
		},
	}

	options.AddCatalogArgs(cmd, co)
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
