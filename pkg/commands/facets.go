package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventcal/pkg/runner/facets"
)

func addFacets(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "facets",
		Short: base.Wrap80("List the categories and community groups found in the events."),
		Example: `
eventcal facets
eventcal facets --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, events, done, err := setup(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()

			f := facets.Facets{Events: events, Out: cmd.OutOrStdout()}
			if oo.JSON {
				f.Output = "json"
			}
			return oo.HandleError(f.Do(contextOr(cmd.Context())))
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
