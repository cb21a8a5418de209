package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventcal/pkg/commands/options"
	"tableflip.dev/eventcal/pkg/runner/upcoming"
	"tableflip.dev/eventcal/pkg/timeutil"
)

func addUpcoming(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	window := timeutil.DefaultWindow

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: base.Wrap80("List the matching events from today through the next few days."),
		Example: `
eventcal upcoming
eventcal upcoming --within 10d --group "BI-ISIG"
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, events, done, err := setup(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()

			u := upcoming.Upcoming{
				Events:   events,
				Criteria: fo.Criteria(),
				Window:   window,
				Out:      cmd.OutOrStdout(),
			}
			if oo.JSON {
				u.Output = "json"
			}
			return oo.HandleError(u.Do(contextOr(cmd.Context())))
		},
	}

	cmd.Flags().StringVarP(&window, "within", "w", timeutil.DefaultWindow,
		base.Wrap80("How far ahead to look, in days and weeks, e.g. 3d, 2w or 1w3d."))
	options.AddFilterArgs(cmd, fo)
	addFacetCompletions(cmd)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
