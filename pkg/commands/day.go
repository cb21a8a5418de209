package commands

import (
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventcal/pkg/calendar"
	"tableflip.dev/eventcal/pkg/commands/options"
	"tableflip.dev/eventcal/pkg/runner/day"
)

func addDay(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	date := "today"

	cmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: base.Wrap80("Print the events of one day that match the filters."),
		Example: `
eventcal day
eventcal day 2025-11-12 --group "BI-ISIG"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one date")
			}
			if len(args) == 1 {
				if _, _, _, err := calendar.ParseDateKey(args[0]); err != nil {
					return err
				}
				date = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, events, done, err := setup(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()

			d := day.Day{
				Events:   events,
				Criteria: fo.Criteria(),
				Date:     date,
				Out:      cmd.OutOrStdout(),
			}
			if oo.JSON {
				d.Output = "json"
			}
			return oo.HandleError(d.Do(contextOr(cmd.Context())))
		},
	}

	options.AddFilterArgs(cmd, fo)
	addFacetCompletions(cmd)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
