package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventcal/pkg/commands/options"
	"tableflip.dev/eventcal/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: base.Wrap80("Print a month grid and the matching events of that month."),
		Example: `
eventcal month
eventcal month --year 2025 --month 11 --category Webinar
eventcal month --search member --json
`,
		ValidArgs: []string{},
		Args: func(cmd *cobra.Command, args []string) error {
			return mo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, events, done, err := setup(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()

			m := month.Month{
				Events:   events,
				Criteria: fo.Criteria(),
				Month:    mo.Month,
				Out:      cmd.OutOrStdout(),
			}
			if cmd.Flags().Changed("year") {
				m.Year = &mo.Year
			}
			if oo.JSON {
				m.Output = "json"
			}
			return oo.HandleError(m.Do(contextOr(cmd.Context())))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddFilterArgs(cmd, fo)
	addFacetCompletions(cmd)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
