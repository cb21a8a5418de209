package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/eventcal/pkg/commands/options"
	"tableflip.dev/eventcal/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive calendar",
		Example: `
eventcal ui
eventcal ui --events ./events.ics --category Webinar
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(contextOr(cmd.Context()), fo)
		},
	}

	options.AddFilterArgs(cmd, fo)
	addFacetCompletions(cmd)
	topLevel.AddCommand(cmd)
}

func runUI(ctx context.Context, fo *options.FilterOptions) error {
	cfg, _, done, err := setup(true)
	if err != nil {
		return err
	}
	defer done()

	i := ui.UI{Config: cfg, Criteria: fo.Criteria()}
	return i.Do(ctx)
}
