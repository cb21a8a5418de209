package commands

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventcal/pkg/commands/options"
	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/log"
	"tableflip.dev/eventcal/pkg/runner/month"
	"tableflip.dev/eventcal/pkg/store"
)

var (
	oo = &base.OutputOptions{}
	so = &options.SourceOptions{}
)

func New() *cobra.Command {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "eventcal",
		Short: base.Wrap80("A month calendar of community events with category, group and title filters."),
		Long: base.Wrap80("eventcal shows a month grid of events, filterable by category, community " +
			"group and title. On a terminal it opens the interactive calendar; otherwise it " +
			"prints the current month."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return runUI(contextOr(cmd.Context()), fo)
			}
			_, events, done, err := setup(false)
			if err != nil {
				return err
			}
			defer done()
			m := month.Month{Events: events, Criteria: fo.Criteria(), Out: cmd.OutOrStdout()}
			return m.Do(contextOr(cmd.Context()))
		},
	}

	options.AddSourceArgs(cmd, so)
	options.AddFilterArgs(cmd, fo)
	addFacetCompletions(cmd)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addMonth(topLevel)
	addDay(topLevel)
	addFacets(topLevel)
	addUpcoming(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
}

// setup resolves the config, points the logger at the configured file and
// loads the events. The UI passes quiet so that, without a log file, log
// lines do not draw over the screen.
func setup(quiet bool) (store.Config, []event.Event, func(), error) {
	done := func() {}

	cfg, err := so.Load()
	if err != nil {
		return nil, nil, done, err
	}

	log.SetLevel(log.ParseLevel(cfg.LogLevel()))
	switch {
	case cfg.LogFile() != "":
		f, err := log.ToFile(cfg.LogFile())
		if err != nil {
			return nil, nil, done, err
		}
		done = func() {
			log.SetOutput(os.Stderr)
			_ = f.Close()
		}
	case quiet:
		log.SetOutput(io.Discard)
		done = func() { log.SetOutput(os.Stderr) }
	}

	if quiet {
		return cfg, nil, done, nil
	}
	events, err := store.LoadEvents(cfg.EventsPath())
	if err != nil {
		done()
		return nil, nil, func() {}, err
	}
	return cfg, events, done, nil
}

func contextOr(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
