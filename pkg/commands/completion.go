package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/eventcal/pkg/filter"
	"tableflip.dev/eventcal/pkg/store"
)

// addFacetCompletions completes --category and --group with the values
// found in the configured events file.
func addFacetCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		categories, _ := facetCompletions()
		return matching(categories, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("group", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		_, groups := facetCompletions()
		return matching(groups, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func facetCompletions() (categories, groups []string) {
	cfg, err := so.Load()
	if err != nil {
		return nil, nil
	}
	events, err := store.LoadEvents(cfg.EventsPath())
	if err != nil {
		return nil, nil
	}
	return filter.Facets(events)
}

func matching(values []string, prefix string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.HasPrefix(strings.ToLower(v), strings.ToLower(prefix)) {
			out = append(out, v)
		}
	}
	return out
}
