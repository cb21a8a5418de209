package options

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventcal/pkg/filter"
)

// FilterOptions holds the category, group and search flags.
type FilterOptions struct {
	Category string
	Group    string
	Search   string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.Category, "category", filter.All,
		base.Wrap80("Only show events with this exact category."))
	cmd.Flags().StringVar(&o.Group, "group", filter.All,
		base.Wrap80("Only show events with this exact community group."))
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		base.Wrap80("Only show events whose title contains this text, ignoring case."))
}

// Criteria converts the flags into filter criteria.
func (o *FilterOptions) Criteria() filter.Criteria {
	return filter.Criteria{
		Category: o.Category,
		Group:    o.Group,
		Search:   o.Search,
	}
}
