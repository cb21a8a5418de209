package options

import (
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

// MonthOptions picks the displayed month. Unset flags mean the current one.
type MonthOptions struct {
	Year  int
	Month int
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().IntVarP(&o.Year, "year", "y", 0,
		base.Wrap80("Year to show, defaults to the current year."))
	cmd.Flags().IntVarP(&o.Month, "month", "m", 0,
		base.Wrap80("Month to show as 1-12, defaults to the current month."))
}

// Validate checks the month range.
func (o *MonthOptions) Validate() error {
	if o.Month < 0 || o.Month > 12 {
		return fmt.Errorf("--month must be between 1 and 12, got %d", o.Month)
	}
	return nil
}
