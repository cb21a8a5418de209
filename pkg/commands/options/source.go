package options

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventcal/pkg/store"
)

// SourceOptions are the persistent flags that locate config, events and
// the log file.
type SourceOptions struct {
	Events  string
	Config  string
	LogFile string
}

func AddSourceArgs(cmd *cobra.Command, o *SourceOptions) {
	cmd.PersistentFlags().StringVarP(&o.Events, "events", "e", "",
		base.Wrap80("Event file to read (.json, .yaml, .yml or .ics). Overrides the events config key."))
	cmd.PersistentFlags().StringVar(&o.Config, "config", "",
		base.Wrap80("Config file to use instead of searching for .eventcal.yaml."))
	cmd.PersistentFlags().StringVar(&o.LogFile, "log-file", "",
		base.Wrap80("Append logs to this file."))
}

// Load resolves the config and applies the flag overrides.
func (o *SourceOptions) Load() (store.Config, error) {
	var (
		cfg store.Config
		err error
	)
	if o.Config != "" {
		cfg, err = store.LoadConfigFile(o.Config)
	} else {
		cfg, err = store.LoadConfig()
	}
	if err != nil {
		return nil, err
	}
	return store.Override(cfg, o.Events, o.LogFile)
}
