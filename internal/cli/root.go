// Package cli implements the console command line.
package cli

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

// NewRootCommand returns the console command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "console",
		Short:         "Admin console for the user and permission API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/consolesession/console.yaml)")

	cmd.AddCommand(
		newServeCommand(opts),
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newWhoamiCommand(opts),
	)

	return cmd
}

func (o *rootOptions) load() (*Config, error) {
	return LoadConfig(o.configPath)
}
