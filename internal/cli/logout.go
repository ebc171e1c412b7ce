package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			a.manager.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}
