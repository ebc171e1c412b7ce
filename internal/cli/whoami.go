package cli

import (
	"fmt"
	"io"

	"github.com/cccteam/consolesession"
	"github.com/cccteam/consolesession/permissions"
	"github.com/go-playground/errors/v5"
	"github.com/spf13/cobra"
)

func newWhoamiCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session and the pages it may open",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.manager.Shutdown()

			if err := a.manager.Boot(cmd.Context()); err != nil {
				return errors.Wrap(err, "Manager.Boot()")
			}
			if !a.manager.IsAuthenticated() {
				return errors.New("not logged in")
			}

			printSession(cmd.OutOrStdout(), a.manager)

			return nil
		},
	}
}

func printSession(w io.Writer, m *consolesession.Manager) {
	s := m.Session()
	u := s.User

	fmt.Fprintf(w, "%s (%s)\n", u.Email, u.DisplayName())
	if u.IsSuperuser {
		fmt.Fprintln(w, "superuser: all pages")

		return
	}

	accessible := m.AccessiblePages()
	if len(accessible) == 0 {
		fmt.Fprintln(w, "no accessible pages")

		return
	}
	for _, p := range accessible {
		row := s.Permissions
		summary := ""
		for i := range row {
			if row[i].Page == p.Name {
				summary = permissions.Summary(u, &row[i])
			}
		}
		fmt.Fprintf(w, "%-22s %-24s %s\n", p.Name, p.Path, summary)
	}
}
