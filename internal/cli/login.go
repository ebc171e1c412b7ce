package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cccteam/consolesession/apiclient"
	"github.com/go-playground/errors/v5"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCommand(opts *rootOptions) *cobra.Command {
	var email, passwordFile string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			if email == "" {
				return errors.New("--email is required")
			}

			password, err := readPassword(cmd.ErrOrStderr(), passwordFile)
			if err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.manager.Shutdown()

			ctx := cmd.Context()
			res, err := a.client.Login(ctx, email, password)
			if err != nil {
				return errors.New(apiclient.UserMessage(err, "Login failed. Please check your credentials."))
			}

			claims, err := apiclient.DecodeAccessToken(res.Access)
			if err != nil {
				return errors.Wrap(err, "apiclient.DecodeAccessToken()")
			}

			user := apiclient.LoginIdentity(res, claims, email)
			if err := a.manager.Login(ctx, res.Tokens(), user); err != nil {
				return errors.Wrap(err, "Manager.Login()")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.Email)

			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read the password from a file instead of prompting (- for stdin)")

	return cmd
}

// readPassword prompts on the terminal unless passwordFile names a file, or
// is "-" for a piped stdin.
func readPassword(prompt io.Writer, passwordFile string) (string, error) {
	switch passwordFile {
	case "":
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return "", errors.New("no terminal available for the password prompt, use --password-file")
		}

		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", errors.Wrap(err, "term.ReadPassword()")
		}

		return string(b), nil
	case "-":
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "bufio.Reader.ReadString()")
		}

		return strings.TrimRight(line, "\r\n"), nil
	}

	b, err := os.ReadFile(passwordFile)
	if err != nil {
		return "", errors.Wrap(err, "os.ReadFile()")
	}

	return strings.TrimRight(string(b), "\r\n"), nil
}
