package cmd

import (
	"github.com/pkg/errors"
	"github.com/raksha-app/raksha/session"
	"github.com/spf13/cobra"
)

var (
	loginEmailArg    string
	loginPasswordArg string
)

func init() {
	rootCmd.AddCommand(createLoginCmd())
	rootCmd.AddCommand(createLogoutCmd())
}

func createLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your Raksha account",
		Long: `Signs in to the Raksha backend and stores the session token, so
every other command can act as you until you run 'raksha logout'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd)
		},
	}

	cmd.Flags().StringVarP(&loginEmailArg, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&loginPasswordArg, "password", "p", "", "account password")

	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func runLogin(cmd *cobra.Command) error {
	result, err := api.Login(loginEmailArg, loginPasswordArg)
	if err != nil {
		return err
	}

	user := session.User{ID: result.UserID, Email: loginEmailArg}
	if err := sessionStore.Login(result.Token, user); err != nil {
		return errors.Wrap(err, "unable to save session")
	}

	cmd.Printf("Welcome back!%s\n", demoBadge())

	return nil
}

func createLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sessionStore.Logout(); err != nil {
				return errors.Wrap(err, "unable to clear session")
			}

			cmd.Println("Signed out. Stay safe out there.")

			return nil
		},
	}
}
