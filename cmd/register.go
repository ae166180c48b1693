package cmd

import (
	"github.com/raksha-app/raksha/apiclient"
	"github.com/spf13/cobra"
)

var registerParamsArg apiclient.RegisterParams

func init() {
	rootCmd.AddCommand(createRegisterCmd())
}

func createRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new Raksha account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd)
		},
	}

	cmd.Flags().StringVarP(&registerParamsArg.Name, "name", "n", "", "your full name")
	cmd.Flags().StringVarP(&registerParamsArg.Email, "email", "e", "", "account email")
	cmd.Flags().StringVar(&registerParamsArg.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVarP(&registerParamsArg.Password, "password", "p", "", "account password")

	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")
	cmd.MarkFlagRequired("password")

	return cmd
}

func runRegister(cmd *cobra.Command) error {
	result, err := api.Register(registerParamsArg)
	if err != nil {
		return err
	}

	cmd.Printf("%s%s\n", result.Message, demoBadge())
	cmd.Println("Registration successful! Run 'raksha login' to sign in.")

	return nil
}
