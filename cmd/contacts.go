package cmd

import (
	"strconv"

	"github.com/raksha-app/raksha/apiclient"
	"github.com/raksha-app/raksha/colors"
	"github.com/spf13/cobra"
)

var addContactParamsArg apiclient.AddContactParams

func init() {
	rootCmd.AddCommand(createContactsCmd())
}

func createContactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage your trusted emergency contacts",
	}

	cmd.AddCommand(createContactsListCmd())
	cmd.AddCommand(createContactsAddCmd())
	cmd.AddCommand(createContactsRemoveCmd())

	return cmd
}

func createContactsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your trusted contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			contacts, err := api.Contacts()
			if err != nil {
				return err
			}

			printContacts(cmd, contacts)

			return nil
		},
	}
}

func createContactsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a trusted contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddContact(cmd)
		},
	}

	cmd.Flags().StringVarP(&addContactParamsArg.Name, "name", "n", "", "contact name e.g. Mom")
	cmd.Flags().StringVar(&addContactParamsArg.Phone, "phone", "", "contact phone number")
	cmd.Flags().StringVarP(&addContactParamsArg.Relationship, "relationship", "r", "", "Parent/Sibling/Friend")

	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("phone")
	cmd.MarkFlagRequired("relationship")

	return cmd
}

func createContactsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <contact-id>",
		Short: "Remove a trusted contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveContact(cmd, args[0])
		},
	}
}

func runAddContact(cmd *cobra.Command) error {
	if err := requireSession(); err != nil {
		return err
	}

	if _, err := api.AddContact(addContactParamsArg); err != nil {
		return formattedError("failed to add contact: %v", err)
	}

	cmd.Printf("Contact added.%s\n", demoBadge())

	// Reload so the user sees the list as the backend now has it
	contacts, err := api.Contacts()
	if err != nil {
		return nil
	}
	printContacts(cmd, contacts)

	return nil
}

func runRemoveContact(cmd *cobra.Command, rawID string) error {
	if err := requireSession(); err != nil {
		return err
	}

	contactID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return formattedError("invalid contact id %q", rawID)
	}

	if _, err := api.DeleteContact(contactID); err != nil {
		return formattedError("failed to delete contact: %v", err)
	}

	cmd.Printf("Contact removed.%s\n", demoBadge())

	return nil
}

func printContacts(cmd *cobra.Command, contacts []apiclient.Contact) {
	if len(contacts) == 0 {
		cmd.Println("No contacts added yet.")
		return
	}

	cmd.Printf("Trusted contacts:%s\n", demoBadge())
	for _, contact := range contacts {
		cmd.Printf("  %v. %s  %s  %s\n",
			contact.ID, colors.Cyan(contact.Name), contact.Phone, contact.Relationship)
	}
}
