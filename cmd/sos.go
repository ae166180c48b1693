/*
Copyright © 2026 The Raksha Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/raksha-app/raksha/colors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createSosCmd())
}

func createSosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sos",
		Short: "Trigger an SOS alert to your trusted contacts",
		Long: `Triggers a panic alert. The backend shares your location with your
trusted contacts and keeps the alert active until you run
'raksha sos resolve'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTriggerSos(cmd)
		},
	}

	cmd.AddCommand(createSosResolveCmd())

	return cmd
}

func createSosResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Mark the active SOS alert as resolved",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveSos(cmd)
		},
	}
}

func runTriggerSos(cmd *cobra.Command) error {
	if err := requireSession(); err != nil {
		return err
	}

	reportLocationQuietly()

	result, err := api.TriggerPanic()
	if err != nil {
		return formattedError("failed to trigger SOS: %v", err)
	}

	cmd.Printf("%s Notified %v trusted contacts.%s\n",
		colors.BoldRed("SOS SENT!"), result.NotifiedContacts, demoBadge())
	cmd.Println("Alert is active. Your live location is being shared with trusted contacts and police.")
	cmd.Println("Run 'raksha sos resolve' once you are safe.")
	cmd.Printf("\nHelplines: %s National Emergency | %s Women Helpline\n",
		colors.BoldRed("112"), colors.BoldRed("1091"))

	return nil
}

func runResolveSos(cmd *cobra.Command) error {
	if err := requireSession(); err != nil {
		return err
	}

	result, err := api.ResolvePanic()
	if err != nil {
		return formattedError("failed to resolve SOS: %v", err)
	}

	cmd.Printf("%s%s\n", result.Message, demoBadge())
	cmd.Printf("%s SOS resolved. Stay safe.\n", colors.Green("✔"))

	return nil
}

// reportLocationQuietly shares the coordinates pinned in the config with
// the backend, best effort. No coordinates, or a failed report, is not
// worth blocking an SOS over.
func reportLocationQuietly() {
	location := clientConfig.Location
	if location.Latitude == 0 && location.Longitude == 0 {
		return
	}

	_ = api.ReportLocation(location.Latitude, location.Longitude)
}
