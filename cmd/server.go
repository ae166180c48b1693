package cmd

import (
	"github.com/raksha-app/raksha/logger"
	"github.com/raksha-app/raksha/stubserver"
	"github.com/spf13/cobra"
)

var demoServerPortArg int

func init() {
	rootCmd.AddCommand(createDemoServerCmd())
}

func createDemoServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo-server",
		Short: "Serve a local stub of the Raksha API",
		Long: `Runs a local HTTP stub that answers every Raksha API endpoint with
the same canned fixtures the client falls back to in demo mode. Useful
for demoing the app end-to-end, or pointing integration tests at a
real transport, without the production backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return stubserver.New(logger.NewLogger()).Start(demoServerPortArg)
		},
	}

	cmd.Flags().IntVarP(&demoServerPortArg, "port", "p", 3000, "port to listen on")

	return cmd
}
