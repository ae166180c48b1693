package cmd

import (
	"fmt"
	"strings"

	"github.com/raksha-app/raksha/apiclient"
	"github.com/raksha-app/raksha/colors"
	"github.com/spf13/cobra"
)

var (
	routeStartArg int
	routeEndArg   int
)

func init() {
	rootCmd.AddCommand(createRouteCmd())
}

func createRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the safest route between two zones",
		Long: `Asks the backend's route engine for the safest path between two map
zones, weighing each zone by its safety rating. Zone ids come from the
Raksha map; the defaults trace the demo path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd)
		},
	}

	cmd.Flags().IntVarP(&routeStartArg, "from", "f", 1, "start zone id")
	cmd.Flags().IntVarP(&routeEndArg, "to", "t", 5, "destination zone id")

	return cmd
}

func runRoute(cmd *cobra.Command) error {
	if err := requireSession(); err != nil {
		return err
	}

	result, err := api.SafeRoute(routeStartArg, routeEndArg)
	if err != nil {
		return formattedError("failed to compute route: %v", err)
	}

	if len(result.Path) == 0 {
		cmd.Println("No safe route found between those zones.")
		return nil
	}

	cmd.Printf("%s%s\n", colors.Green("Safe path found!"), demoBadge())
	cmd.Println(renderPath(result.Path))

	for _, node := range result.Path {
		cmd.Printf("  Zone %v  (%.4f, %.4f)  safety weight %.1f\n",
			node.ID, node.Latitude, node.Longitude, node.Weight)
	}

	return nil
}

// renderPath draws the waypoint chain the way the map view does:
// Start -> Zone n -> ... -> Dest
func renderPath(path []apiclient.RouteNode) string {
	segments := []string{"Start"}
	for _, node := range path {
		segments = append(segments, fmt.Sprintf("Zone %v", node.ID))
	}
	segments = append(segments, "Dest")

	return strings.Join(segments, " -> ")
}
