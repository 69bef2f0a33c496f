// ABOUTME: CLI command for starting the MCP server over stdio.
// ABOUTME: This is the transport desktop assistants like Claude use.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rousseya/strava-mcp-server/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server (stdio)",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "strava": {
        "command": "strava-mcp",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_activities                   List recent activities
  get_activity                     Get activity details
  get_stats                        Ride/run totals
  detect_generic_named_activities  Find auto-generated names
  get_activity_details_for_naming  Naming context for one activity
  rename_activity                  Rename an activity
  detect_ebike_activities          Flag likely e-bike MTB rides
  fix_ebike_activity               Recategorize as E-MTB
  update_activity_type             Change an activity's sport type

AVAILABLE RESOURCES:

  strava://activities/recent       Last 10 activities
  strava://athlete/stats           Aggregate totals`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(newStravaClient(), newGeocoder())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
