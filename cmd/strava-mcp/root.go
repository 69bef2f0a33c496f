// ABOUTME: Root Cobra command for the strava-mcp CLI.
// ABOUTME: Loads configuration and builds the Strava client for subcommands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rousseya/strava-mcp-server/internal/config"
	"github.com/rousseya/strava-mcp-server/internal/geocode"
	"github.com/rousseya/strava-mcp-server/internal/logging"
	"github.com/rousseya/strava-mcp-server/internal/strava"
)

var (
	cfg     *config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "strava-mcp",
	Short: "Strava MCP server and CLI",
	Long: `strava-mcp exposes your Strava activities to AI assistants through the
Model Context Protocol, and offers a few terminal commands of its own.

WHAT IT DOES:

  Activities     list recent activities, fetch details, rename, retype
  Stats          recent / year-to-date / all-time ride and run totals
  Classifiers    flag generic auto-generated names, flag likely e-bike rides
  Locations      reverse-geocode activity start points via OpenStreetMap

QUICK START:

  $ strava-mcp auth               # Generate API tokens (one-time)
  $ strava-mcp activities         # List your latest activities
  $ strava-mcp stats              # Show your totals
  $ strava-mcp mcp                # Start the MCP server (stdio)
  $ strava-mcp serve              # Start the hosted HTTP server

MCP INTEGRATION:

  Add to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "strava": { "command": "strava-mcp", "args": ["mcp"] }
    }
  }

CREDENTIALS:

  Credentials are read from the environment (or a .env file):
  STRAVA_CLIENT_ID, STRAVA_CLIENT_SECRET, STRAVA_ACCESS_TOKEN,
  STRAVA_REFRESH_TOKEN. Run 'strava-mcp auth' to generate the token pair.
  Tokens refresh automatically for the lifetime of the process.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// version and help don't need configuration
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logging.Setup(verbose || cfg.Verbose)

		// The auth helper generates tokens, so it only needs the app
		// credentials; everything else needs the full set.
		if cmd.Name() == "auth" {
			return nil
		}
		return cfg.ValidateCredentials()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newStravaClient builds the API client from the loaded configuration.
func newStravaClient() *strava.Client {
	return strava.NewClient(strava.Credentials{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		AccessToken:  cfg.AccessToken,
		RefreshToken: cfg.RefreshToken,
	})
}

// newGeocoder builds the reverse geocoder used for location enrichment.
func newGeocoder() geocode.Geocoder {
	return geocode.NewNominatim()
}
