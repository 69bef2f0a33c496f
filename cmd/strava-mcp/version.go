// ABOUTME: CLI command printing the build version.
// ABOUTME: Version is set in internal/version, overridable via ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rousseya/strava-mcp-server/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("strava-mcp %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
