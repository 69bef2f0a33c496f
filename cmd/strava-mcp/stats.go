// ABOUTME: CLI command for showing athlete ride/run totals.
// ABOUTME: Prints recent, year-to-date and all-time aggregates.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rousseya/strava-mcp-server/internal/strava"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show athlete statistics",
	Long: `Show your ride and run totals over three windows: the last 4 weeks,
the current year, and all time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newStravaClient()
		stats, err := client.GetAthleteStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch stats: %w", err)
		}

		printTotals("Rides (last 4 weeks)", stats.RecentRideTotals)
		printTotals("Runs  (last 4 weeks)", stats.RecentRunTotals)
		printTotals("Rides (this year)", stats.YTDRideTotals)
		printTotals("Runs  (this year)", stats.YTDRunTotals)
		printTotals("Rides (all time)", stats.AllRideTotals)
		printTotals("Runs  (all time)", stats.AllRunTotals)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func printTotals(label string, t *strava.ActivityTotals) {
	bold := color.New(color.Bold)
	if t == nil || t.Count == 0 {
		fmt.Printf("%s  —\n", bold.Sprint(padRight(label, 22)))
		return
	}
	fmt.Printf("%s  %4d activities  %8.1f km  %s  %7.0f m climbed\n",
		bold.Sprint(padRight(label, 22)),
		t.Count,
		t.Distance/1000,
		formatDuration(t.MovingTime),
		t.ElevationGain)
}
