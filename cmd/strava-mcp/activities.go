// ABOUTME: CLI command for listing recent Strava activities.
// ABOUTME: One line per activity with distance, time and elevation.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var activitiesLimit int

var activitiesCmd = &cobra.Command{
	Use:     "activities",
	Aliases: []string{"acts", "a"},
	Short:   "List recent activities",
	Long: `List your most recent Strava activities.

OUTPUT FORMAT:

  Each line shows: ID  DATE  TYPE  NAME  DISTANCE  TIME  ELEVATION

EXAMPLES:

  strava-mcp activities           # Show last 30 activities
  strava-mcp activities -n 5      # Show last 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newStravaClient()
		activities, err := client.ListActivities(cmd.Context(), activitiesLimit)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}

		if len(activities) == 0 {
			fmt.Println("No activities found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range activities {
			date := ""
			if t, ok := a.StartDate(); ok {
				date = t.Format("2006-01-02")
			}
			fmt.Printf("%s %s %s %s %s %s %s\n",
				faint.Sprintf("%d", a.ID),
				faint.Sprint(date),
				padRight(a.SportType, 18),
				padRight(a.Name, 38),
				fmt.Sprintf("%6.1f km", a.Distance/1000),
				formatDuration(a.MovingTime),
				fmt.Sprintf("%5.0f m", a.TotalElevationGain))
		}
		return nil
	},
}

func init() {
	activitiesCmd.Flags().IntVarP(&activitiesLimit, "limit", "n", 30, "maximum number of activities")
	rootCmd.AddCommand(activitiesCmd)
}

func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	for len(runes) < width {
		runes = append(runes, ' ')
	}
	return string(runes)
}

func formatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%3dm ", m)
}
