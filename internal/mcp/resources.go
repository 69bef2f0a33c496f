// ABOUTME: MCP resource implementations for the Strava server.
// ABOUTME: Provides strava://activities/recent and strava://athlete/stats.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// strava://activities/recent - last 10 activities
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "strava://activities/recent",
		Name:        "Recent Activities",
		Description: "The athlete's 10 most recent Strava activities",
		MIMEType:    "application/json",
	}, s.handleRecentActivitiesResource)

	// strava://athlete/stats - aggregate totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "strava://athlete/stats",
		Name:        "Athlete Stats",
		Description: "Recent, year-to-date and all-time ride/run totals",
		MIMEType:    "application/json",
	}, s.handleStatsResource)
}

// Resource handlers

func (s *Server) handleRecentActivitiesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	activities, err := s.api.ListActivities(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	out := make([]activitySummaryOutput, 0, len(activities))
	for i := range activities {
		out = append(out, summaryOutput(&activities[i]))
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "strava://activities/recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	stats, err := s.api.GetAthleteStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch athlete stats: %w", err)
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "strava://athlete/stats",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
