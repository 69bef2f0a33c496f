// ABOUTME: MCP server wiring for the Strava tool surface.
// ABOUTME: Wraps the SDK server with the API client and geocoder adapters.
package mcp

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rousseya/strava-mcp-server/internal/classify"
	"github.com/rousseya/strava-mcp-server/internal/geocode"
	"github.com/rousseya/strava-mcp-server/internal/strava"
	"github.com/rousseya/strava-mcp-server/internal/version"
)

// StravaAPI is the narrow capability set the tool handlers need from the
// Strava client, so tests can substitute a fake.
type StravaAPI interface {
	ListActivities(ctx context.Context, limit int) ([]strava.SummaryActivity, error)
	GetActivity(ctx context.Context, id int64) (*strava.DetailedActivity, error)
	GetAthleteStats(ctx context.Context) (*strava.AthleteStats, error)
	UpdateActivity(ctx context.Context, id int64, params strava.UpdateActivityParams) (*strava.DetailedActivity, error)
}

// Server wraps the MCP server with the Strava API and geocoding adapters.
type Server struct {
	mcpServer *mcp.Server
	api       StravaAPI
	geocoder  geocode.Geocoder
	ebike     classify.EbikeThresholds
}

// NewServer creates the MCP server and registers all tools, prompts and
// resources.
func NewServer(api StravaAPI, geocoder geocode.Geocoder) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "strava",
			Version: version.Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		api:       api,
		geocoder:  geocoder,
		ebike:     classify.DefaultEbikeThresholds(),
	}

	s.registerTools()
	s.registerPrompts()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// StreamableHTTPHandler returns an http.Handler speaking MCP's streamable
// HTTP transport, for hosted deployments.
func (s *Server) StreamableHTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// SSEHandler returns an http.Handler for the legacy SSE transport, kept for
// older MCP clients.
func (s *Server) SSEHandler() http.Handler {
	return mcp.NewSSEHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}
