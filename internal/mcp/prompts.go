// ABOUTME: MCP prompt for suggesting creative Strava activity names.
// ABOUTME: Guides the assistant through the detect/detail/rename tool flow.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "suggest_activity_name",
		Description: "Suggest a creative, memorable name for a Strava activity based on its location, effort and terrain",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "activity_type",
				Description: "Type of activity (Run, TrailRun, Ride, MountainBikeRide, Hike, Walk)",
				Required:    false,
			},
			{
				Name:        "location",
				Description: "Geographic place (city, region, mountain, park)",
				Required:    false,
			},
		},
	}, s.suggestActivityNamePrompt)
}

func (s *Server) suggestActivityNamePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	activityType := "any"
	location := "unknown"
	if req.Params.Arguments != nil {
		if t, ok := req.Params.Arguments["activity_type"]; ok && t != "" {
			activityType = t
		}
		if l, ok := req.Params.Arguments["location"]; ok && l != "" {
			location = l
		}
	}

	promptText := fmt.Sprintf(`You are helping rename Strava activities (%s, around %s). Suggest a short, memorable name.

Criteria for a good name:

1. Location: use the city, region or a landmark.
   Examples: "Les crêtes du Vercors", "Boucle autour du lac d'Annecy", "Trail des Calanques"
2. Terrain: mention forest, mountain, coast or urban character.
   Examples: "Escapade en forêt de Fontainebleau", "Montée vers le Col du Galibier"
3. Effort: for intense outings use "Challenge", "Sprint", "Tempo"; for long ones
   "Exploration", "Grande boucle", "Traversée"; for easy ones "Balade", "Récupération".
4. Memorable elements: big climbs ("Ascension de 1000m+"), notable distance ("Century ride").

Workflow:

1. Call detect_generic_named_activities to find activities worth renaming.
2. Call get_activity_details_for_naming for each candidate.
3. Propose 2-3 name suggestions, from descriptive to creative.
4. Ask for confirmation, then call rename_activity.

Keep names short (3-6 words) and evocative. Avoid generic names like
"Morning Run" or "Sortie vélo".`, activityType, location)

	return &mcp.GetPromptResult{
		Description: "Activity naming guidance",
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: promptText},
			},
		},
	}, nil
}
