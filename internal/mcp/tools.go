// ABOUTME: MCP tool implementations for the Strava tool surface.
// ABOUTME: Thin handlers: validate input, call the API adapter, shape JSON.
package mcp

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rousseya/strava-mcp-server/internal/classify"
	"github.com/rousseya/strava-mcp-server/internal/geocode"
	"github.com/rousseya/strava-mcp-server/internal/logging"
	"github.com/rousseya/strava-mcp-server/internal/strava"
)

func (s *Server) registerTools() {
	// get_activities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activities",
		Description: "Get the latest Strava activities with id, name, type, distance, time, elevation, and date",
	}, s.handleGetActivities)

	// get_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity",
		Description: "Get detailed information about a specific Strava activity, including speed, heartrate, suffer score, and kudos",
	}, s.handleGetActivity)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get athlete statistics: recent, year-to-date, and all-time totals for rides and runs",
	}, s.handleGetStats)

	// detect_generic_named_activities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "detect_generic_named_activities",
		Description: "Detect activities with generic auto-generated names (e.g. 'Morning Run', 'Trail le midi') that should be renamed, with location and effort data to help suggest better names",
	}, s.handleDetectGenericNames)

	// get_activity_details_for_naming
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity_details_for_naming",
		Description: "Get comprehensive activity details (location, effort, terrain, performance) to help suggest a meaningful name",
	}, s.handleActivityDetailsForNaming)

	// rename_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "rename_activity",
		Description: "Rename a Strava activity with a new custom name",
	}, s.handleRenameActivity)

	// detect_ebike_activities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "detect_ebike_activities",
		Description: "Detect mountain bike activities that are likely e-bike rides based on cadence and effort analysis",
	}, s.handleDetectEbike)

	// fix_ebike_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fix_ebike_activity",
		Description: "Fix a mountain bike activity incorrectly categorized as MountainBikeRide instead of EMountainBikeRide",
	}, s.handleFixEbike)

	// update_activity_type
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_activity_type",
		Description: "Update the sport type of a Strava activity (Ride, MountainBikeRide, EMountainBikeRide, Run, TrailRun, Walk, Hike, ...)",
	}, s.handleUpdateActivityType)
}

// Tool input/output types

type getActivitiesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of activities to return (default 30)"`
}

type activitySummaryOutput struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	SportType      string  `json:"sport_type,omitempty"`
	Distance       float64 `json:"distance"`
	MovingTime     int64   `json:"moving_time"`
	ElapsedTime    int64   `json:"elapsed_time"`
	ElevationGain  float64 `json:"elevation_gain"`
	StartDateLocal string  `json:"start_date_local,omitempty"`
}

type getActivityInput struct {
	ActivityID int64 `json:"activity_id" jsonschema:"The Strava activity ID"`
}

type activityDetailOutput struct {
	activitySummaryOutput

	AverageSpeed     float64  `json:"average_speed"`
	MaxSpeed         float64  `json:"max_speed"`
	AverageHeartrate *float64 `json:"average_heartrate"`
	MaxHeartrate     *float64 `json:"max_heartrate"`
	SufferScore      *float64 `json:"suffer_score"`
	KudosCount       *int     `json:"kudos_count"`
}

type totalsOutput struct {
	Count         int     `json:"count"`
	Distance      float64 `json:"distance"`
	MovingTime    int64   `json:"moving_time"`
	ElapsedTime   int64   `json:"elapsed_time"`
	ElevationGain float64 `json:"elevation_gain"`
}

type statsOutput struct {
	RecentRideTotals *totalsOutput `json:"recent_ride_totals"`
	RecentRunTotals  *totalsOutput `json:"recent_run_totals"`
	YTDRideTotals    *totalsOutput `json:"ytd_ride_totals"`
	YTDRunTotals     *totalsOutput `json:"ytd_run_totals"`
	AllRideTotals    *totalsOutput `json:"all_ride_totals"`
	AllRunTotals     *totalsOutput `json:"all_run_totals"`
}

type getStatsInput struct{}

type detectGenericInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of activities to scan (default 50)"`
}

type genericActivityOutput struct {
	ID            int64     `json:"id"`
	CurrentName   string    `json:"current_name"`
	Type          string    `json:"type"`
	SportType     string    `json:"sport_type,omitempty"`
	Date          string    `json:"date,omitempty"`
	Location      string    `json:"location"`
	Coordinates   []float64 `json:"coordinates,omitempty"`
	DistanceKm    float64   `json:"distance_km"`
	ElevationGain float64   `json:"elevation_gain"`
	MovingTimeMin float64   `json:"moving_time_min"`
	SufferScore   *float64  `json:"suffer_score"`
	Suggestion    string    `json:"suggestion"`
}

type renameActivityInput struct {
	ActivityID int64  `json:"activity_id" jsonschema:"The Strava activity ID to rename"`
	NewName    string `json:"new_name" jsonschema:"The new name for the activity"`
}

type updateOutput struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	SportType      string  `json:"sport_type,omitempty"`
	DistanceKm     float64 `json:"distance_km"`
	MovingTime     int64   `json:"moving_time"`
	StartDateLocal string  `json:"start_date_local,omitempty"`
	Message        string  `json:"message"`
}

type detectEbikeInput struct {
	Limit                int     `json:"limit,omitempty" jsonschema:"Maximum number of activities to analyze (default 30)"`
	EffortRatioThreshold float64 `json:"effort_ratio_threshold,omitempty" jsonschema:"Effort ratio below this is suspicious (default 4.5)"`
	MinElevation         float64 `json:"min_elevation,omitempty" jsonschema:"Minimum elevation gain in meters to consider (default 200)"`
}

type ebikeSuspectOutput struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Date           string   `json:"date,omitempty"`
	Type           string   `json:"type"`
	SportType      string   `json:"sport_type,omitempty"`
	DistanceKm     float64  `json:"distance_km"`
	ElevationGain  float64  `json:"elevation_gain"`
	MovingTimeMin  float64  `json:"moving_time_min"`
	SpeedKmh       float64  `json:"speed_kmh"`
	AverageCadence *float64 `json:"average_cadence"`
	SufferScore    *float64 `json:"suffer_score"`
	EffortRatio    *float64 `json:"effort_ratio"`
	AverageHR      *float64 `json:"average_hr"`
	AverageWatts   *float64 `json:"average_watts"`
	Reasons        []string `json:"reasons"`
	Recommendation string   `json:"recommendation"`
}

type fixEbikeInput struct {
	ActivityID int64 `json:"activity_id" jsonschema:"The Strava activity ID to fix"`
}

type updateActivityTypeInput struct {
	ActivityID int64  `json:"activity_id" jsonschema:"The Strava activity ID to update"`
	SportType  string `json:"sport_type" jsonschema:"New sport type: Ride, MountainBikeRide, EMountainBikeRide, EBikeRide, GravelRide, Run, TrailRun, Walk, or Hike"`
}

type namingLocationOutput struct {
	Name             string    `json:"name"`
	City             *string   `json:"city"`
	State            *string   `json:"state"`
	Country          *string   `json:"country"`
	Suburb           *string   `json:"suburb"`
	County           *string   `json:"county"`
	FullAddress      *string   `json:"full_address"`
	StartCoordinates []float64 `json:"start_coordinates,omitempty"`
	EndCoordinates   []float64 `json:"end_coordinates,omitempty"`
}

type namingMetricsOutput struct {
	DistanceKm      float64 `json:"distance_km"`
	ElevationGainM  float64 `json:"elevation_gain_m"`
	ElevationPerKm  float64 `json:"elevation_per_km"`
	MovingTimeMin   float64 `json:"moving_time_min"`
	ElapsedTimeMin  float64 `json:"elapsed_time_min"`
	AverageSpeedKmh float64 `json:"average_speed_kmh"`
	PaceMinPerKm    float64 `json:"pace_min_per_km"`
}

type namingEffortOutput struct {
	SufferScore      *float64             `json:"suffer_score"`
	EffortLevel      classify.EffortLevel `json:"effort_level"`
	AverageHeartrate *float64             `json:"average_heartrate"`
	MaxHeartrate     *float64             `json:"max_heartrate"`
}

type namingHintsOutput struct {
	UseLocation      bool `json:"use_location"`
	MentionElevation bool `json:"mention_elevation"`
	MentionDistance  bool `json:"mention_distance"`
	MentionEffort    bool `json:"mention_effort"`
}

type namingDetailsOutput struct {
	ID              int64                    `json:"id"`
	CurrentName     string                   `json:"current_name"`
	Type            string                   `json:"type"`
	SportType       string                   `json:"sport_type,omitempty"`
	Date            string                   `json:"date,omitempty"`
	Location        namingLocationOutput     `json:"location"`
	Metrics         namingMetricsOutput      `json:"metrics"`
	Effort          namingEffortOutput       `json:"effort"`
	Characteristics classify.Characteristics `json:"characteristics"`
	NamingHints     namingHintsOutput        `json:"naming_hints"`
	Description     string                   `json:"description,omitempty"`
}

// Tool handlers

func (s *Server) handleGetActivities(ctx context.Context, req *mcp.CallToolRequest, input getActivitiesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 30
	}

	activities, err := s.api.ListActivities(ctx, input.Limit)
	if err != nil {
		return nil, nil, err
	}

	out := make([]activitySummaryOutput, 0, len(activities))
	for i := range activities {
		out = append(out, summaryOutput(&activities[i]))
	}

	logging.Info("tool completed", "tool", "get_activities", "count", len(out))
	return nil, out, nil
}

func (s *Server) handleGetActivity(ctx context.Context, req *mcp.CallToolRequest, input getActivityInput) (*mcp.CallToolResult, activityDetailOutput, error) {
	if err := validateActivityID(input.ActivityID); err != nil {
		return nil, activityDetailOutput{}, err
	}

	activity, err := s.api.GetActivity(ctx, input.ActivityID)
	if err != nil {
		return nil, activityDetailOutput{}, err
	}

	return nil, activityDetailOutput{
		activitySummaryOutput: summaryOutput(&activity.SummaryActivity),
		AverageSpeed:          activity.AverageSpeed,
		MaxSpeed:              activity.MaxSpeed,
		AverageHeartrate:      activity.AverageHeartrate,
		MaxHeartrate:          activity.MaxHeartrate,
		SufferScore:           activity.SufferScore,
		KudosCount:            activity.KudosCount,
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input getStatsInput) (*mcp.CallToolResult, statsOutput, error) {
	stats, err := s.api.GetAthleteStats(ctx)
	if err != nil {
		return nil, statsOutput{}, err
	}

	return nil, statsOutput{
		RecentRideTotals: totalsOut(stats.RecentRideTotals),
		RecentRunTotals:  totalsOut(stats.RecentRunTotals),
		YTDRideTotals:    totalsOut(stats.YTDRideTotals),
		YTDRunTotals:     totalsOut(stats.YTDRunTotals),
		AllRideTotals:    totalsOut(stats.AllRideTotals),
		AllRunTotals:     totalsOut(stats.AllRunTotals),
	}, nil
}

func (s *Server) handleDetectGenericNames(ctx context.Context, req *mcp.CallToolRequest, input detectGenericInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 50
	}

	activities, err := s.api.ListActivities(ctx, input.Limit)
	if err != nil {
		return nil, nil, err
	}

	generic := make([]genericActivityOutput, 0)
	for i := range activities {
		a := &activities[i]
		if !classify.IsGenericName(a.Name) {
			continue
		}

		// Detail fetch for the suffer score and Strava's own location fields.
		detail, err := s.api.GetActivity(ctx, a.ID)
		if err != nil {
			logging.Warn("skipping activity detail", "id", a.ID, "error", err)
			continue
		}

		city, state, country, _ := s.resolveLocation(ctx, detail)

		out := genericActivityOutput{
			ID:            a.ID,
			CurrentName:   a.Name,
			Type:          a.Type,
			SportType:     a.SportType,
			Date:          a.StartDateLocal,
			Location:      locationLabel(city, state, country),
			DistanceKm:    round1(a.Distance / 1000),
			ElevationGain: math.Round(a.TotalElevationGain),
			MovingTimeMin: math.Round(float64(a.MovingTime) / 60),
			SufferScore:   detail.SufferScore,
			Suggestion:    "Use the suggest_activity_name prompt to generate a better name",
		}
		if a.StartLatLng.Valid() {
			out.Coordinates = []float64{a.StartLatLng.Lat(), a.StartLatLng.Lng()}
		}
		generic = append(generic, out)
	}

	logging.Info("tool completed", "tool", "detect_generic_named_activities", "scanned", len(activities), "flagged", len(generic))
	return nil, generic, nil
}

func (s *Server) handleActivityDetailsForNaming(ctx context.Context, req *mcp.CallToolRequest, input getActivityInput) (*mcp.CallToolResult, namingDetailsOutput, error) {
	if err := validateActivityID(input.ActivityID); err != nil {
		return nil, namingDetailsOutput{}, err
	}

	activity, err := s.api.GetActivity(ctx, input.ActivityID)
	if err != nil {
		return nil, namingDetailsOutput{}, err
	}

	city, state, country, loc := s.resolveLocation(ctx, activity)

	distance := activity.Distance
	elevation := activity.TotalElevationGain
	movingTime := activity.MovingTime

	out := namingDetailsOutput{
		ID:          activity.ID,
		CurrentName: activity.Name,
		Type:        activity.Type,
		SportType:   activity.SportType,
		Date:        activity.StartDateLocal,
		Location: namingLocationOutput{
			Name:        locationLabel(city, state, country),
			City:        ptrOrNil(city),
			State:       ptrOrNil(state),
			Country:     ptrOrNil(country),
			Suburb:      locField(loc, func(l *geocode.Location) string { return l.Suburb }),
			County:      locField(loc, func(l *geocode.Location) string { return l.County }),
			FullAddress: locField(loc, func(l *geocode.Location) string { return l.FullAddress }),
		},
		Metrics: namingMetricsOutput{
			DistanceKm:      round2(distance / 1000),
			ElevationGainM:  math.Round(elevation),
			ElevationPerKm:  round1(classify.ElevationPerKm(distance, elevation)),
			MovingTimeMin:   math.Round(float64(movingTime) / 60),
			ElapsedTimeMin:  math.Round(float64(activity.ElapsedTime) / 60),
			AverageSpeedKmh: round1(classify.SpeedKmh(distance, movingTime)),
			PaceMinPerKm:    round2(classify.PaceMinPerKm(distance, movingTime)),
		},
		Effort: namingEffortOutput{
			SufferScore:      activity.SufferScore,
			EffortLevel:      classify.EffortLevelFromSufferScore(activity.SufferScore),
			AverageHeartrate: activity.AverageHeartrate,
			MaxHeartrate:     activity.MaxHeartrate,
		},
		Characteristics: classify.DeriveCharacteristics(activity.Type, distance, elevation, movingTime),
		Description:     activity.Description,
	}

	if activity.StartLatLng.Valid() {
		out.Location.StartCoordinates = []float64{activity.StartLatLng.Lat(), activity.StartLatLng.Lng()}
	}
	if activity.EndLatLng.Valid() {
		out.Location.EndCoordinates = []float64{activity.EndLatLng.Lat(), activity.EndLatLng.Lng()}
	}

	out.NamingHints = namingHintsOutput{
		UseLocation:      out.Location.Name != "",
		MentionElevation: elevation > 300,
		MentionDistance:  out.Characteristics.IsLong,
		MentionEffort:    activity.SufferScore != nil && *activity.SufferScore > 100,
	}

	return nil, out, nil
}

func (s *Server) handleRenameActivity(ctx context.Context, req *mcp.CallToolRequest, input renameActivityInput) (*mcp.CallToolResult, updateOutput, error) {
	if err := validateActivityID(input.ActivityID); err != nil {
		return nil, updateOutput{}, err
	}
	name := strings.TrimSpace(input.NewName)
	if name == "" {
		return nil, updateOutput{}, fmt.Errorf("new_name must be a non-empty string")
	}

	updated, err := s.api.UpdateActivity(ctx, input.ActivityID, strava.UpdateActivityParams{Name: &name})
	if err != nil {
		return nil, updateOutput{}, err
	}

	out := updateOut(updated)
	out.Message = fmt.Sprintf("Activity successfully renamed to %q", updated.Name)
	logging.Info("tool completed", "tool", "rename_activity", "id", input.ActivityID)
	return nil, out, nil
}

func (s *Server) handleDetectEbike(ctx context.Context, req *mcp.CallToolRequest, input detectEbikeInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 30
	}

	thresholds := s.ebike
	if input.EffortRatioThreshold > 0 {
		thresholds.EffortRatio = input.EffortRatioThreshold
	}
	if input.MinElevation > 0 {
		thresholds.MinElevation = input.MinElevation
	}

	activities, err := s.api.ListActivities(ctx, input.Limit)
	if err != nil {
		return nil, nil, err
	}

	suspects := make([]ebikeSuspectOutput, 0)
	for i := range activities {
		a := &activities[i]
		if !classify.IsMountainBike(a.SportType) {
			continue
		}
		if a.MovingTime < thresholds.MinMovingTime {
			continue
		}

		// Detail fetch for cadence, suffer score and power.
		detail, err := s.api.GetActivity(ctx, a.ID)
		if err != nil {
			logging.Warn("skipping activity detail", "id", a.ID, "error", err)
			continue
		}

		suspicion := classify.DetectEbike(classify.RideMetrics{
			SportType:         a.SportType,
			DistanceMeters:    a.Distance,
			MovingTimeSeconds: a.MovingTime,
			ElevationGain:     a.TotalElevationGain,
			AverageCadence:    detail.AverageCadence,
			AverageHeartrate:  detail.AverageHeartrate,
			AverageWatts:      detail.AverageWatts,
			SufferScore:       detail.SufferScore,
		}, thresholds)

		if !suspicion.Suspicious {
			continue
		}

		suspects = append(suspects, ebikeSuspectOutput{
			ID:             a.ID,
			Name:           a.Name,
			Date:           a.StartDateLocal,
			Type:           a.Type,
			SportType:      a.SportType,
			DistanceKm:     round1(a.Distance / 1000),
			ElevationGain:  math.Round(a.TotalElevationGain),
			MovingTimeMin:  math.Round(float64(a.MovingTime) / 60),
			SpeedKmh:       round1(suspicion.SpeedKmh),
			AverageCadence: detail.AverageCadence,
			SufferScore:    detail.SufferScore,
			EffortRatio:    suspicion.EffortRatio,
			AverageHR:      detail.AverageHeartrate,
			AverageWatts:   detail.AverageWatts,
			Reasons:        suspicion.Reasons,
			Recommendation: "Probably an E-MTB ride: use fix_ebike_activity to recategorize",
		})
	}

	logging.Info("tool completed", "tool", "detect_ebike_activities", "scanned", len(activities), "flagged", len(suspects))
	return nil, suspects, nil
}

func (s *Server) handleFixEbike(ctx context.Context, req *mcp.CallToolRequest, input fixEbikeInput) (*mcp.CallToolResult, updateOutput, error) {
	if err := validateActivityID(input.ActivityID); err != nil {
		return nil, updateOutput{}, err
	}

	sportType := "EMountainBikeRide"
	updated, err := s.api.UpdateActivity(ctx, input.ActivityID, strava.UpdateActivityParams{SportType: &sportType})
	if err != nil {
		return nil, updateOutput{}, err
	}

	out := updateOut(updated)
	out.Message = "Activity successfully updated to E-Mountain Bike"
	logging.Info("tool completed", "tool", "fix_ebike_activity", "id", input.ActivityID)
	return nil, out, nil
}

func (s *Server) handleUpdateActivityType(ctx context.Context, req *mcp.CallToolRequest, input updateActivityTypeInput) (*mcp.CallToolResult, updateOutput, error) {
	if err := validateActivityID(input.ActivityID); err != nil {
		return nil, updateOutput{}, err
	}
	if !strava.IsValidSportType(input.SportType) {
		return nil, updateOutput{}, fmt.Errorf("unknown sport type: %q (valid: %s)", input.SportType, strings.Join(strava.SportTypes, ", "))
	}

	updated, err := s.api.UpdateActivity(ctx, input.ActivityID, strava.UpdateActivityParams{SportType: &input.SportType})
	if err != nil {
		return nil, updateOutput{}, err
	}

	out := updateOut(updated)
	out.Message = fmt.Sprintf("Activity successfully updated to %s", input.SportType)
	logging.Info("tool completed", "tool", "update_activity_type", "id", input.ActivityID, "sport_type", input.SportType)
	return nil, out, nil
}

// Shaping helpers

func summaryOutput(a *strava.SummaryActivity) activitySummaryOutput {
	return activitySummaryOutput{
		ID:             a.ID,
		Name:           a.Name,
		Type:           a.Type,
		SportType:      a.SportType,
		Distance:       a.Distance,
		MovingTime:     a.MovingTime,
		ElapsedTime:    a.ElapsedTime,
		ElevationGain:  a.TotalElevationGain,
		StartDateLocal: a.StartDateLocal,
	}
}

func totalsOut(t *strava.ActivityTotals) *totalsOutput {
	if t == nil {
		return nil
	}
	return &totalsOutput{
		Count:         t.Count,
		Distance:      t.Distance,
		MovingTime:    t.MovingTime,
		ElapsedTime:   t.ElapsedTime,
		ElevationGain: t.ElevationGain,
	}
}

func updateOut(a *strava.DetailedActivity) updateOutput {
	return updateOutput{
		ID:             a.ID,
		Name:           a.Name,
		Type:           a.Type,
		SportType:      a.SportType,
		DistanceKm:     round1(a.Distance / 1000),
		MovingTime:     a.MovingTime,
		StartDateLocal: a.StartDateLocal,
	}
}

// resolveLocation combines Strava's own location fields with reverse
// geocoding of the start coordinates. Geocoding failure and missing
// coordinates both degrade to empty fields, never an error.
func (s *Server) resolveLocation(ctx context.Context, a *strava.DetailedActivity) (city, state, country string, loc *geocode.Location) {
	city = a.LocationCity
	state = a.LocationState
	country = a.LocationCountry

	if city == "" && a.StartLatLng.Valid() && s.geocoder != nil {
		loc = s.geocoder.Reverse(ctx, a.StartLatLng.Lat(), a.StartLatLng.Lng())
		if loc != nil {
			city = loc.City
			if state == "" {
				state = loc.State
			}
			if country == "" {
				country = loc.Country
			}
		}
	}
	return city, state, country, loc
}

func locationLabel(city, state, country string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{city, state, country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func validateActivityID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("activity_id must be a positive integer, got %d", id)
	}
	return nil
}

func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func locField(loc *geocode.Location, get func(*geocode.Location) string) *string {
	if loc == nil {
		return nil
	}
	return ptrOrNil(get(loc))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
