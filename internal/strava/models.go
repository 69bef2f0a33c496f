// ABOUTME: Strava API v3 response models used by the client.
// ABOUTME: Field names follow the JSON shapes the API actually returns.
package strava

import "time"

// LatLng is a [latitude, longitude] pair as Strava encodes it. Activities
// without GPS data carry an empty array.
type LatLng []float64

// Valid reports whether the pair holds usable coordinates.
func (ll LatLng) Valid() bool {
	return len(ll) == 2 && (ll[0] != 0 || ll[1] != 0)
}

// Lat returns the latitude, or 0 for an invalid pair.
func (ll LatLng) Lat() float64 {
	if len(ll) == 2 {
		return ll[0]
	}
	return 0
}

// Lng returns the longitude, or 0 for an invalid pair.
func (ll LatLng) Lng() float64 {
	if len(ll) == 2 {
		return ll[1]
	}
	return 0
}

// SummaryActivity is the shape returned by the athlete activities listing.
type SummaryActivity struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	SportType          string   `json:"sport_type"`
	Distance           float64  `json:"distance"`
	MovingTime         int64    `json:"moving_time"`
	ElapsedTime        int64    `json:"elapsed_time"`
	TotalElevationGain float64  `json:"total_elevation_gain"`
	StartDateLocal     string   `json:"start_date_local"`
	StartLatLng        LatLng   `json:"start_latlng"`
	AverageSpeed       float64  `json:"average_speed"`
	MaxSpeed           float64  `json:"max_speed"`
	AverageCadence     *float64 `json:"average_cadence,omitempty"`
	AverageHeartrate   *float64 `json:"average_heartrate,omitempty"`
	MaxHeartrate       *float64 `json:"max_heartrate,omitempty"`
	SufferScore        *float64 `json:"suffer_score,omitempty"`
}

// DetailedActivity is the shape returned by the single-activity endpoint.
type DetailedActivity struct {
	SummaryActivity

	EndLatLng       LatLng   `json:"end_latlng"`
	AverageWatts    *float64 `json:"average_watts,omitempty"`
	KudosCount      *int     `json:"kudos_count,omitempty"`
	Description     string   `json:"description"`
	LocationCity    string   `json:"location_city"`
	LocationState   string   `json:"location_state"`
	LocationCountry string   `json:"location_country"`
}

// StartDate parses the local start timestamp. Strava formats it as RFC 3339
// with a Z suffix even for local time.
func (a *SummaryActivity) StartDate() (time.Time, bool) {
	if a.StartDateLocal == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, a.StartDateLocal)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ActivityTotals is one aggregate bucket in the athlete stats response.
type ActivityTotals struct {
	Count         int     `json:"count"`
	Distance      float64 `json:"distance"`
	MovingTime    int64   `json:"moving_time"`
	ElapsedTime   int64   `json:"elapsed_time"`
	ElevationGain float64 `json:"elevation_gain"`
}

// AthleteStats aggregates ride and run totals over recent, year-to-date and
// all-time windows.
type AthleteStats struct {
	RecentRideTotals *ActivityTotals `json:"recent_ride_totals"`
	RecentRunTotals  *ActivityTotals `json:"recent_run_totals"`
	YTDRideTotals    *ActivityTotals `json:"ytd_ride_totals"`
	YTDRunTotals     *ActivityTotals `json:"ytd_run_totals"`
	AllRideTotals    *ActivityTotals `json:"all_ride_totals"`
	AllRunTotals     *ActivityTotals `json:"all_run_totals"`
}

// Athlete is the minimal slice of the athlete profile the server needs.
type Athlete struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// TokenResponse is the Strava OAuth token endpoint response, shared by the
// refresh flow and the authorization-code exchange.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// UpdateActivityParams carries the updatable activity fields. Nil pointers
// are left untouched on the Strava side.
type UpdateActivityParams struct {
	Name      *string
	SportType *string
}

// SportTypes lists the sport_type values the update tool accepts. Mirrors
// the Strava API enum for the sports this server cares about.
var SportTypes = []string{
	"Ride",
	"MountainBikeRide",
	"EMountainBikeRide",
	"EBikeRide",
	"GravelRide",
	"Run",
	"TrailRun",
	"Walk",
	"Hike",
}

// IsValidSportType reports whether s is an accepted sport_type value.
func IsValidSportType(s string) bool {
	for _, t := range SportTypes {
		if t == s {
			return true
		}
	}
	return false
}
