// ABOUTME: Ordinal effort-level labelling from Strava suffer scores.
// ABOUTME: Also derives coarse ride characteristics used for naming hints.
package classify

// EffortLevel is an ordinal label for how hard an activity was.
type EffortLevel string

const (
	EffortUnknown  EffortLevel = "unknown"
	EffortEasy     EffortLevel = "easy"
	EffortModerate EffortLevel = "moderate"
	EffortHard     EffortLevel = "hard"
	EffortVeryHard EffortLevel = "very_hard"
	EffortExtreme  EffortLevel = "extreme"
)

// EffortLevelFromSufferScore buckets a suffer score into an effort level.
// A nil score yields EffortUnknown.
func EffortLevelFromSufferScore(score *float64) EffortLevel {
	if score == nil {
		return EffortUnknown
	}
	switch s := *score; {
	case s < 50:
		return EffortEasy
	case s < 100:
		return EffortModerate
	case s < 150:
		return EffortHard
	case s < 250:
		return EffortVeryHard
	default:
		return EffortExtreme
	}
}

// Characteristics are coarse ride traits used when suggesting names.
type Characteristics struct {
	IsHilly bool `json:"is_hilly"`
	IsLong  bool `json:"is_long"`
	IsFast  bool `json:"is_fast"`
}

// Cutoffs for ride characteristics.
const (
	hillyElevationPerKm = 30.0    // m of gain per km
	longDistanceMeters  = 20000.0 // 20 km
	fastRunPaceMinKm    = 5.0     // under 5 min/km
	fastRideSpeedKmh    = 25.0    // over 25 km/h
)

// DeriveCharacteristics computes coarse traits from distance (m), elevation
// gain (m), moving time (s) and the activity type string.
func DeriveCharacteristics(activityType string, distanceMeters, elevationGain float64, movingTimeSeconds int64) Characteristics {
	c := Characteristics{
		IsHilly: ElevationPerKm(distanceMeters, elevationGain) > hillyElevationPerKm,
		IsLong:  distanceMeters > longDistanceMeters,
	}

	speed := speedKmh(distanceMeters, movingTimeSeconds)
	pace := PaceMinPerKm(distanceMeters, movingTimeSeconds)

	switch {
	case isRunKind(activityType) && pace > 0 && pace < fastRunPaceMinKm:
		c.IsFast = true
	case isRideKind(activityType) && speed > fastRideSpeedKmh:
		c.IsFast = true
	}
	return c
}

// ElevationPerKm returns meters of elevation gain per kilometer, or 0 when
// the distance is zero.
func ElevationPerKm(distanceMeters, elevationGain float64) float64 {
	if distanceMeters <= 0 {
		return 0
	}
	return elevationGain / (distanceMeters / 1000)
}

// PaceMinPerKm returns minutes per kilometer, or 0 when the distance is
// zero.
func PaceMinPerKm(distanceMeters float64, movingTimeSeconds int64) float64 {
	if distanceMeters <= 0 {
		return 0
	}
	return (float64(movingTimeSeconds) / 60) / (distanceMeters / 1000)
}

// SpeedKmh returns kilometers per hour, or 0 when the moving time is zero.
func SpeedKmh(distanceMeters float64, movingTimeSeconds int64) float64 {
	return speedKmh(distanceMeters, movingTimeSeconds)
}

func isRunKind(activityType string) bool {
	switch activityType {
	case "Run", "TrailRun", "Walk", "Hike":
		return true
	}
	return false
}

func isRideKind(activityType string) bool {
	switch activityType {
	case "Ride", "MountainBikeRide", "GravelRide", "EBikeRide", "EMountainBikeRide", "VirtualRide":
		return true
	}
	return false
}
