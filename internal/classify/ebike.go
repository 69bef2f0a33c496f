// ABOUTME: Heuristic detection of mountain-bike rides that were likely
// ABOUTME: ridden on an e-bike, based on cadence and effort-per-climb ratios.
package classify

import "fmt"

// EbikeThresholds are the tunable cutoffs for e-bike suspicion. The values
// are heuristic; the defaults reproduce observed behavior and are exposed so
// callers can widen or narrow the detection.
type EbikeThresholds struct {
	// EffortRatio is the suffer-score-per-100m-of-climb cutoff. A ratio
	// below it on a significant climb suggests assisted riding.
	EffortRatio float64

	// MinElevation is the minimum elevation gain in meters for the effort
	// ratio to be meaningful.
	MinElevation float64

	// MinMovingTime is the minimum moving time in seconds; shorter rides
	// carry too little signal to classify.
	MinMovingTime int64
}

// DefaultEbikeThresholds returns the standard cutoffs.
func DefaultEbikeThresholds() EbikeThresholds {
	return EbikeThresholds{
		EffortRatio:   4.5,
		MinElevation:  200,
		MinMovingTime: 600,
	}
}

// RideMetrics are the activity fields the detector reads. Pointer fields
// are nil when the activity carries no such data.
type RideMetrics struct {
	SportType         string
	DistanceMeters    float64
	MovingTimeSeconds int64
	ElevationGain     float64
	AverageCadence    *float64
	AverageHeartrate  *float64
	AverageWatts      *float64
	SufferScore       *float64
}

// Suspicion is the detector verdict plus the metrics that produced it.
type Suspicion struct {
	Suspicious  bool     `json:"suspicious"`
	Reasons     []string `json:"reasons,omitempty"`
	SpeedKmh    float64  `json:"speed_kmh"`
	EffortRatio *float64 `json:"effort_ratio,omitempty"`
}

// IsMountainBike reports whether sportType is an unassisted mountain-bike
// ride. Electric variants (EMountainBikeRide, EBikeRide) are not eligible
// for detection: they are already classified.
func IsMountainBike(sportType string) bool {
	return sportType == "MountainBikeRide"
}

// DetectEbike classifies a ride as possibly e-bike. Only unassisted
// mountain-bike rides are ever flagged; every other kind returns a
// non-suspicious verdict regardless of metrics.
//
// Signals, in order of reliability:
//  1. Cadence data present. E-bikes ship with cadence sensors, regular
//     MTBs usually don't. This is the wide fallback criterion used when
//     heart-rate or suffer-score data is missing.
//  2. Low effort for the climb: suffer score per 100 m of elevation gain
//     below the threshold on a ride with significant climbing.
//
// The function is pure: same metrics, same verdict.
func DetectEbike(m RideMetrics, t EbikeThresholds) Suspicion {
	s := Suspicion{SpeedKmh: speedKmh(m.DistanceMeters, m.MovingTimeSeconds)}

	if !IsMountainBike(m.SportType) {
		return s
	}
	if m.MovingTimeSeconds < t.MinMovingTime {
		return s
	}

	if m.ElevationGain > 100 && m.SufferScore != nil {
		ratio := *m.SufferScore / (m.ElevationGain / 100)
		s.EffortRatio = &ratio
	}

	if m.AverageCadence != nil && *m.AverageCadence > 0 {
		s.Suspicious = true
		s.Reasons = append(s.Reasons,
			fmt.Sprintf("cadence data present (%.0f rpm), typical of an e-bike sensor", *m.AverageCadence))
	}

	if m.ElevationGain >= t.MinElevation && s.EffortRatio != nil && *s.EffortRatio < t.EffortRatio {
		s.Suspicious = true
		s.Reasons = append(s.Reasons,
			fmt.Sprintf("low effort for the climbing (ratio %.1f below %.1f)", *s.EffortRatio, t.EffortRatio))
	}

	return s
}

func speedKmh(distanceMeters float64, movingTimeSeconds int64) float64 {
	if movingTimeSeconds <= 0 {
		return 0
	}
	return (distanceMeters / 1000) / (float64(movingTimeSeconds) / 3600)
}
