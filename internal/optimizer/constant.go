package optimizer

import "time"

// Log prefixes
const (
	LogPrefixOptimize = "internal.optimizer.Optimize"
)

const (
	// WalkingSpeedMetersPerMinute converts fallback distance into minutes.
	WalkingSpeedMetersPerMinute = 80.0

	DefaultDirectionsTimeout = 10 * time.Second
)
