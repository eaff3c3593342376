package game

import (
	"fmt"
	"math"
)

// effectiveSpeed is the rate the line really moves at with evenly spaced
// frames. A step needs strictly more than 1/speed seconds, so it happens every
// floor(fps/speed)+1 frames.
func effectiveSpeed(fps float64, speed int) float64 {
	if fps <= 0 || speed <= 0 {
		return 0
	}
	frames := math.Floor(fps/float64(speed)) + 1
	return fps / frames
}

// formatStats formats the frame statistics readout, e.g. "144 fps, 60 px/s".
func formatStats(fps float64, speed int) string {
	if fps <= 0 {
		return "-- fps"
	}
	return fmt.Sprintf("%.0f fps, %.0f px/s", fps, effectiveSpeed(fps, speed))
}
