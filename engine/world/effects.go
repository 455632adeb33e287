package world

import (
	"math"

	"github.com/Carmen-Shannon/oxy-grass/common"
)

// Screen effect tuning.
const (
	IntroFadeDuration = 2000.0 // ms

	MaxGlare   = 0.25          // max glare effect amount
	GlareRange = 1.1           // angular range of effect
	GlareYaw   = math.Pi * 1.5 // yaw when looking directly at the sun
	GlarePitch = 0.2           // pitch when looking at the sun
)

// Fade computes the intro overlay for a tick that starts at simT and advances by dt.
// It is only meaningful while simT < IntroFadeDuration.
//
// Parameters:
//   - simT: simulated time before the tick, in ms
//   - dt: the tick length, in ms
//
// Returns:
//   - float64: the overlay opacity
//   - bool: whether the overlay remains visible
func Fade(simT, dt float64) (float64, bool) {
	if simT+dt >= IntroFadeDuration {
		return 0, false
	}
	r := simT / IntroFadeDuration
	return 1 - r*r, true
}

// Glare computes the sun glare from the camera's yaw and pitch. When the sun is outside
// GlareRange the overlay is hidden and the opacity is meaningless.
//
// Parameters:
//   - yaw: camera yaw in radians
//   - pitch: camera pitch in radians, positive up
//
// Returns:
//   - float64: the glare opacity in [0, MaxGlare]
//   - bool: whether the glare overlay is visible
func Glare(yaw, pitch float64) (float64, bool) {
	dy := math.Abs(common.DifAngle(GlareYaw, yaw))
	dp := math.Abs(common.DifAngle(GlarePitch, pitch)) * 1.375
	d := math.Sqrt(dy*dy + dp*dp)
	if d >= GlareRange {
		return 0, false
	}
	g := MaxGlare * math.Pow((GlareRange-d)/(1+MaxGlare), 0.75)
	return math.Max(0, g), true
}
