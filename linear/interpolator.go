package linear

import "github.com/jvaillant/tinysea-go/quantity"

// Interp blends two values a and b at fraction t in [0,1]. Implementations
// are pure functions; List and Grid hold one as a field.
type Interp[V any] func(a, b V, t float64) V

// NumericInterp linearly interpolates any float64-based numeric value.
func NumericInterp(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// NullInterp always returns a, pinning selection to the floor cell. Used
// for the time axis (pick the grid in effect) and penalty tables that are
// not meant to be smoothed.
func NullInterp[V any](a, b V, _ float64) V {
	return a
}

// BearingSample is a (bearing, speed) pair sampled from a wind grid. The
// bearing interpolates the short way around the circle; the speed
// interpolates linearly.
type BearingSample struct {
	Bearing quantity.Radian
	Speed   quantity.MetersPerSecond
}

// WindInterp interpolates BearingSample values so that bearing always
// takes the short way around, and is not renormalized into [0, 2pi).
func WindInterp(a, b BearingSample, t float64) BearingSample {
	delta := quantity.SignedAngularDelta(a.Bearing, b.Bearing)
	return BearingSample{
		Bearing: a.Bearing + quantity.Radian(float64(delta)*t),
		Speed:   quantity.MetersPerSecond(NumericInterp(float64(a.Speed), float64(b.Speed), t)),
	}
}
