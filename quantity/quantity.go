// Package quantity names the physical quantities the planner works with.
//
// These are plain float64 under the hood — the spec this module follows
// explicitly allows "plain floats with naming conventions" in place of a
// dimension-checked algebra library, and that is the choice made here.
// The named types exist only to keep call sites self-documenting and to
// stop a latitude from being passed where a bearing is expected.
package quantity

import "math"

// Radian is a plane or spherical angle.
type Radian float64

// Meter is a great-circle distance on the Earth sphere.
type Meter float64

// MetersPerSecond is a velocity, boat or wind.
type MetersPerSecond float64

// Second is a duration since some implicit epoch.
type Second float64

// Cost is the planner's notion of accumulated travel time, in seconds.
type Cost float64

// EarthRadius is the sphere radius used throughout the geodesy and
// discretization code.
const EarthRadius Meter = 6371e3

// TwoPi is held as a constant so callers don't reach for 2*math.Pi.
const TwoPi Radian = 2 * math.Pi

// DegToRad converts a degree quantity to radians.
func DegToRad(deg float64) Radian {
	return Radian(deg * math.Pi / 180.0)
}

// RadToDeg converts a radian quantity to degrees.
func RadToDeg(rad Radian) float64 {
	return float64(rad) * 180.0 / math.Pi
}

// KnotsToMetersPerSecond converts a knot speed to m/s.
func KnotsToMetersPerSecond(kt float64) MetersPerSecond {
	return MetersPerSecond(kt * 0.5144444444444)
}

// MetersPerSecondToKnots converts an m/s speed to knots.
func MetersPerSecondToKnots(ms MetersPerSecond) float64 {
	return float64(ms) * 1.9438444924406
}

// NormalizeRadian wraps a into [0, 2π). Most of this codebase deliberately
// leaves angles unnormalized; use this only where the spec calls for it
// (bearing storage on a polar curve, not heading composition).
func NormalizeRadian(a Radian) Radian {
	r := math.Mod(float64(a), float64(TwoPi))
	if r < 0 {
		r += float64(TwoPi)
	}
	return Radian(r)
}

// SignedAngularDelta returns the shortest signed distance from a to b, in
// [-π, π), so that b = a + SignedAngularDelta(a, b) takes the short way
// around the circle. Used by the wind-bearing interpolator.
func SignedAngularDelta(a, b Radian) Radian {
	d := math.Mod(float64(b-a)+math.Pi, float64(TwoPi))
	if d < 0 {
		d += float64(TwoPi)
	}
	return Radian(d - math.Pi)
}
