// Package nvector implements unit-sphere position geodesy.
//
// An NVector is a unit 3-vector on the Earth sphere. The representation
// has no polar singularity and Distance is defined everywhere; Destination
// builds a local east/north frame and is undefined exactly at the poles.
package nvector

import (
	"math"

	"github.com/jvaillant/tinysea-go/quantity"
)

// NVector is a unit vector from the Earth's center to a point on its
// surface. It is not re-normalized after construction from lat/lon;
// Destination preserves the unit norm analytically so repeated stepping
// does not drift.
type NVector struct {
	X, Y, Z float64
}

// FromLatLon builds the n-vector for a given latitude/longitude, both in
// radians.
func FromLatLon(lat, lon quantity.Radian) NVector {
	cosLat := math.Cos(float64(lat))
	return NVector{
		X: cosLat * math.Cos(float64(lon)),
		Y: cosLat * math.Sin(float64(lon)),
		Z: math.Sin(float64(lat)),
	}
}

// ToLatLon recovers latitude and longitude, in radians, from n.
func (n NVector) ToLatLon() (lat, lon quantity.Radian) {
	return quantity.Radian(math.Asin(n.Z)), quantity.Radian(math.Atan2(n.Y, n.X))
}

func dot(a, b NVector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func cross(a, b NVector) NVector {
	return NVector{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func (n NVector) norm() float64 {
	return math.Sqrt(dot(n, n))
}

func scale(n NVector, s float64) NVector {
	return NVector{X: n.X * s, Y: n.Y * s, Z: n.Z * s}
}

func add(a, b NVector) NVector {
	return NVector{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Distance returns the great-circle arc length between a and b on a sphere
// of the given radius, robust at every separation including antipodal
// points.
func Distance(a, b NVector, radius quantity.Meter) quantity.Meter {
	c := cross(a, b)
	return quantity.Meter(float64(radius) * math.Atan2(c.norm(), dot(a, b)))
}

// zAxis is the polar axis used to build the local east direction. At the
// poles that direction vanishes, so Destination is undefined there.
var zAxis = NVector{X: 0, Y: 0, Z: 1}

// Destination returns the point reached by travelling arcLen along bearing
// (clockwise from local north) starting at self, on a sphere of the given
// radius. The result is analytically a unit vector.
func Destination(self NVector, bearing quantity.Radian, arcLen quantity.Meter, radius quantity.Meter) NVector {
	east := cross(zAxis, self)
	east = scale(east, 1/east.norm())
	north := cross(self, east)

	direction := add(scale(north, math.Cos(float64(bearing))), scale(east, math.Sin(float64(bearing))))

	theta := float64(arcLen) / float64(radius)
	return add(scale(self, math.Cos(theta)), scale(direction, math.Sin(theta)))
}
