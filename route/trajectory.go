package route

import (
	"time"

	"github.com/jvaillant/tinysea-go/gsp"
	"github.com/jvaillant/tinysea-go/nvector"
	"github.com/jvaillant/tinysea-go/quantity"
)

// Reconstruct walks final's ParentKey chain backwards through close,
// accumulating one point per state, then reverses the result so it runs
// start-to-goal. epoch is the wall-clock instant corresponding to
// quantity.Second(0), i.e. the request's StartTime.
func Reconstruct(final *gsp.State, close *gsp.CloseList, epoch time.Time) []Point {
	var rev []Point
	s := final
	for {
		lat, lon := s.Position.ToLatLon()
		rev = append(rev, Point{
			Lat:  quantity.RadToDeg(lat),
			Lon:  quantity.RadToDeg(lon),
			Time: epoch.Add(time.Duration(float64(s.Time) * float64(time.Second))),
		})
		if !s.HasParent {
			break
		}
		parent, found := close.Get(s.ParentKey)
		if !found {
			break
		}
		s = parent
	}

	points := make([]Point, len(rev))
	for i, p := range rev {
		points[len(rev)-1-i] = p
	}
	return points
}

// toNVector converts a wire LatLon (degrees) into the core's internal
// representation.
func toNVector(ll LatLon) nvector.NVector {
	return nvector.FromLatLon(quantity.DegToRad(ll.Lat), quantity.DegToRad(ll.Lon))
}
