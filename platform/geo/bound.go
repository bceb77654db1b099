package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// metersPerDegree approximates one degree of latitude on the WGS84 sphere.
const metersPerDegree = 111320.0

// BoundAround returns a geographic bounding box extending radiusM meters
// around p in each direction. The longitude span widens with latitude.
func BoundAround(p orb.Point, radiusM float64) orb.Bound {
	dLat := radiusM / metersPerDegree

	cos := math.Cos(radians(p[1]))
	if cos < 0.01 {
		cos = 0.01
	}
	dLon := radiusM / (metersPerDegree * cos)

	return orb.Bound{
		Min: orb.Point{p[0] - dLon, p[1] - dLat},
		Max: orb.Point{p[0] + dLon, p[1] + dLat},
	}
}
