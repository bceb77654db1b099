// Package geo provides shared geometry helpers for the geodata modules:
// the Lambert-93 planar projection used for metric distances, bounding
// boxes around a point, and tolerant access to provider feature properties.
// This is part of the platform layer and contains no business logic.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// Lambert-93 (EPSG:2154) defining parameters on the GRS80 ellipsoid,
// the legal projection for metric coordinates over mainland France.
const (
	grs80A       = 6378137.0
	grs80F       = 1.0 / 298.257222101
	latOrigin    = 46.5
	latParallel1 = 44.0
	latParallel2 = 49.0
	lonOrigin    = 3.0
	falseEasting = 700000.0
	falseNorth   = 6600000.0
)

// lambert holds the derived constants of the conformal conic projection.
type lambert struct {
	e    float64
	n    float64
	af   float64
	rho0 float64
}

var lcc = newLambert()

func newLambert() lambert {
	l := lambert{e: math.Sqrt(grs80F * (2 - grs80F))}

	phi0 := radians(latOrigin)
	phi1 := radians(latParallel1)
	phi2 := radians(latParallel2)

	m1 := l.m(phi1)
	m2 := l.m(phi2)

	l.n = (math.Log(m1) - math.Log(m2)) / (math.Log(l.t(phi1)) - math.Log(l.t(phi2)))
	l.af = grs80A * m1 / (l.n * math.Pow(l.t(phi1), l.n))
	l.rho0 = l.af * math.Pow(l.t(phi0), l.n)

	return l
}

func (l lambert) m(phi float64) float64 {
	s := math.Sin(phi)
	return math.Cos(phi) / math.Sqrt(1-l.e*l.e*s*s)
}

func (l lambert) t(phi float64) float64 {
	s := math.Sin(phi)
	return math.Tan(math.Pi/4-phi/2) / math.Pow((1-l.e*s)/(1+l.e*s), l.e/2)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Lambert93 projects a WGS84 lon/lat point to EPSG:2154 easting/northing
// in meters.
func Lambert93(p orb.Point) orb.Point {
	theta := lcc.n * (radians(p[0]) - radians(lonOrigin))
	rho := lcc.af * math.Pow(lcc.t(radians(p[1])), lcc.n)

	return orb.Point{
		falseEasting + rho*math.Sin(theta),
		falseNorth + lcc.rho0 - rho*math.Cos(theta),
	}
}

// PlanarDistance returns the distance in meters between two WGS84 points,
// measured on the Lambert-93 plane.
func PlanarDistance(a, b orb.Point) float64 {
	pa := Lambert93(a)
	pb := Lambert93(b)
	return math.Hypot(pb[0]-pa[0], pb[1]-pa[1])
}
