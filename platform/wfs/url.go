// Package wfs implements query construction and a tolerant client for OGC
// Web Feature Services. The French public geodata endpoints still mix WFS
// 1.0.0 and 2.0.0 deployments, so both parameter dialects are supported.
// This is part of the platform layer and contains no business logic.
package wfs

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/paulmach/orb"
)

// Version selects the WFS parameter dialect.
type Version string

const (
	// V100 is the legacy dialect spoken by older MapServer deployments.
	V100 Version = "1.0.0"
	// V200 is the current dialect spoken by GeoServer deployments.
	V200 Version = "2.0.0"
)

// DefaultGeomProperty is the geometry property queried by spatial filters.
const DefaultGeomProperty = "geom"

const srsURN = "urn:ogc:def:crs:EPSG::4326"

// ParseVersion maps a configured version string to a known dialect,
// defaulting to 2.0.0.
func ParseVersion(s string) Version {
	if s == string(V100) {
		return V100
	}
	return V200
}

// GetFeatureURL builds a GetFeature request URL on top of base, preserving
// any query parameters already embedded in it. MapServer endpoints carry a
// mandatory map= parameter inside their base URL.
func GetFeatureURL(base, typeName string, version Version, extra url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse wfs base url: %w", err)
	}

	q := u.Query()
	q.Set("service", "WFS")
	q.Set("version", string(version))
	q.Set("request", "GetFeature")
	if version == V100 {
		q.Set("TYPENAME", typeName)
		q.Set("SRS", "EPSG:4326")
	} else {
		q.Set("typeNames", typeName)
		q.Set("srsName", srsURN)
	}
	for key, values := range extra {
		q[key] = values
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// CapabilitiesURL builds a GetCapabilities request URL on top of base.
func CapabilitiesURL(base string, version Version) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse wfs base url: %w", err)
	}

	q := u.Query()
	q.Set("service", "WFS")
	q.Set("version", string(version))
	q.Set("request", "GetCapabilities")

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// PointFilterURL builds a GetFeature URL returning JSON features matching
// the given CQL predicate.
func PointFilterURL(base, typeName string, version Version, filter string, count int) (string, error) {
	extra := url.Values{}
	extra.Set("outputFormat", jsonOutputFormat(version))
	extra.Set("CQL_FILTER", filter)
	if count > 0 {
		extra.Set(countParam(version), strconv.Itoa(count))
	}
	return GetFeatureURL(base, typeName, version, extra)
}

// BBoxURL builds a GetFeature URL returning JSON features inside b. The
// 1.0.0 dialect orders bbox corners x,y while 2.0.0 with a urn CRS orders
// them latitude first.
func BBoxURL(base, typeName string, version Version, b orb.Bound, max int) (string, error) {
	extra := url.Values{}
	extra.Set("outputFormat", jsonOutputFormat(version))
	extra.Set(countParam(version), strconv.Itoa(max))
	if version == V100 {
		extra.Set("BBOX", coord(b.Min[0])+","+coord(b.Min[1])+","+coord(b.Max[0])+","+coord(b.Max[1]))
	} else {
		extra.Set("BBOX", coord(b.Min[1])+","+coord(b.Min[0])+","+coord(b.Max[1])+","+coord(b.Max[0])+","+srsURN)
	}
	return GetFeatureURL(base, typeName, version, extra)
}

// ShapeZipURL builds the shapefile download link for features intersecting p.
func ShapeZipURL(base, typeName string, version Version, p orb.Point) (string, error) {
	extra := url.Values{}
	extra.Set("outputFormat", "shape-zip")
	extra.Set("CQL_FILTER", IntersectsFilter(DefaultGeomProperty, p))
	return GetFeatureURL(base, typeName, version, extra)
}

// IntersectsFilter matches features whose geometry intersects the point.
func IntersectsFilter(geomProp string, p orb.Point) string {
	return "INTERSECTS(" + geomProp + "," + ewktPoint(p) + ")"
}

// DWithinFilter matches features within meters of the point.
func DWithinFilter(geomProp string, p orb.Point, meters float64) string {
	return "DWITHIN(" + geomProp + "," + ewktPoint(p) + "," + coord(meters) + ",meters)"
}

// ContainsFilter matches features whose geometry contains the point.
func ContainsFilter(geomProp string, p orb.Point) string {
	return "CONTAINS(" + geomProp + "," + ewktPoint(p) + ")"
}

func ewktPoint(p orb.Point) string {
	return "SRID=4326;POINT(" + coord(p[0]) + " " + coord(p[1]) + ")"
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func jsonOutputFormat(version Version) string {
	if version == V100 {
		return "geojson"
	}
	return "application/json"
}

func countParam(version Version) string {
	if version == V100 {
		return "maxFeatures"
	}
	return "count"
}
