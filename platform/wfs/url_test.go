package wfs

import (
	"net/url"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %s: %v", raw, err)
	}
	return parsed.Query()
}

func TestGetFeatureURLPreservesBaseQuery(t *testing.T) {
	base := "http://atlas.example/cgi-bin/mapserv?map=/data/MD_865.map"

	got, err := GetFeatureURL(base, "MD_865", V100, nil)
	if err != nil {
		t.Fatalf("GetFeatureURL: %v", err)
	}
	if strings.Count(got, "?") != 1 {
		t.Fatalf("malformed url: %s", got)
	}

	q := mustQuery(t, got)
	if q.Get("map") != "/data/MD_865.map" {
		t.Errorf("map parameter lost: %s", got)
	}
	if q.Get("service") != "WFS" || q.Get("request") != "GetFeature" {
		t.Errorf("missing wfs parameters: %s", got)
	}
	if q.Get("TYPENAME") != "MD_865" {
		t.Errorf("TYPENAME = %q", q.Get("TYPENAME"))
	}
}

func TestPointFilterURLDialects(t *testing.T) {
	filter := IntersectsFilter("geom", orb.Point{2.55, 49.0})

	oldURL, err := PointFilterURL("https://wfs.example/ows", "layer", V100, filter, 5)
	if err != nil {
		t.Fatalf("PointFilterURL v1: %v", err)
	}
	q1 := mustQuery(t, oldURL)
	if q1.Get("TYPENAME") != "layer" || q1.Get("typeNames") != "" {
		t.Errorf("v1 type name parameter wrong: %s", oldURL)
	}
	if q1.Get("maxFeatures") != "5" || q1.Get("outputFormat") != "geojson" {
		t.Errorf("v1 count/output parameters wrong: %s", oldURL)
	}
	if q1.Get("SRS") != "EPSG:4326" {
		t.Errorf("v1 SRS = %q", q1.Get("SRS"))
	}

	newURL, err := PointFilterURL("https://wfs.example/ows", "layer", V200, filter, 5)
	if err != nil {
		t.Fatalf("PointFilterURL v2: %v", err)
	}
	q2 := mustQuery(t, newURL)
	if q2.Get("typeNames") != "layer" || q2.Get("TYPENAME") != "" {
		t.Errorf("v2 type name parameter wrong: %s", newURL)
	}
	if q2.Get("count") != "5" || q2.Get("outputFormat") != "application/json" {
		t.Errorf("v2 count/output parameters wrong: %s", newURL)
	}
	if q2.Get("srsName") != srsURN {
		t.Errorf("v2 srsName = %q", q2.Get("srsName"))
	}
	if q2.Get("CQL_FILTER") != filter {
		t.Errorf("CQL_FILTER = %q, want %q", q2.Get("CQL_FILTER"), filter)
	}
}

func TestBBoxURLAxisOrder(t *testing.T) {
	b := orb.Bound{Min: orb.Point{2.5, 49.0}, Max: orb.Point{2.6, 49.1}}

	oldURL, err := BBoxURL("https://wfs.example/ows", "layer", V100, b, 200)
	if err != nil {
		t.Fatalf("BBoxURL v1: %v", err)
	}
	if got := mustQuery(t, oldURL).Get("BBOX"); got != "2.5,49,2.6,49.1" {
		t.Errorf("v1 BBOX = %q", got)
	}

	newURL, err := BBoxURL("https://wfs.example/ows", "layer", V200, b, 200)
	if err != nil {
		t.Fatalf("BBoxURL v2: %v", err)
	}
	if got := mustQuery(t, newURL).Get("BBOX"); got != "49,2.5,49.1,2.6,"+srsURN {
		t.Errorf("v2 BBOX = %q", got)
	}
}

func TestShapeZipURL(t *testing.T) {
	got, err := ShapeZipURL("https://data.geopf.fr/wfs/ows", "CADASTRALPARCELS.PARCELLAIRE_EXPRESS:feuille", V200, orb.Point{2.55, 49.0})
	if err != nil {
		t.Fatalf("ShapeZipURL: %v", err)
	}

	q := mustQuery(t, got)
	if q.Get("outputFormat") != "shape-zip" {
		t.Errorf("outputFormat = %q", q.Get("outputFormat"))
	}
	if q.Get("CQL_FILTER") != "INTERSECTS(geom,SRID=4326;POINT(2.55 49))" {
		t.Errorf("CQL_FILTER = %q", q.Get("CQL_FILTER"))
	}
}

func TestFilterPredicates(t *testing.T) {
	p := orb.Point{2.55, 49.0}

	if got := IntersectsFilter("geom", p); got != "INTERSECTS(geom,SRID=4326;POINT(2.55 49))" {
		t.Errorf("IntersectsFilter = %q", got)
	}
	if got := DWithinFilter("geom", p, 5); got != "DWITHIN(geom,SRID=4326;POINT(2.55 49),5,meters)" {
		t.Errorf("DWithinFilter = %q", got)
	}
	if got := ContainsFilter("the_geom", p); got != "CONTAINS(the_geom,SRID=4326;POINT(2.55 49))" {
		t.Errorf("ContainsFilter = %q", got)
	}
}
