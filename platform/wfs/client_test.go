package wfs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Tanvoile/site-geo-mvp/platform/geo"

	"github.com/paulmach/orb"
)

type upstreamConfig struct{}

func (upstreamConfig) GetUpstreamTimeout() time.Duration { return 2 * time.Second }
func (upstreamConfig) GetUpstreamRPS() float64           { return 1000 }

func newTestClient() *Client {
	return NewClient(upstreamConfig{}, nil)
}

const emptyCollection = `{"type":"FeatureCollection","features":[]}`

const singleFeature = `{"type":"FeatureCollection","features":[
	{"type":"Feature","geometry":{"type":"Point","coordinates":[2.55,49]},"properties":{"section":"AB"}}
]}`

// recorder captures the CQL filters of incoming requests.
type recorder struct {
	mu      sync.Mutex
	filters []string
}

func (r *recorder) add(filter string) {
	r.mu.Lock()
	r.filters = append(r.filters, filter)
	r.mu.Unlock()
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.filters...)
}

func TestFirstFeatureAtPointStopsAtIntersects(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r.URL.Query().Get("CQL_FILTER"))
		_, _ = w.Write([]byte(singleFeature))
	}))
	defer srv.Close()

	feature, err := newTestClient().FirstFeatureAtPoint(context.Background(), PointRequest{
		Base:     srv.URL,
		TypeName: "layer",
		Version:  V200,
		Point:    orb.Point{2.55, 49.0},
	}, nil)
	if err != nil {
		t.Fatalf("FirstFeatureAtPoint: %v", err)
	}
	if feature == nil {
		t.Fatal("expected a feature")
	}

	filters := rec.all()
	if len(filters) != 1 {
		t.Fatalf("issued %d queries, want 1: %v", len(filters), filters)
	}
	if !strings.HasPrefix(filters[0], "INTERSECTS(") {
		t.Errorf("first predicate = %q", filters[0])
	}
}

func TestFirstFeatureAtPointFallbackSequence(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("CQL_FILTER")
		rec.add(filter)
		if strings.HasPrefix(filter, "CONTAINS(") {
			_, _ = w.Write([]byte(singleFeature))
			return
		}
		_, _ = w.Write([]byte(emptyCollection))
	}))
	defer srv.Close()

	trace := &geo.Trace{}
	feature, err := newTestClient().FirstFeatureAtPoint(context.Background(), PointRequest{
		Base:     srv.URL,
		TypeName: "layer",
		Version:  V200,
		Point:    orb.Point{2.55, 49.0},
	}, trace)
	if err != nil {
		t.Fatalf("FirstFeatureAtPoint: %v", err)
	}
	if feature == nil {
		t.Fatal("expected the CONTAINS feature")
	}
	if got := feature.Properties.MustString("section", ""); got != "AB" {
		t.Errorf("section = %q", got)
	}

	filters := rec.all()
	if len(filters) != 3 {
		t.Fatalf("issued %d queries, want 3: %v", len(filters), filters)
	}
	for i, prefix := range []string{"INTERSECTS(", "DWITHIN(", "CONTAINS("} {
		if !strings.HasPrefix(filters[i], prefix) {
			t.Errorf("predicate %d = %q, want prefix %q", i, filters[i], prefix)
		}
	}
	if len(trace.Requests()) != 3 {
		t.Errorf("trace recorded %d requests, want 3", len(trace.Requests()))
	}
}

func TestFirstFeatureAtPointAllEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(emptyCollection))
	}))
	defer srv.Close()

	feature, err := newTestClient().FirstFeatureAtPoint(context.Background(), PointRequest{
		Base:     srv.URL,
		TypeName: "layer",
		Version:  V200,
		Point:    orb.Point{2.55, 49.0},
	}, nil)
	if err != nil {
		t.Fatalf("FirstFeatureAtPoint: %v", err)
	}
	if feature != nil {
		t.Fatalf("expected no feature, got %v", feature)
	}
}

func TestFirstFeatureAtPointExceptionReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<?xml version="1.0"?>
<ows:ExceptionReport xmlns:ows="http://www.opengis.net/ows/1.1">
  <ows:Exception exceptionCode="InvalidParameterValue">
    <ows:ExceptionText>msGetLayerIndex(): unknown layer</ows:ExceptionText>
  </ows:Exception>
</ows:ExceptionReport>`))
	}))
	defer srv.Close()

	_, err := newTestClient().FirstFeatureAtPoint(context.Background(), PointRequest{
		Base:     srv.URL,
		TypeName: "layer",
		Version:  V200,
		Point:    orb.Point{2.55, 49.0},
	}, nil)
	if err == nil {
		t.Fatal("expected an error for an exception report")
	}
	if !strings.Contains(err.Error(), "unknown layer") {
		t.Errorf("error %q should carry the exception text", err)
	}
}

func TestFeaturesInBBoxVersionFallback(t *testing.T) {
	var versions []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		version := r.URL.Query().Get("version")
		versions = append(versions, version)
		if version == string(V100) {
			http.Error(w, "msWFSDispatch(): WFS server error", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(singleFeature))
	}))
	defer srv.Close()

	trace := &geo.Trace{}
	fc, err := newTestClient().FeaturesInBBox(context.Background(), BBoxRequest{
		Base:     srv.URL,
		TypeName: "layer",
		Point:    orb.Point{2.55, 49.0},
	}, trace)
	if err != nil {
		t.Fatalf("FeaturesInBBox: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("got %d features, want 1", len(fc.Features))
	}

	if len(versions) != 2 || versions[0] != string(V100) || versions[1] != string(V200) {
		t.Fatalf("version sequence = %v, want [1.0.0 2.0.0]", versions)
	}
	if len(trace.Requests()) != 2 {
		t.Errorf("trace recorded %d requests, want 2", len(trace.Requests()))
	}
}

func TestFeaturesInBBoxOldDialectSucceeds(t *testing.T) {
	var versions []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		versions = append(versions, r.URL.Query().Get("version"))
		_, _ = w.Write([]byte(singleFeature))
	}))
	defer srv.Close()

	fc, err := newTestClient().FeaturesInBBox(context.Background(), BBoxRequest{
		Base:     srv.URL,
		TypeName: "layer",
		Point:    orb.Point{2.55, 49.0},
	}, nil)
	if err != nil {
		t.Fatalf("FeaturesInBBox: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("got %d features, want 1", len(fc.Features))
	}
	if len(versions) != 1 || versions[0] != string(V100) {
		t.Fatalf("version sequence = %v, want only 1.0.0", versions)
	}
}

func TestFeaturesInBBoxBothDialectsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient().FeaturesInBBox(context.Background(), BBoxRequest{
		Base:     srv.URL,
		TypeName: "layer",
		Point:    orb.Point{2.55, 49.0},
	}, nil)
	if err == nil {
		t.Fatal("expected an error when both dialects fail")
	}
}

func TestWarmUp(t *testing.T) {
	var request string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request = r.URL.Query().Get("request")
		_, _ = w.Write([]byte(`<WFS_Capabilities/>`))
	}))
	defer srv.Close()

	if err := newTestClient().WarmUp(context.Background(), srv.URL, V100); err != nil {
		t.Fatalf("WarmUp: %v", err)
	}
	if request != "GetCapabilities" {
		t.Errorf("request = %q, want GetCapabilities", request)
	}
}
