package wfs

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/geo"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/time/rate"
)

const (
	// DWithinMeters is the tolerance ring tried when an exact intersection
	// returns nothing.
	DWithinMeters = 5
	// DefaultBBoxRadiusM is the neighborhood searched around a point when
	// the caller gives no radius.
	DefaultBBoxRadiusM = 10
	// DefaultMaxFeatures caps bbox listings.
	DefaultMaxFeatures = 200

	maxResponseBytes = 16 << 20
	userAgent        = "site-geo-mvp/1.0"
)

// PointRequest describes a single-feature lookup around a point.
type PointRequest struct {
	Base         string
	TypeName     string
	Version      Version
	GeomProperty string // defaults to DefaultGeomProperty
	Point        orb.Point
}

// BBoxRequest describes a bounded feature listing around a point.
type BBoxRequest struct {
	Base     string
	TypeName string
	Point    orb.Point
	RadiusM  float64 // defaults to DefaultBBoxRadiusM
	Max      int     // defaults to DefaultMaxFeatures
}

// Client queries WFS endpoints with the fallback behavior the French
// public geodata services need. The shared limiter keeps request bursts
// polite toward those services.
type Client struct {
	hc      *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewClient creates a WFS client using the shared upstream settings.
func NewClient(cfg config.UpstreamConfig, log *logger.Logger) *Client {
	rps := cfg.GetUpstreamRPS()
	return &Client{
		hc:      &http.Client{Timeout: cfg.GetUpstreamTimeout()},
		limiter: rate.NewLimiter(rate.Limit(rps), int(math.Ceil(rps))),
		log:     log,
	}
}

// FirstFeatureAtPoint looks up the feature covering req.Point, widening
// the spatial predicate step by step: exact intersection, then a small
// tolerance ring, then containment. The first predicate that yields
// features wins and later predicates are not issued. A (nil, nil) return
// means no feature matched any predicate.
func (c *Client) FirstFeatureAtPoint(ctx context.Context, req PointRequest, trace *geo.Trace) (*geojson.Feature, error) {
	geomProp := req.GeomProperty
	if geomProp == "" {
		geomProp = DefaultGeomProperty
	}

	filters := []string{
		IntersectsFilter(geomProp, req.Point),
		DWithinFilter(geomProp, req.Point, DWithinMeters),
		ContainsFilter(geomProp, req.Point),
	}

	for _, filter := range filters {
		reqURL, err := PointFilterURL(req.Base, req.TypeName, req.Version, filter, 1)
		if err != nil {
			return nil, err
		}

		fc, err := c.fetchCollection(ctx, reqURL, trace)
		if err != nil {
			return nil, err
		}
		if len(fc.Features) > 0 {
			return fc.Features[0], nil
		}
	}

	return nil, nil
}

// FeaturesInBBox lists features around req.Point, trying the 1.0.0
// dialect first and retrying with 2.0.0 naming when anything goes wrong.
// Older MapServer deployments only speak 1.0.0 while newer GeoServer
// deployments reject it.
func (c *Client) FeaturesInBBox(ctx context.Context, req BBoxRequest, trace *geo.Trace) (*geojson.FeatureCollection, error) {
	radius := req.RadiusM
	if radius <= 0 {
		radius = DefaultBBoxRadiusM
	}
	max := req.Max
	if max <= 0 {
		max = DefaultMaxFeatures
	}
	bound := geo.BoundAround(req.Point, radius)

	oldURL, err := BBoxURL(req.Base, req.TypeName, V100, bound, max)
	if err != nil {
		return nil, err
	}
	fc, oldErr := c.fetchCollection(ctx, oldURL, trace)
	if oldErr == nil {
		return fc, nil
	}
	if ctx.Err() != nil {
		return nil, oldErr
	}

	if c.log != nil {
		c.log.UpstreamFallback(req.TypeName, string(V100), string(V200), oldErr)
	}

	newURL, err := BBoxURL(req.Base, req.TypeName, V200, bound, max)
	if err != nil {
		return nil, err
	}
	return c.fetchCollection(ctx, newURL, trace)
}

// WarmUp issues a GetCapabilities request and reports whether the service
// answered. Some MapServer instances need one before spatial queries
// respond reliably.
func (c *Client) WarmUp(ctx context.Context, base string, version Version) error {
	reqURL, err := CapabilitiesURL(base, version)
	if err != nil {
		return err
	}
	_, err = c.get(ctx, reqURL)
	return err
}

func (c *Client) fetchCollection(ctx context.Context, reqURL string, trace *geo.Trace) (*geojson.FeatureCollection, error) {
	trace.Record(reqURL)

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	if isXML(body) {
		if msg := exceptionMessage(body); msg != "" {
			return nil, fmt.Errorf("wfs exception: %s", msg)
		}
		return nil, fmt.Errorf("wfs returned xml instead of features")
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("decode wfs features: %w", err)
	}
	return fc, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d: %s", resp.StatusCode, snippet(body))
	}
	return body, nil
}

func snippet(body []byte) string {
	const max = 200
	text := strings.TrimSpace(string(body))
	if len(text) > max {
		text = text[:max]
	}
	return text
}
