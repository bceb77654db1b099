package urbanism

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/geo"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/time/rate"
)

const userAgent = "site-geo-mvp/1.0"

// Client calls the GPU module of API Carto (Géoportail de l'Urbanisme).
// Unlike the WFS services, API Carto takes the query geometry as a
// GeoJSON document in the geom parameter.
type Client struct {
	base    string
	hc      *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

func NewClient(cfg config.UrbanismConfig, log *logger.Logger) *Client {
	rps := cfg.GetUpstreamRPS()
	return &Client{
		base:    strings.TrimRight(cfg.GetGPUBase(), "/"),
		hc:      &http.Client{Timeout: cfg.GetUpstreamTimeout()},
		limiter: rate.NewLimiter(rate.Limit(rps), int(math.Ceil(rps))),
		log:     log,
	}
}

// ZonesAt returns the zoning polygons covering p.
func (c *Client) ZonesAt(ctx context.Context, p orb.Point, trace *geo.Trace) (*geojson.FeatureCollection, error) {
	return c.featuresAt(ctx, "zone-urba", p, trace)
}

// ServitudesAt returns the surface public utility easements covering p.
func (c *Client) ServitudesAt(ctx context.Context, p orb.Point, trace *geo.Trace) (*geojson.FeatureCollection, error) {
	return c.featuresAt(ctx, "assiette-sup-s", p, trace)
}

// DocumentsAt returns the planning documents applicable at p.
func (c *Client) DocumentsAt(ctx context.Context, p orb.Point, trace *geo.Trace) (*geojson.FeatureCollection, error) {
	return c.featuresAt(ctx, "document", p, trace)
}

func (c *Client) featuresAt(ctx context.Context, endpoint string, p orb.Point, trace *geo.Trace) (*geojson.FeatureCollection, error) {
	geom, err := json.Marshal(geojson.NewGeometry(p))
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("geom", string(geom))
	reqURL := c.base + "/" + endpoint + "?" + params.Encode()
	trace.Record(reqURL)

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

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gpu %s status %d", endpoint, resp.StatusCode)
	}

	var fc geojson.FeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode gpu %s payload: %w", endpoint, err)
	}
	return &fc, nil
}
