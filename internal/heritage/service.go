// Package heritage summarizes protections from the Atlas des Patrimoines
// around a point and hands out a shapefile download link for the
// configured layer.
package heritage

import (
	"context"
	"sync"

	"github.com/Tanvoile/site-geo-mvp/internal/layers"
	"github.com/Tanvoile/site-geo-mvp/platform/apperr"
	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/geo"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"
	"github.com/Tanvoile/site-geo-mvp/platform/wfs"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/sync/errgroup"
)

// Source labels the upstream registry in responses.
const Source = "Atlas des Patrimoines"

// layerConcurrency caps parallel upstream queries per request.
const layerConcurrency = 4

// Service queries the heritage layers.
type Service struct {
	cfg     config.HeritageConfig
	catalog []layers.Def
	client  *wfs.Client
	log     *logger.Logger
	warm    sync.Once
}

func NewService(cfg config.HeritageConfig, catalog []layers.Def, client *wfs.Client, log *logger.Logger) *Service {
	return &Service{cfg: cfg, catalog: catalog, client: client, log: log}
}

type layerResult struct {
	def layers.Def
	fc  *geojson.FeatureCollection
	err error
}

// Summary queries every heritage layer around p and classifies the
// matches into protection buckets. A layer that fails stays in the
// response as a degraded entry instead of failing the whole summary.
func (s *Service) Summary(ctx context.Context, p orb.Point, radiusM float64, trace *geo.Trace) (*SummaryResponse, error) {
	base := s.cfg.GetAtlasWFSBase()
	if base == "" {
		return nil, apperr.Internal("heritage endpoint is not configured (ATLAS_WFS_BASE)")
	}

	// The atlas MapServer tends to answer its first spatial query of a
	// session with an empty result; one capabilities round-trip settles it.
	s.warm.Do(func() {
		if err := s.client.WarmUp(ctx, base, wfs.V100); err != nil {
			s.log.UpstreamError("atlas", "warm-up", err)
		}
	})

	results := make([]layerResult, len(s.catalog))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(layerConcurrency)
	for i, def := range s.catalog {
		g.Go(func() error {
			fc, err := s.client.FeaturesInBBox(gctx, wfs.BBoxRequest{
				Base:     base,
				TypeName: def.TypeName,
				Point:    p,
				RadiusM:  radiusM,
			}, trace)
			results[i] = layerResult{def: def, fc: fc, err: err}
			return nil
		})
	}
	_ = g.Wait()

	buckets := make(map[string]*layers.Summary)
	total := 0
	for _, result := range results {
		if result.err != nil {
			s.log.UpstreamError("atlas", result.def.TypeName, result.err)
			degraded := layers.NewSummary(result.def.Pretty, result.def.Source)
			degraded.Error = result.err.Error()
			buckets[result.def.Key] = degraded
			continue
		}
		for _, feature := range result.fc.Features {
			props := feature.Properties
			code := geo.StringProp(props, "", "suptype", "code", "type_prot")
			label := geo.StringProp(props, "", "libelle", "nom", "appellation", "intitule")
			bucket := Classify(code, label)

			entry, ok := buckets[bucket]
			if !ok {
				entry = layers.NewSummary(bucketPretty[bucket], result.def.Source)
				buckets[bucket] = entry
			}
			entry.Add(layers.Hit{
				ID:         geo.StringProp(props, geo.IDString(feature.ID), "gid", "gml_id", "id"),
				Label:      label,
				Properties: props,
			})
			total++
		}
	}

	return &SummaryResponse{Total: total, Layers: buckets}, nil
}

// Download builds the shapefile link for the configured heritage layer.
func (s *Service) Download(p orb.Point) (*DownloadResponse, error) {
	base := s.cfg.GetAtlasWFSBase()
	typeName := s.cfg.GetHeritageDownloadTypeName()
	if base == "" || typeName == "" {
		return nil, apperr.Internal("heritage endpoint is not configured (ATLAS_WFS_BASE, HERITAGE_DOWNLOAD_TYPENAME)")
	}

	downloadURL, err := wfs.ShapeZipURL(base, typeName, wfs.V200, p)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "build heritage download url", err)
	}
	return &DownloadResponse{DownloadURL: downloadURL, Source: Source}, nil
}
