// Package environment summarizes natural protection zones from the INPN
// Carmen WFS around a point: Natura 2000, ZNIEFF, nature reserves and
// national parks.
package environment

import (
	"context"

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

// layerConcurrency caps parallel upstream queries per request.
const layerConcurrency = 4

// Service queries the environment layers.
type Service struct {
	cfg     config.EnvironmentConfig
	catalog []layers.Def
	client  *wfs.Client
	log     *logger.Logger
}

func NewService(cfg config.EnvironmentConfig, catalog []layers.Def, client *wfs.Client, log *logger.Logger) *Service {
	return &Service{cfg: cfg, catalog: catalog, client: client, log: log}
}

type layerResult struct {
	fc  *geojson.FeatureCollection
	err error
}

// Summary queries every environment layer around p. Each layer answers
// independently: a failed layer carries its error in the response while
// the others report normally.
func (s *Service) Summary(ctx context.Context, p orb.Point, radiusM float64, trace *geo.Trace) (*SummaryResponse, error) {
	base := s.cfg.GetINPNWFSBase()
	if base == "" {
		return nil, apperr.Internal("environment endpoint is not configured (INPN_WFS_BASE)")
	}

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
			results[i] = layerResult{fc: fc, err: err}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]*layers.Summary, len(s.catalog))
	total := 0
	for i, def := range s.catalog {
		summary := layers.NewSummary(def.Pretty, def.Source)
		result := results[i]
		if result.err != nil {
			s.log.UpstreamError("inpn", def.TypeName, result.err)
			summary.Error = result.err.Error()
		} else {
			for _, feature := range result.fc.Features {
				props := feature.Properties
				summary.Add(layers.Hit{
					ID:         geo.StringProp(props, geo.IDString(feature.ID), "gid", "gml_id", "id_mnhn", "sitecode"),
					Label:      geo.StringProp(props, "", "nom", "libelle", "sitename", "nom_site"),
					Properties: props,
				})
			}
		}
		out[def.Key] = summary
		total += summary.Count
	}

	return &SummaryResponse{Total: total, Layers: out}, nil
}
