// Package urbanism answers point queries against the Géoportail de
// l'Urbanisme through API Carto: zoning polygons, public utility
// easements (servitudes) and planning documents.
package urbanism

import (
	"context"

	"github.com/Tanvoile/site-geo-mvp/internal/layers"
	"github.com/Tanvoile/site-geo-mvp/platform/apperr"
	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/geo"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Source labels the upstream registry in responses.
const Source = "GPU / Géoportail de l'Urbanisme (API Carto)"

// Service performs the urbanism lookups.
type Service struct {
	cfg    config.UrbanismConfig
	client *Client
	log    *logger.Logger
}

func NewService(cfg config.UrbanismConfig, client *Client, log *logger.Logger) *Service {
	return &Service{cfg: cfg, client: client, log: log}
}

// ZoningAtPoint lists the zoning polygons covering p. A point outside any
// published document is a not-found condition, not an empty listing.
func (s *Service) ZoningAtPoint(ctx context.Context, p orb.Point, trace *geo.Trace) (*ZoningResponse, error) {
	if err := s.checkConfigured(); err != nil {
		return nil, err
	}

	fc, err := s.client.ZonesAt(ctx, p, trace)
	if err != nil {
		s.log.UpstreamError("gpu", "zone-urba", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "zoning lookup failed", err)
	}
	if len(fc.Features) == 0 {
		return nil, apperr.NotFound("no published zoning covers this point")
	}

	zones := make([]Zone, 0, len(fc.Features))
	for _, feature := range fc.Features {
		zones = append(zones, buildZone(feature))
	}
	return &ZoningResponse{Count: len(zones), Zones: zones, Source: Source}, nil
}

// ServitudesAtPoint classifies the easements covering p into buckets.
func (s *Service) ServitudesAtPoint(ctx context.Context, p orb.Point, strict bool, trace *geo.Trace) (*ServitudesResponse, error) {
	if err := s.checkConfigured(); err != nil {
		return nil, err
	}

	fc, err := s.client.ServitudesAt(ctx, p, trace)
	if err != nil {
		s.log.UpstreamError("gpu", "assiette-sup-s", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "servitude lookup failed", err)
	}

	buckets := make(map[string]*layers.Summary)
	total := 0
	for _, feature := range fc.Features {
		props := feature.Properties
		code := geo.StringProp(props, "", "suptype", "sup_code", "code")
		label := geo.StringProp(props, "", "nomsuplitt", "libelle", "nom", "intitule")
		bucket := ClassifySUP(code, label, strict)

		entry, ok := buckets[bucket]
		if !ok {
			entry = layers.NewSummary(bucketPretty[bucket], Source)
			buckets[bucket] = entry
		}
		entry.Add(layers.Hit{
			ID:         geo.StringProp(props, geo.IDString(feature.ID), "gid", "gml_id", "idass"),
			Label:      label,
			Properties: props,
		})
		total++
	}

	return &ServitudesResponse{Total: total, Layers: buckets, Source: Source}, nil
}

// DocumentsAtPoint lists the planning documents applicable at p. An empty
// listing is a valid answer here.
func (s *Service) DocumentsAtPoint(ctx context.Context, p orb.Point, trace *geo.Trace) (*DocumentsResponse, error) {
	if err := s.checkConfigured(); err != nil {
		return nil, err
	}

	fc, err := s.client.DocumentsAt(ctx, p, trace)
	if err != nil {
		s.log.UpstreamError("gpu", "document", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "document lookup failed", err)
	}

	docs := make([]Document, 0, len(fc.Features))
	for _, feature := range fc.Features {
		props := feature.Properties
		docs = append(docs, Document{
			ID:       geo.StringProp(props, geo.IDString(feature.ID), "idurba", "id"),
			Type:     geo.StringProp(props, "", "typedoc", "du_type"),
			Status:   geo.StringProp(props, "", "etat", "statut"),
			Approved: geo.StringProp(props, "", "datappro", "date_approbation"),
			FileURL:  geo.StringProp(props, "", "urlfic", "urldu", "nomfic"),
		})
	}
	return &DocumentsResponse{Count: len(docs), Documents: docs, Source: Source}, nil
}

func (s *Service) checkConfigured() error {
	if s.cfg.GetGPUBase() == "" {
		return apperr.Internal("urbanism endpoint is not configured (GPU_BASE)")
	}
	return nil
}

func buildZone(feature *geojson.Feature) Zone {
	props := feature.Properties
	return Zone{
		ID:        geo.StringProp(props, geo.IDString(feature.ID), "idzone", "gid", "gml_id"),
		Label:     geo.StringProp(props, "", "libelle", "label"),
		LabelLong: geo.StringProp(props, "", "libelong", "libelle_long"),
		Type:      geo.StringProp(props, "", "typezone", "type_zone"),
		Partition: geo.StringProp(props, "", "partition"),
		Document:  geo.StringProp(props, "", "idurba", "id_document"),
	}
}
