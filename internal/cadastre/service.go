// Package cadastre resolves the cadastral map sheet covering a point and
// hands out a shapefile download link for it, backed by the IGN
// Parcellaire Express WFS.
package cadastre

import (
	"context"

	"github.com/Tanvoile/site-geo-mvp/platform/apperr"
	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/geo"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"
	"github.com/Tanvoile/site-geo-mvp/platform/wfs"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Source labels the upstream registry in responses.
const Source = "IGN / Parcellaire Express (feuille)"

// Service performs the sheet lookup against the configured WFS endpoint.
type Service struct {
	cfg    config.CadastreConfig
	client *wfs.Client
	log    *logger.Logger
}

func NewService(cfg config.CadastreConfig, client *wfs.Client, log *logger.Logger) *Service {
	return &Service{cfg: cfg, client: client, log: log}
}

// SheetAtPoint finds the sheet containing p and builds its shapefile
// download link. The lookup is strict: a missing endpoint, an empty
// result and an upstream failure each map to their own error kind.
func (s *Service) SheetAtPoint(ctx context.Context, p orb.Point, trace *geo.Trace) (*SheetResponse, error) {
	base := s.cfg.GetCadastreWFSBase()
	typeName := s.cfg.GetCadastreTypeName()
	if base == "" || typeName == "" {
		return nil, apperr.Internal("cadastre WFS endpoint is not configured (CADASTRE_WFS_BASE, CADASTRE_TYPENAME)")
	}
	version := wfs.ParseVersion(s.cfg.GetCadastreWFSVersion())

	feature, err := s.client.FirstFeatureAtPoint(ctx, wfs.PointRequest{
		Base:     base,
		TypeName: typeName,
		Version:  version,
		Point:    p,
	}, trace)
	if err != nil {
		s.log.UpstreamError("cadastre", "sheet lookup", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "cadastre lookup failed", err)
	}
	if feature == nil {
		return nil, apperr.NotFound("no cadastral sheet covers this point")
	}

	downloadURL, err := wfs.ShapeZipURL(base, typeName, version, p)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "build sheet download url", err)
	}

	return &SheetResponse{
		DownloadURL: downloadURL,
		Source:      Source,
		Sheet:       buildSheet(feature),
	}, nil
}

func buildSheet(feature *geojson.Feature) Sheet {
	props := feature.Properties
	return Sheet{
		ID:         geo.StringProp(props, geo.IDString(feature.ID), "id", "idu", "gml_id"),
		Section:    geo.StringProp(props, "", "section", "code_section"),
		Prefix:     geo.StringProp(props, "", "com_abs", "prefixe"),
		Number:     geo.StringProp(props, "", "feuille", "numero"),
		Commune:    geo.StringProp(props, "", "nom_com", "nom_commune", "commune"),
		Department: geo.StringProp(props, "", "code_dep", "departement"),
		Scale:      geo.StringProp(props, "", "echelle", "scale"),
	}
}
