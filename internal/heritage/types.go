package heritage

import (
	"github.com/Tanvoile/site-geo-mvp/internal/layers"
	"github.com/Tanvoile/site-geo-mvp/platform/geo"
)

// SummaryQuery binds the heritage summary parameters.
type SummaryQuery struct {
	Lon     *float64 `form:"lon" binding:"required,longitude"`
	Lat     *float64 `form:"lat" binding:"required,latitude"`
	RadiusM *float64 `form:"radius_m" binding:"omitempty,gt=0,lte=10000"`
	Debug   bool     `form:"debug"`
}

// DownloadQuery binds the shapefile link parameters.
type DownloadQuery struct {
	Lon *float64 `form:"lon" binding:"required,longitude"`
	Lat *float64 `form:"lat" binding:"required,latitude"`
}

// SummaryResponse is the payload of GET /api/v1/heritage/summary. Layers
// is keyed by bucket, plus one entry per source layer that could not be
// reached.
type SummaryResponse struct {
	Total  int                        `json:"total"`
	Layers map[string]*layers.Summary `json:"layers"`
	Debug  *geo.DebugInfo             `json:"debug,omitempty"`
}

// DownloadResponse is the payload of GET /api/v1/heritage/download.
type DownloadResponse struct {
	DownloadURL string `json:"download_url"`
	Source      string `json:"source"`
}
