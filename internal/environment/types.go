package environment

import (
	"github.com/Tanvoile/site-geo-mvp/internal/layers"
	"github.com/Tanvoile/site-geo-mvp/platform/geo"
)

// SummaryQuery binds the environment summary parameters.
type SummaryQuery struct {
	Lon     *float64 `form:"lon" binding:"required,longitude"`
	Lat     *float64 `form:"lat" binding:"required,latitude"`
	RadiusM *float64 `form:"radius_m" binding:"omitempty,gt=0,lte=10000"`
	Debug   bool     `form:"debug"`
}

// SummaryResponse is the payload of GET /api/v1/environment/summary.
// Layers is keyed by catalog layer key.
type SummaryResponse struct {
	Total  int                        `json:"total"`
	Layers map[string]*layers.Summary `json:"layers"`
	Debug  *geo.DebugInfo             `json:"debug,omitempty"`
}
