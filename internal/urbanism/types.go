package urbanism

import (
	"github.com/Tanvoile/site-geo-mvp/internal/layers"
	"github.com/Tanvoile/site-geo-mvp/platform/geo"
)

// ZoningQuery binds the zoning lookup parameters.
type ZoningQuery struct {
	Lon   *float64 `form:"lon" binding:"required,longitude"`
	Lat   *float64 `form:"lat" binding:"required,latitude"`
	Debug bool     `form:"debug"`
}

// ServitudesQuery binds the servitude summary parameters. strict keeps
// prefix and keyword classifications in the autres bucket.
type ServitudesQuery struct {
	Lon    *float64 `form:"lon" binding:"required,longitude"`
	Lat    *float64 `form:"lat" binding:"required,latitude"`
	Strict bool     `form:"strict"`
	Debug  bool     `form:"debug"`
}

// DocumentsQuery binds the document listing parameters.
type DocumentsQuery struct {
	Lon   *float64 `form:"lon" binding:"required,longitude"`
	Lat   *float64 `form:"lat" binding:"required,latitude"`
	Debug bool     `form:"debug"`
}

// Zone carries the normalized fields of one zoning polygon.
type Zone struct {
	ID        string `json:"id,omitempty"`
	Label     string `json:"label,omitempty"`
	LabelLong string `json:"label_long,omitempty"`
	Type      string `json:"type,omitempty"`
	Partition string `json:"partition,omitempty"`
	Document  string `json:"document,omitempty"`
}

// ZoningResponse is the payload of GET /api/v1/urbanism/zoning.
type ZoningResponse struct {
	Count  int            `json:"count"`
	Zones  []Zone         `json:"zones"`
	Source string         `json:"source"`
	Debug  *geo.DebugInfo `json:"debug,omitempty"`
}

// ServitudesResponse is the payload of GET /api/v1/urbanism/servitudes.
// Layers is keyed by bucket.
type ServitudesResponse struct {
	Total  int                        `json:"total"`
	Layers map[string]*layers.Summary `json:"layers"`
	Source string                     `json:"source"`
	Debug  *geo.DebugInfo             `json:"debug,omitempty"`
}

// Document carries the normalized fields of one planning document.
type Document struct {
	ID       string `json:"id,omitempty"`
	Type     string `json:"type,omitempty"`
	Status   string `json:"status,omitempty"`
	Approved string `json:"approved,omitempty"`
	FileURL  string `json:"file_url,omitempty"`
}

// DocumentsResponse is the payload of GET /api/v1/urbanism/documents.
type DocumentsResponse struct {
	Count     int            `json:"count"`
	Documents []Document     `json:"documents"`
	Source    string         `json:"source"`
	Debug     *geo.DebugInfo `json:"debug,omitempty"`
}
