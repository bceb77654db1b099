package cadastre

import "github.com/Tanvoile/site-geo-mvp/platform/geo"

// SheetQuery binds the query parameters of the sheet lookup. Pointer
// fields keep a zero coordinate distinguishable from a missing one.
type SheetQuery struct {
	Lon   *float64 `form:"lon" binding:"required,longitude"`
	Lat   *float64 `form:"lat" binding:"required,latitude"`
	Debug bool     `form:"debug"`
}

// Sheet carries the normalized fields of the matched cadastral map sheet.
// Field names follow the Parcellaire Express attribute schema.
type Sheet struct {
	ID         string `json:"id,omitempty"`
	Section    string `json:"section,omitempty"`
	Prefix     string `json:"prefix,omitempty"`
	Number     string `json:"number,omitempty"`
	Commune    string `json:"commune,omitempty"`
	Department string `json:"department,omitempty"`
	Scale      string `json:"scale,omitempty"`
}

// SheetResponse is the payload of GET /api/v1/cadastre/sheet.
type SheetResponse struct {
	DownloadURL string         `json:"download_url"`
	Source      string         `json:"source"`
	Sheet       Sheet          `json:"sheet"`
	Debug       *geo.DebugInfo `json:"debug,omitempty"`
}
