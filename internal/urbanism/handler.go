package urbanism

import (
	"net/http"

	"github.com/Tanvoile/site-geo-mvp/platform/geo"
	"github.com/Tanvoile/site-geo-mvp/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
)

// Handler exposes the urbanism endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Zoning handles GET /api/v1/urbanism/zoning.
func (h *Handler) Zoning(c *gin.Context) {
	var req ZoningQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "lon and lat are required WGS84 coordinates", nil)
		return
	}

	var trace *geo.Trace
	if req.Debug {
		trace = &geo.Trace{}
	}

	resp, err := h.svc.ZoningAtPoint(c.Request.Context(), orb.Point{*req.Lon, *req.Lat}, trace)
	if httpkit.HandleError(c, err) {
		return
	}

	resp.Debug = trace.Debug()
	httpkit.OK(c, resp)
}

// Servitudes handles GET /api/v1/urbanism/servitudes.
func (h *Handler) Servitudes(c *gin.Context) {
	var req ServitudesQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "lon and lat are required WGS84 coordinates", nil)
		return
	}

	var trace *geo.Trace
	if req.Debug {
		trace = &geo.Trace{}
	}

	resp, err := h.svc.ServitudesAtPoint(c.Request.Context(), orb.Point{*req.Lon, *req.Lat}, req.Strict, trace)
	if httpkit.HandleError(c, err) {
		return
	}

	resp.Debug = trace.Debug()
	httpkit.OK(c, resp)
}

// Documents handles GET /api/v1/urbanism/documents.
func (h *Handler) Documents(c *gin.Context) {
	var req DocumentsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "lon and lat are required WGS84 coordinates", nil)
		return
	}

	var trace *geo.Trace
	if req.Debug {
		trace = &geo.Trace{}
	}

	resp, err := h.svc.DocumentsAtPoint(c.Request.Context(), orb.Point{*req.Lon, *req.Lat}, trace)
	if httpkit.HandleError(c, err) {
		return
	}

	resp.Debug = trace.Debug()
	httpkit.OK(c, resp)
}
