package environment

import (
	"net/http"

	"github.com/Tanvoile/site-geo-mvp/platform/geo"
	"github.com/Tanvoile/site-geo-mvp/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
)

// Handler exposes the environment endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Summary handles GET /api/v1/environment/summary.
func (h *Handler) Summary(c *gin.Context) {
	var req SummaryQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "lon and lat are required WGS84 coordinates; radius_m must be in (0, 10000]", nil)
		return
	}

	var trace *geo.Trace
	if req.Debug {
		trace = &geo.Trace{}
	}

	radius := 0.0
	if req.RadiusM != nil {
		radius = *req.RadiusM
	}

	resp, err := h.svc.Summary(c.Request.Context(), orb.Point{*req.Lon, *req.Lat}, radius, trace)
	if httpkit.HandleError(c, err) {
		return
	}

	resp.Debug = trace.Debug()
	httpkit.OK(c, resp)
}
