package cadastre

import (
	"net/http"

	"github.com/Tanvoile/site-geo-mvp/platform/geo"
	"github.com/Tanvoile/site-geo-mvp/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
)

// Handler exposes the cadastral sheet endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Sheet handles GET /api/v1/cadastre/sheet.
func (h *Handler) Sheet(c *gin.Context) {
	var req SheetQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "lon and lat are required WGS84 coordinates", nil)
		return
	}

	var trace *geo.Trace
	if req.Debug {
		trace = &geo.Trace{}
	}

	resp, err := h.svc.SheetAtPoint(c.Request.Context(), orb.Point{*req.Lon, *req.Lat}, trace)
	if httpkit.HandleError(c, err) {
		return
	}

	resp.Debug = trace.Debug()
	httpkit.OK(c, resp)
}
