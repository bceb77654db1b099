package airport

import (
	"net/http"

	"github.com/Tanvoile/site-geo-mvp/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
)

// Handler exposes the airport proximity endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Check handles GET /api/v1/airport/check.
func (h *Handler) Check(c *gin.Context) {
	var req CheckQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "lon and lat are required WGS84 coordinates; buffer_m must be >= 0", nil)
		return
	}

	bufferM := DefaultBufferM
	if req.BufferM != nil {
		bufferM = *req.BufferM
	}

	resp, err := h.svc.Check(orb.Point{*req.Lon, *req.Lat}, bufferM)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
