package cadastre

import (
	apphttp "github.com/Tanvoile/site-geo-mvp/internal/http"
	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"
	"github.com/Tanvoile/site-geo-mvp/platform/wfs"
)

// Module bundles the cadastre service and its HTTP surface.
type Module struct {
	handler *Handler
}

// NewModule wires the cadastre module. The WFS client is shared across
// modules so outbound rate limiting applies globally.
func NewModule(cfg config.CadastreConfig, client *wfs.Client, log *logger.Logger) *Module {
	svc := NewService(cfg, client, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string { return "cadastre" }

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/cadastre")
	group.GET("/sheet", m.handler.Sheet)
}

// Ensure Module implements the HTTP module interface.
var _ apphttp.Module = (*Module)(nil)
