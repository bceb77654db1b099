package airport

import (
	apphttp "github.com/Tanvoile/site-geo-mvp/internal/http"
	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"
)

// Module bundles the airport service and its HTTP surface.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.AirportConfig, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string { return "airport" }

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/airport")
	group.GET("/check", m.handler.Check)
}

// Ensure Module implements the HTTP module interface.
var _ apphttp.Module = (*Module)(nil)
