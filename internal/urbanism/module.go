package urbanism

import (
	apphttp "github.com/Tanvoile/site-geo-mvp/internal/http"
	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"
)

// Module bundles the urbanism service and its HTTP surface.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.UrbanismConfig, log *logger.Logger) *Module {
	svc := NewService(cfg, NewClient(cfg, log), log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string { return "urbanism" }

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/urbanism")
	group.GET("/zoning", m.handler.Zoning)
	group.GET("/servitudes", m.handler.Servitudes)
	group.GET("/documents", m.handler.Documents)
}

// Ensure Module implements the HTTP module interface.
var _ apphttp.Module = (*Module)(nil)
