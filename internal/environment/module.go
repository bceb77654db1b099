package environment

import (
	apphttp "github.com/Tanvoile/site-geo-mvp/internal/http"
	"github.com/Tanvoile/site-geo-mvp/internal/layers"
	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"
	"github.com/Tanvoile/site-geo-mvp/platform/wfs"
)

// Module bundles the environment service and its HTTP surface.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.EnvironmentConfig, catalog []layers.Def, client *wfs.Client, log *logger.Logger) *Module {
	svc := NewService(cfg, catalog, client, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string { return "environment" }

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/environment")
	group.GET("/summary", m.handler.Summary)
}

// Ensure Module implements the HTTP module interface.
var _ apphttp.Module = (*Module)(nil)
