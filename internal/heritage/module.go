package heritage

import (
	apphttp "github.com/Tanvoile/site-geo-mvp/internal/http"
	"github.com/Tanvoile/site-geo-mvp/internal/layers"
	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"
	"github.com/Tanvoile/site-geo-mvp/platform/wfs"
)

// Module bundles the heritage service and its HTTP surface.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.HeritageConfig, catalog []layers.Def, client *wfs.Client, log *logger.Logger) *Module {
	svc := NewService(cfg, catalog, client, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string { return "heritage" }

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/heritage")
	group.GET("/summary", m.handler.Summary)
	group.GET("/download", m.handler.Download)
}

// Ensure Module implements the HTTP module interface.
var _ apphttp.Module = (*Module)(nil)
