package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tanvoile/site-geo-mvp/internal/airport"
	"github.com/Tanvoile/site-geo-mvp/internal/cadastre"
	"github.com/Tanvoile/site-geo-mvp/internal/environment"
	"github.com/Tanvoile/site-geo-mvp/internal/heritage"
	apphttp "github.com/Tanvoile/site-geo-mvp/internal/http"
	"github.com/Tanvoile/site-geo-mvp/internal/http/router"
	"github.com/Tanvoile/site-geo-mvp/internal/layers"
	"github.com/Tanvoile/site-geo-mvp/internal/urbanism"
	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"
	"github.com/Tanvoile/site-geo-mvp/platform/validator"
	"github.com/Tanvoile/site-geo-mvp/platform/wfs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Shared validator instance for dependency injection
	val := validator.New()

	// Layer catalog: built-in defaults, optionally overridden from YAML
	catalog, err := layers.Load(cfg.LayerCatalogPath, val)
	if err != nil {
		log.Error("failed to load layer catalog", "error", err)
		panic("failed to load layer catalog: " + err.Error())
	}
	log.Info("layer catalog loaded",
		"heritage_layers", len(catalog.Heritage),
		"environment_layers", len(catalog.Environment),
	)

	// Shared WFS client so the outbound rate limit covers all modules
	wfsClient := wfs.NewClient(cfg, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	cadastreModule := cadastre.NewModule(cfg, wfsClient, log)
	urbanismModule := urbanism.NewModule(cfg, log)
	heritageModule := heritage.NewModule(cfg, catalog.Heritage, wfsClient, log)
	environmentModule := environment.NewModule(cfg, catalog.Environment, wfsClient, log)
	airportModule := airport.NewModule(cfg, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			cadastreModule,
			urbanismModule,
			heritageModule,
			environmentModule,
			airportModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
