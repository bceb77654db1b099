// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// UpstreamConfig provides settings shared by all outbound geodata clients.
type UpstreamConfig interface {
	GetUpstreamTimeout() time.Duration
	GetUpstreamRPS() float64
}

// CadastreConfig provides settings for the cadastral sheet module.
type CadastreConfig interface {
	UpstreamConfig
	GetCadastreWFSBase() string
	GetCadastreTypeName() string
	GetCadastreWFSVersion() string
}

// UrbanismConfig provides settings for the urbanism (GPU) module.
type UrbanismConfig interface {
	UpstreamConfig
	GetGPUBase() string
}

// HeritageConfig provides settings for the Atlas des Patrimoines module.
type HeritageConfig interface {
	UpstreamConfig
	GetAtlasWFSBase() string
	GetHeritageDownloadTypeName() string
}

// EnvironmentConfig provides settings for the INPN environment module.
type EnvironmentConfig interface {
	UpstreamConfig
	GetINPNWFSBase() string
}

// AirportConfig provides settings for the airport proximity module.
type AirportConfig interface {
	GetAirportKMLPath() string
}

// CatalogConfig provides settings for the layer catalog loader.
type CatalogConfig interface {
	GetLayerCatalogPath() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                      string
	HTTPAddr                 string
	CORSAllowAll             bool
	CORSOrigins              []string
	CORSAllowCreds           bool
	CadastreWFSBase          string
	CadastreTypeName         string
	CadastreWFSVersion       string
	GPUBase                  string
	AtlasWFSBase             string
	HeritageDownloadTypeName string
	INPNWFSBase              string
	AirportKMLPath           string
	LayerCatalogPath         string
	UpstreamTimeout          time.Duration
	UpstreamRPS              float64
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// UpstreamConfig implementation
func (c *Config) GetUpstreamTimeout() time.Duration { return c.UpstreamTimeout }
func (c *Config) GetUpstreamRPS() float64           { return c.UpstreamRPS }

// CadastreConfig implementation
func (c *Config) GetCadastreWFSBase() string    { return c.CadastreWFSBase }
func (c *Config) GetCadastreTypeName() string   { return c.CadastreTypeName }
func (c *Config) GetCadastreWFSVersion() string { return c.CadastreWFSVersion }

// UrbanismConfig implementation
func (c *Config) GetGPUBase() string { return c.GPUBase }

// HeritageConfig implementation
func (c *Config) GetAtlasWFSBase() string             { return c.AtlasWFSBase }
func (c *Config) GetHeritageDownloadTypeName() string { return c.HeritageDownloadTypeName }

// EnvironmentConfig implementation
func (c *Config) GetINPNWFSBase() string { return c.INPNWFSBase }

// AirportConfig implementation
func (c *Config) GetAirportKMLPath() string { return c.AirportKMLPath }

// CatalogConfig implementation
func (c *Config) GetLayerCatalogPath() string { return c.LayerCatalogPath }

// Load reads configuration from environment variables.
//
// Upstream endpoint values may be left empty to disable a module; the
// affected endpoints then answer with a server error naming the missing
// setting instead of failing the whole process at startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                      getEnv("APP_ENV", "development"),
		HTTPAddr:                 getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:             corsAllowAll,
		CORSOrigins:              corsOrigins,
		CORSAllowCreds:           strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		CadastreWFSBase:          getEnv("CADASTRE_WFS_BASE", "https://data.geopf.fr/wfs/ows"),
		CadastreTypeName:         getEnv("CADASTRE_TYPENAME", "CADASTRALPARCELS.PARCELLAIRE_EXPRESS:feuille"),
		CadastreWFSVersion:       getEnv("CADASTRE_WFS_VERSION", "2.0.0"),
		GPUBase:                  getEnv("GPU_BASE", "https://apicarto.ign.fr/api/gpu"),
		AtlasWFSBase:             getEnv("ATLAS_WFS_BASE", "http://atlas.patrimoines.culture.fr/cgi-bin/mapserv?map=/home/atlas-mapserver/production/var/data/MD_865/MD_865.map"),
		HeritageDownloadTypeName: getEnv("HERITAGE_DOWNLOAD_TYPENAME", "MD_865"),
		INPNWFSBase:              getEnv("INPN_WFS_BASE", "https://ws.carmencarto.fr/WFS/119/fxx_inpn"),
		AirportKMLPath:           getEnv("AIRPORT_KML_PATH", "data/aerodromes_fr.kmz"),
		LayerCatalogPath:         getEnv("LAYER_CATALOG_PATH", ""),
		UpstreamTimeout:          mustDuration(getEnv("UPSTREAM_TIMEOUT", "15s")),
		UpstreamRPS:              mustFloat(getEnv("UPSTREAM_RPS", "8")),
	}

	if cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be a positive duration")
	}
	if cfg.UpstreamRPS <= 0 {
		return nil, fmt.Errorf("UPSTREAM_RPS must be a positive number")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
