// Package layers defines the queryable geodata layer catalog and the
// normalized summary types shared by the summary endpoints.
package layers

import (
	"fmt"
	"os"

	"github.com/Tanvoile/site-geo-mvp/platform/validator"

	"gopkg.in/yaml.v3"
)

// Service identifies which upstream serves a layer.
type Service string

const (
	// ServiceAtlas is the Atlas des Patrimoines MapServer WFS.
	ServiceAtlas Service = "atlas"
	// ServiceINPN is the INPN Carmen WFS.
	ServiceINPN Service = "inpn"
)

// Def describes one queryable layer.
type Def struct {
	Key      string  `yaml:"key" validate:"required"`
	Pretty   string  `yaml:"pretty" validate:"required"`
	Source   string  `yaml:"source" validate:"required"`
	TypeName string  `yaml:"typename" validate:"required"`
	Service  Service `yaml:"service" validate:"required,oneof=atlas inpn"`
}

// Catalog groups the layers each summary endpoint queries.
type Catalog struct {
	Heritage    []Def `yaml:"heritage"`
	Environment []Def `yaml:"environment"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Heritage: []Def{
			{Key: "patrimoine", Pretty: "Protections patrimoniales", Source: "Atlas des Patrimoines", TypeName: "MD_865", Service: ServiceAtlas},
		},
		Environment: []Def{
			{Key: "natura2000_zps", Pretty: "Natura 2000 (zones de protection spéciale)", Source: "INPN (Carmen)", TypeName: "Zones_de_protection_speciale", Service: ServiceINPN},
			{Key: "natura2000_sic", Pretty: "Natura 2000 (sites d'importance communautaire)", Source: "INPN (Carmen)", TypeName: "SIC", Service: ServiceINPN},
			{Key: "znieff1", Pretty: "ZNIEFF de type I", Source: "INPN (Carmen)", TypeName: "znieff1", Service: ServiceINPN},
			{Key: "znieff2", Pretty: "ZNIEFF de type II", Source: "INPN (Carmen)", TypeName: "znieff2", Service: ServiceINPN},
			{Key: "reserves_naturelles", Pretty: "Réserves naturelles nationales", Source: "INPN (Carmen)", TypeName: "Reserves_naturelles_nationales", Service: ServiceINPN},
			{Key: "parcs_nationaux", Pretty: "Parcs nationaux", Source: "INPN (Carmen)", TypeName: "Parcs_nationaux", Service: ServiceINPN},
		},
	}
}

// Load reads a catalog override from a YAML file. Sections present in the
// file replace the corresponding defaults; absent sections keep them. An
// empty path returns the defaults unchanged.
func Load(path string, val *validator.Validator) (Catalog, error) {
	catalog := Default()
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read layer catalog %s: %w", path, err)
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Catalog{}, fmt.Errorf("parse layer catalog %s: %w", path, err)
	}

	if len(override.Heritage) > 0 {
		catalog.Heritage = override.Heritage
	}
	if len(override.Environment) > 0 {
		catalog.Environment = override.Environment
	}

	for _, def := range catalog.Heritage {
		if err := val.Struct(def); err != nil {
			return Catalog{}, fmt.Errorf("layer catalog %s: heritage entry %q: %w", path, def.Key, err)
		}
	}
	for _, def := range catalog.Environment {
		if err := val.Struct(def); err != nil {
			return Catalog{}, fmt.Errorf("layer catalog %s: environment entry %q: %w", path, def.Key, err)
		}
	}

	return catalog, nil
}
