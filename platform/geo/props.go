package geo

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// Coalesce returns the first value present in props among the candidate
// keys. Each candidate is probed as given, then lowercase, then uppercase,
// so the same lookup works across providers that disagree on field casing.
// Keys holding nil or an empty string count as absent.
func Coalesce(props geojson.Properties, keys ...string) (interface{}, bool) {
	for _, key := range keys {
		for _, variant := range []string{key, strings.ToLower(key), strings.ToUpper(key)} {
			value, ok := props[variant]
			if !ok || value == nil {
				continue
			}
			if text, isText := value.(string); isText && text == "" {
				continue
			}
			return value, true
		}
	}
	return nil, false
}

// StringProp coalesces candidate keys into a string, falling back to def.
// Providers encode some text fields as numbers; those are formatted rather
// than dropped.
func StringProp(props geojson.Properties, def string, keys ...string) string {
	value, ok := Coalesce(props, keys...)
	if !ok {
		return def
	}

	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return def
	}
}

// IDString renders a GeoJSON feature id, which providers encode as either
// a string or a number.
func IDString(id interface{}) string {
	switch typed := id.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	default:
		return ""
	}
}
