// Package places resolves exported "saved places" records into coordinates,
// display names and annotations.
//
// Input records are loosely shaped GeoJSON features: any field may be missing,
// null or of an unexpected type. Every lookup in this package degrades to
// "not present" instead of failing, only a malformed document is an error.
package places

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Property keys probed on every feature, in priority order.
var (
	urlKeys     = []string{"google_maps_url", "Google Maps URL"}
	commentKeys = []string{"Comment", "comment"}
	nameKeys    = []string{"name", "Name", "title", "Title", "label", "Label"}
)

// Feature is a single input record.
type Feature struct {
	raw gjson.Result
}

// NewFeature wraps a parsed JSON value as a Feature.
func NewFeature(raw gjson.Result) Feature {
	return Feature{raw: raw}
}

// ParseFeature parses a single JSON feature object.
func ParseFeature(data string) Feature {
	return Feature{raw: gjson.Parse(data)}
}

// Geometry returns the geometry object, or an empty result when absent or not an object.
func (f Feature) Geometry() gjson.Result {
	return field(f.raw, "geometry")
}

// Properties returns the properties object, or an empty result when absent or not an object.
func (f Feature) Properties() gjson.Result {
	return field(f.raw, "properties")
}

// Location returns properties.location when it is an object.
func (f Feature) Location() gjson.Result {
	return field(f.Properties(), "location")
}

// URL returns the map-service URL of the feature.
// The first present value among the URL keys wins and it must be a string.
func (f Feature) URL() (string, bool) {
	props := f.Properties()
	for _, key := range urlKeys {
		v := field(props, key)
		if _, ok := present(v); !ok {
			continue
		}
		if v.Type != gjson.String {
			return "", false
		}
		return v.Str, true
	}

	return "", false
}

// field looks up key on obj by exact name. Keys are compared literally so
// property names containing spaces or path characters are safe.
// Duplicate keys resolve to the last occurrence, as encoding/json does.
func field(obj gjson.Result, key string) gjson.Result {
	if !obj.IsObject() {
		return gjson.Result{}
	}

	var out gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			out = v
		}
		return true
	})

	return out
}

// firstPresent returns the text of the first present value among keys.
func firstPresent(obj gjson.Result, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := present(field(obj, key)); ok {
			return s, true
		}
	}
	return "", false
}

// present reports whether v carries a non-empty value and renders it as text.
// Non-string scalars and containers render as their JSON text.
func present(v gjson.Result) (string, bool) {
	switch v.Type {
	case gjson.String:
		return v.Str, v.Str != ""
	case gjson.Number:
		if v.Num == 0 {
			return "", false
		}
		if v.Raw != "" {
			return v.Raw, true
		}
		return strconv.FormatFloat(v.Num, 'f', -1, 64), true
	case gjson.True:
		return "true", true
	case gjson.JSON:
		if v.IsArray() && len(v.Array()) == 0 {
			return "", false
		}
		if v.IsObject() && len(v.Map()) == 0 {
			return "", false
		}
		return v.Raw, true
	default:
		return "", false
	}
}
