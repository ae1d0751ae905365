package places

import (
	"github.com/woozymasta/savedplaces/internal/geo"

	"github.com/tidwall/gjson"
)

// ResolveCoordinates picks the authoritative coordinates of a feature.
// A non-placeholder Point geometry wins over the map-service URL.
func ResolveCoordinates(f Feature) (LatLon, bool) {
	if ll, ok := pointCoordinates(f.Geometry()); ok {
		return ll, true
	}

	if raw, ok := f.URL(); ok {
		return ParseURLCoordinates(raw)
	}

	return LatLon{}, false
}

// pointCoordinates reads a GeoJSON Point, coordinates are [lon, lat, ...].
func pointCoordinates(g gjson.Result) (LatLon, bool) {
	typ := field(g, "type")
	if typ.Type != gjson.String || typ.Str != "Point" {
		return LatLon{}, false
	}

	coords := field(g, "coordinates")
	if !coords.IsArray() {
		return LatLon{}, false
	}

	items := coords.Array()
	if len(items) < 2 || items[0].Type != gjson.Number || items[1].Type != gjson.Number {
		return LatLon{}, false
	}

	lon, lat := items[0].Num, items[1].Num
	if geo.IsPlaceholder(lat, lon) {
		return LatLon{}, false
	}

	return LatLon{Lat: lat, Lon: lon}, true
}
