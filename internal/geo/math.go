// Package geo holds coordinate helpers shared by the resolver and the serializers.
package geo

import (
	"math"
	"strconv"
)

// PlaceholderEpsilon is the distance from zero under which both axes
// are treated as an unset (0,0) coordinate.
const PlaceholderEpsilon = 1e-12

// Precision is the number of decimals used when rendering degrees as text.
const Precision = 8

// IsPlaceholder reports whether lat/lon is the (0,0) "not set" marker.
func IsPlaceholder(lat, lon float64) bool {
	return math.Abs(lat) < PlaceholderEpsilon && math.Abs(lon) < PlaceholderEpsilon
}

// FormatDegrees renders a coordinate with fixed 8 decimal precision.
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', Precision, 64)
}

// InRange reports whether lat is within [-90, 90] and lon within [-180, 180].
// Out of range values are never clamped, callers only use this for diagnostics.
func InRange(lat, lon float64) bool {
	return math.Abs(lat) <= 90 && math.Abs(lon) <= 180
}
