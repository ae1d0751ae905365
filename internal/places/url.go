package places

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Captures: 1=lat, 2=lon. Scans the raw URL for q=lat,lon with an unencoded comma.
	rawQueryCoordsRegex = regexp.MustCompile(`[?&]q=([-+]?\d+(?:\.\d+)?),([-+]?\d+(?:\.\d+)?)`)

	// Captures: 1=lat, 2=lon. The decoded q value must be nothing but a pair.
	coordsTextRegex = regexp.MustCompile(`^\s*([-+]?\d+(?:\.\d+)?)\s*,\s*([-+]?\d+(?:\.\d+)?)\s*$`)
)

// mapsArtifactPrefix is prepended to q by some map services.
const mapsArtifactPrefix = "m,"

// LatLon is a coordinate pair in decimal degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

// ParseURLCoordinates extracts a latitude/longitude pair from the q
// parameter of a map-service URL. Malformed input yields false.
func ParseURLCoordinates(raw string) (LatLon, bool) {
	if raw == "" {
		return LatLon{}, false
	}

	if m := rawQueryCoordsRegex.FindStringSubmatch(raw); m != nil {
		if ll, ok := parsePair(m[1], m[2]); ok {
			return ll, true
		}
	}

	q, ok := queryText(raw)
	if !ok {
		return LatLon{}, false
	}

	return parseCoordsText(q)
}

// ParseURLName extracts a free-text label from the q parameter of a
// map-service URL. Pure coordinates are not a name.
func ParseURLName(raw string) (string, bool) {
	q, ok := queryText(raw)
	if !ok {
		return "", false
	}

	if coordsTextRegex.MatchString(q) {
		return "", false
	}

	if len(q) >= len(mapsArtifactPrefix) && strings.EqualFold(q[:len(mapsArtifactPrefix)], mapsArtifactPrefix) {
		q = strings.TrimSpace(q[len(mapsArtifactPrefix):])
	}

	if q == "" {
		return "", false
	}
	return q, true
}

// queryText returns the first non-blank q query value, decoded and trimmed.
// The value is form-decoded once as a query pair and once more as text, so
// double-encoded commas resolve and a decoded plus becomes a space.
func queryText(raw string) (string, bool) {
	for _, pair := range strings.Split(rawQuery(raw), "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || value == "" {
			continue
		}
		if formUnescape(key) != "q" {
			continue
		}
		return strings.TrimSpace(formUnescape(formUnescape(value))), true
	}
	return "", false
}

// rawQuery returns the text between the first '?' and any '#' fragment.
// The rest of the URL is not validated.
func rawQuery(raw string) string {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	_, query, ok := strings.Cut(raw, "?")
	if !ok {
		return ""
	}
	return query
}

// formUnescape turns '+' into a space and decodes %XX escapes.
// Invalid escapes are kept verbatim and invalid UTF-8 becomes U+FFFD.
func formUnescape(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return s
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			buf = append(buf, ' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			buf = append(buf, c)
		}
	}
	return strings.ToValidUTF8(string(buf), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func parseCoordsText(s string) (LatLon, bool) {
	m := coordsTextRegex.FindStringSubmatch(s)
	if m == nil {
		return LatLon{}, false
	}
	return parsePair(m[1], m[2])
}

func parsePair(latStr, lonStr string) (LatLon, bool) {
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lon, err2 := strconv.ParseFloat(lonStr, 64)
	if err1 != nil || err2 != nil {
		return LatLon{}, false
	}
	return LatLon{Lat: lat, Lon: lon}, true
}
