package places

import "github.com/woozymasta/savedplaces/internal/geo"

// Place is a feature with resolved coordinates, name and annotation.
type Place struct {
	Notes

	Name       string
	Annotation string // date, address and comment parts, without the URL
	SourceURL  string
	Latitude   float64
	Longitude  float64
	Ordinal    int // 1-based position in the input
}

// ResolveFeature resolves a feature at the given 1-based ordinal.
// It returns false when no coordinates can be found.
func ResolveFeature(f Feature, ordinal int) (Place, bool) {
	ll, ok := ResolveCoordinates(f)
	if !ok {
		return Place{}, false
	}

	notes := ResolveNotes(f)
	sourceURL, _ := f.URL()

	return Place{
		Notes:      notes,
		Name:       ResolveName(f, ordinal),
		Annotation: notes.Annotation(),
		SourceURL:  sourceURL,
		Latitude:   ll.Lat,
		Longitude:  ll.Lon,
		Ordinal:    ordinal,
	}, true
}

// AnnotationWithURL returns the annotation with the source URL folded in.
func (p Place) AnnotationWithURL() string {
	return p.Notes.AnnotationWithURL(p.SourceURL)
}

// LatText renders the latitude with fixed precision.
func (p Place) LatText() string {
	return geo.FormatDegrees(p.Latitude)
}

// LonText renders the longitude with fixed precision.
func (p Place) LonText() string {
	return geo.FormatDegrees(p.Longitude)
}

// InRange reports whether the coordinates are valid WGS84 degrees.
func (p Place) InRange() bool {
	return geo.InRange(p.Latitude, p.Longitude)
}
