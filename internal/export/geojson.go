package export

import (
	"encoding/json"
	"io"

	"github.com/woozymasta/savedplaces/internal/places"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// WriteGeoJSON renders places as a normalized FeatureCollection of Points.
func WriteGeoJSON(w io.Writer, list []places.Place, _ Options) error {
	fc := geojson.NewFeatureCollection()

	for _, p := range list {
		f := geojson.NewFeature(orb.Point{p.Longitude, p.Latitude})
		f.Properties["name"] = p.Name
		f.Properties["ordinal"] = p.Ordinal
		setNonEmpty(f.Properties, "annotation", p.Annotation)
		setNonEmpty(f.Properties, "url", p.SourceURL)
		setNonEmpty(f.Properties, "date", p.Date)
		setNonEmpty(f.Properties, "address", p.Address)
		setNonEmpty(f.Properties, "comment", p.Comment)
		fc.Append(f)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))
	return err
}

func setNonEmpty(props geojson.Properties, key, value string) {
	if value != "" {
		props[key] = value
	}
}
