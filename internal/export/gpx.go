package export

import (
	"encoding/xml"
	"io"

	"github.com/woozymasta/savedplaces/internal/places"
)

const (
	gpxNamespace      = "http://www.topografix.com/GPX/1/1"
	gpxXSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	gpxSchemaLocation = "http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd"
)

type gpxDocument struct {
	XMLName        xml.Name      `xml:"gpx"`
	Version        string        `xml:"version,attr"`
	Creator        string        `xml:"creator,attr"`
	XMLNS          string        `xml:"xmlns,attr"`
	XMLNSXSI       string        `xml:"xmlns:xsi,attr"`
	SchemaLocation string        `xml:"xsi:schemaLocation,attr"`
	Waypoints      []gpxWaypoint `xml:"wpt"`
}

// Coordinates are kept as text to preserve fixed precision.
type gpxWaypoint struct {
	Lat  string `xml:"lat,attr"`
	Lon  string `xml:"lon,attr"`
	Name string `xml:"name"`
	Desc string `xml:"desc,omitempty"`
}

// WriteGPX renders places as GPX 1.1 waypoints.
// The waypoint description carries the annotation with the source URL folded in.
func WriteGPX(w io.Writer, list []places.Place, opts Options) error {
	doc := gpxDocument{
		Version:        "1.1",
		Creator:        opts.withDefaults().Creator,
		XMLNS:          gpxNamespace,
		XMLNSXSI:       gpxXSINamespace,
		SchemaLocation: gpxSchemaLocation,
		Waypoints:      make([]gpxWaypoint, 0, len(list)),
	}

	for _, p := range list {
		doc.Waypoints = append(doc.Waypoints, gpxWaypoint{
			Lat:  p.LatText(),
			Lon:  p.LonText(),
			Name: p.Name,
			Desc: p.AnnotationWithURL(),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}
