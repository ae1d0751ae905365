package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/savedplaces/internal/places"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"
)

func samplePlaces() []places.Place {
	return []places.Place{
		{
			Notes: places.Notes{
				Date:    "2021-05-01",
				Address: "Madeira Dr, Brighton",
				Comment: "Fish & chips <here>",
			},
			Name:       "Brighton Palace Pier",
			Annotation: "Saved: 2021-05-01 | Address: Madeira Dr, Brighton | Fish & chips <here>",
			SourceURL:  "http://maps.google.com/?cid=1",
			Latitude:   50.82253,
			Longitude:  -0.1315,
			Ordinal:    1,
		},
		{
			Name:      "Saved Place 4",
			Latitude:  -33.8568,
			Longitude: 151.2153,
			Ordinal:   4,
		},
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"csv", "geojson", "gpx", "html", "xlsx", "yaml"}, Formats())
}

func TestLookup(t *testing.T) {
	_, err := Lookup("GPX")
	require.NoError(t, err)

	_, err = Lookup("kml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "kml"`)
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]string{
		"out/places.gpx":   "gpx",
		"places.CSV":       "csv",
		"launcher.htm":     "html",
		"places.html":      "html",
		"places.geojson":   "geojson",
		"places.json":      "geojson",
		"places.yml":       "yaml",
		"places.xlsx":      "xlsx",
		"places.txt":       "",
		"no-extension":     "",
		"/tmp/dir.gpx/out": "",
	}

	for path, want := range cases {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}

func TestWriteGPX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "gpx", samplePlaces(), Options{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `creator="google-saved-to-gpx"`)
	assert.Contains(t, out, `xmlns="http://www.topografix.com/GPX/1/1"`)
	assert.Contains(t, out, `xsi:schemaLocation="http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd"`)
	assert.Contains(t, out, `<wpt lat="50.82253000" lon="-0.13150000">`)
	assert.Contains(t, out, `<name>Brighton Palace Pier</name>`)
	assert.Contains(t, out, `Google Maps: http://maps.google.com/?cid=1 | Fish &amp; chips &lt;here&gt;</desc>`)
	assert.Contains(t, out, `<wpt lat="-33.85680000" lon="151.21530000">`)
	assert.Equal(t, 1, strings.Count(out, "<desc>"), "empty annotations have no desc")

	var doc gpxDocument
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Waypoints, 2)
	assert.Equal(t, "Saved Place 4", doc.Waypoints[1].Name)
}

func TestWriteGPX_CustomCreator(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGPX(&buf, nil, Options{Creator: "placeconv"}))
	assert.Contains(t, buf.String(), `creator="placeconv"`)
	assert.NotContains(t, buf.String(), "<wpt")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "csv", samplePlaces(), Options{}))

	assert.True(t, strings.HasPrefix(buf.String(), "name,latitude,longitude,url,notes\r\n"))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{
		"Brighton Palace Pier", "50.82253000", "-0.13150000", "http://maps.google.com/?cid=1",
		"Saved: 2021-05-01 | Address: Madeira Dr, Brighton | Fish & chips <here>",
	}, rows[1])
	assert.Equal(t, []string{"Saved Place 4", "-33.85680000", "151.21530000", "", ""}, rows[2])
}

func TestWriteCSV_NotesIncludeURL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, samplePlaces()[:1], Options{NotesIncludeURL: true}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t,
		"Saved: 2021-05-01 | Address: Madeira Dr, Brighton | Google Maps: http://maps.google.com/?cid=1 | Fish & chips <here>",
		rows[1][4])
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "html", samplePlaces(), Options{}))
	out := buf.String()

	assert.Contains(t, out, "<title>Saved Places → Apple Maps</title>")
	assert.Contains(t, out, "border-collapse: collapse")
	assert.Contains(t, out, `href="https://maps.apple.com/?ll=50.82253000,-0.13150000&amp;q=Brighton&#43;Palace&#43;Pier"`)
	assert.Contains(t, out, `<a href="http://maps.google.com/?cid=1" target="_blank">Google link</a>`)
	assert.Contains(t, out, "<td>2021-05-01</td>")
	assert.Contains(t, out, "<td>2</td>")
	assert.Equal(t, 1, strings.Count(out, "Google link"))
}

func TestWriteHTML_EscapesNames(t *testing.T) {
	list := []places.Place{{Name: `<script>alert("x")</script>`, Latitude: 1, Longitude: 2}}

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, list, Options{Title: "Mine & Yours"}))
	out := buf.String()

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "<title>Mine &amp; Yours</title>")
}

func TestWriteHTML_Minify(t *testing.T) {
	var plain, minified bytes.Buffer
	require.NoError(t, WriteHTML(&plain, samplePlaces(), Options{}))
	require.NoError(t, WriteHTML(&minified, samplePlaces(), Options{Minify: true}))

	assert.Less(t, minified.Len(), plain.Len())
	assert.Contains(t, minified.String(), "Brighton Palace Pier")
	assert.Contains(t, minified.String(), "Open in Apple Maps")
}

func TestDeepLink(t *testing.T) {
	p := places.Place{Name: "Café & Bar", Latitude: 1.5, Longitude: -2.25}

	assert.Equal(t,
		"https://maps.apple.com/?ll=1.50000000,-2.25000000&q=Caf%C3%A9+%26+Bar",
		DeepLink("https://maps.apple.com/", p))
	assert.Equal(t,
		"https://example.org/map?z=3&ll=1.50000000,-2.25000000&q=Caf%C3%A9+%26+Bar",
		DeepLink("https://example.org/map?z=3", p))
}

func TestWriteGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "geojson", samplePlaces(), Options{}))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fc))

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "Point", fc.Features[0].Geometry.Type)
	assert.Equal(t, []float64{-0.1315, 50.82253}, fc.Features[0].Geometry.Coordinates)
	assert.Equal(t, "Brighton Palace Pier", fc.Features[0].Properties["name"])
	assert.Equal(t, "http://maps.google.com/?cid=1", fc.Features[0].Properties["url"])
	assert.Equal(t, float64(4), fc.Features[1].Properties["ordinal"])
	assert.NotContains(t, fc.Features[1].Properties, "url")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "yaml", samplePlaces(), Options{}))

	var out []yamlPlace
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Brighton Palace Pier", out[0].Name)
	assert.Equal(t, 50.82253, out[0].Latitude)
	assert.Equal(t, "Madeira Dr, Brighton", out[0].Address)
	assert.Equal(t, 4, out[1].Ordinal)
	assert.NotContains(t, buf.String(), "url: \"\"")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "xlsx", samplePlaces(), Options{}))

	f, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	sheet, ok := f.Sheet[XLSXSheet]
	require.True(t, ok)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "name", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "notes", sheet.Rows[0].Cells[4].String())
	assert.Equal(t, "Brighton Palace Pier", sheet.Rows[1].Cells[0].String())
	assert.Equal(t, "http://maps.google.com/?cid=1", sheet.Rows[1].Cells[3].String())

	lat, err := sheet.Rows[1].Cells[1].Float()
	require.NoError(t, err)
	assert.InDelta(t, 50.82253, lat, 1e-9)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "places.csv")
	require.NoError(t, WriteFile(path, "csv", samplePlaces(), Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Brighton Palace Pier")
}

func TestWriteFile_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.kml")
	err := WriteFile(path, "kml", samplePlaces(), Options{})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file is created for an unknown format")
}

func TestWriteFile_FailureKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.gpx")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	require.Error(t, WriteFile(path, "kml", samplePlaces(), Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}
