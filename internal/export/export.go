// Package export renders resolved places into output formats.
package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/woozymasta/savedplaces/internal/places"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

// DefaultFormat is used when neither a format nor a known output extension is given.
const DefaultFormat = "gpx"

// Options tune the serializers. Zero values fall back to defaults.
type Options struct {
	Title           string // HTML launcher title
	Creator         string // GPX creator attribute
	MapsURL         string // base URL of deep links in the HTML launcher
	Minify          bool   // minify the HTML launcher
	NotesIncludeURL bool   // fold the source URL into CSV and XLSX notes
}

// Defaults for Options.
const (
	DefaultTitle   = "Saved Places → Apple Maps"
	DefaultCreator = "google-saved-to-gpx"
	DefaultMapsURL = "https://maps.apple.com/"
)

// Writer renders places to w.
type Writer func(w io.Writer, list []places.Place, opts Options) error

var writers = map[string]Writer{
	"csv":     WriteCSV,
	"geojson": WriteGeoJSON,
	"gpx":     WriteGPX,
	"html":    WriteHTML,
	"xlsx":    WriteXLSX,
	"yaml":    WriteYAML,
}

var extensions = map[string]string{
	".csv":     "csv",
	".geojson": "geojson",
	".json":    "geojson",
	".gpx":     "gpx",
	".htm":     "html",
	".html":    "html",
	".xlsx":    "xlsx",
	".yaml":    "yaml",
	".yml":     "yaml",
}

// Formats lists the supported format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the writer registered for format.
func Lookup(format string) (Writer, error) {
	w, ok := writers[strings.ToLower(format)]
	if !ok {
		return nil, eris.Errorf("export: unknown format %q", format)
	}
	return w, nil
}

// FormatFromPath guesses the format from the file extension of path.
// It returns an empty string for unknown extensions.
func FormatFromPath(path string) string {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Write renders list in format to w.
func Write(w io.Writer, format string, list []places.Place, opts Options) error {
	render, err := Lookup(format)
	if err != nil {
		return err
	}

	if err := render(w, list, opts.withDefaults()); err != nil {
		return eris.Wrapf(err, "export: render %s", format)
	}
	return nil
}

// WriteFile renders list in format into the file at path, creating parent directories.
// The file is only created once the whole document has rendered.
func WriteFile(path, format string, list []places.Place, opts Options) (err error) {
	var buf bytes.Buffer
	if err := Write(&buf, format, list, opts); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return eris.Wrap(err, "export: create output directory")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create output file")
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
			if err == nil {
				err = eris.Wrap(closeErr, "export: close output file")
			}
		}
	}()

	if _, err := buf.WriteTo(f); err != nil {
		return eris.Wrap(err, "export: write output file")
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Creator == "" {
		o.Creator = DefaultCreator
	}
	if o.MapsURL == "" {
		o.MapsURL = DefaultMapsURL
	}
	return o
}

// notes returns the annotation used by tabular formats.
func notes(p places.Place, opts Options) string {
	if opts.NotesIncludeURL {
		return p.AnnotationWithURL()
	}
	return p.Annotation
}
