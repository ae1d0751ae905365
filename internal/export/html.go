package export

import (
	"bytes"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/woozymasta/savedplaces/assets"
	"github.com/woozymasta/savedplaces/internal/places"

	"github.com/rotisserie/eris"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	mhtml "github.com/tdewolff/minify/v2/html"
)

var launcherTemplate = template.Must(template.New("launcher").Parse(assets.Launcher))

type launcherPage struct {
	Title string
	Style template.CSS
	Rows  []launcherRow
}

type launcherRow struct {
	Index     int
	Name      string
	MapsURL   string
	SourceURL string
	Date      string
}

// WriteHTML renders an HTML launcher page with one deep link per place.
func WriteHTML(w io.Writer, list []places.Place, opts Options) error {
	opts = opts.withDefaults()

	page := launcherPage{
		Title: opts.Title,
		Style: template.CSS(assets.Style),
		Rows:  make([]launcherRow, 0, len(list)),
	}

	for i, p := range list {
		page.Rows = append(page.Rows, launcherRow{
			Index:     i + 1,
			Name:      p.Name,
			MapsURL:   DeepLink(opts.MapsURL, p),
			SourceURL: p.SourceURL,
			Date:      p.Date,
		})
	}

	var buf bytes.Buffer
	if err := launcherTemplate.Execute(&buf, page); err != nil {
		return eris.Wrap(err, "html: execute template")
	}

	if !opts.Minify {
		_, err := buf.WriteTo(w)
		return err
	}

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", mhtml.Minify)

	if err := m.Minify("text/html", w, &buf); err != nil {
		return eris.Wrap(err, "html: minify")
	}
	return nil
}

// DeepLink builds a map application link centred on the place.
func DeepLink(base string, p places.Place) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "ll=" + p.LatText() + "," + p.LonText() + "&q=" + url.QueryEscape(p.Name)
}
