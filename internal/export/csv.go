package export

import (
	"encoding/csv"
	"io"

	"github.com/woozymasta/savedplaces/internal/places"
)

// CSVHeader is the column order of the CSV and XLSX outputs.
var CSVHeader = []string{"name", "latitude", "longitude", "url", "notes"}

// WriteCSV renders places as one CSV row each, with a header row.
func WriteCSV(w io.Writer, list []places.Place, opts Options) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, p := range list {
		row := []string{p.Name, p.LatText(), p.LonText(), p.SourceURL, notes(p, opts)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
