package export

import (
	"io"

	"github.com/woozymasta/savedplaces/internal/places"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// XLSXSheet is the name of the single worksheet.
const XLSXSheet = "Places"

const degreesFormat = "0.00000000"

// WriteXLSX renders places as a spreadsheet with the CSV columns.
func WriteXLSX(w io.Writer, list []places.Place, opts Options) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(XLSXSheet)
	if err != nil {
		return eris.Wrap(err, "xlsx: add sheet")
	}

	header := sheet.AddRow()
	for _, title := range CSVHeader {
		header.AddCell().SetString(title)
	}

	for _, p := range list {
		row := sheet.AddRow()
		row.AddCell().SetString(p.Name)
		row.AddCell().SetFloatWithFormat(p.Latitude, degreesFormat)
		row.AddCell().SetFloatWithFormat(p.Longitude, degreesFormat)
		row.AddCell().SetString(p.SourceURL)
		row.AddCell().SetString(notes(p, opts))
	}

	return f.Write(w)
}
