//go:build !noxlsx

package manifest

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetAvailable reports whether the xlsx backend is compiled in.
// Build with -tags noxlsx to leave it out.
func SpreadsheetAvailable() bool {
	return true
}

func newSpreadsheetEncoder() Encoder {
	return XLSXEncoder{}
}

// XLSXEncoder writes rows to the first sheet with a bold header row.
type XLSXEncoder struct{}

func (XLSXEncoder) Encode(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := r.Values()
		record := make([]interface{}, len(vals))
		for j, v := range vals {
			record[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return err
		}
	}
	return f.Write(w)
}
