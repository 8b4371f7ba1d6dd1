package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/yurifrl/cockpit/pkg/models"
)

const sheetName = "Operations"

// XLSX writes the rows accepted by filter into a single-sheet workbook.
func XLSX(rows []models.FormattedRow, filter FilterFunc[models.FormattedRow]) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}

	if err := writeRow(f, 1, Header); err != nil {
		return nil, err
	}
	for i, rec := range Records(rows, filter) {
		if err := writeRow(f, i+2, rec.Values()); err != nil {
			return nil, fmt.Errorf("error writing operation %s: %w", rec.ID, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, n int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(sheetName, cell, &row)
}

// Write dispatches to CSV or XLSX.
func Write(format Format, rows []models.FormattedRow, filter FilterFunc[models.FormattedRow]) ([]byte, error) {
	switch format {
	case FormatCSV:
		return CSV(rows, filter)
	case FormatXLSX:
		return XLSX(rows, filter)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
