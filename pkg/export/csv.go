package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yurifrl/cockpit/pkg/models"
)

// CSV writes the rows accepted by filter, header first.
func CSV(rows []models.FormattedRow, filter FilterFunc[models.FormattedRow]) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, rec := range Records(rows, filter) {
		if err := w.Write(rec.Values()); err != nil {
			return nil, fmt.Errorf("error writing operation %s: %w", rec.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
