// Package export writes formatted rows as CSV or XLSX. Both formats are
// built from the same Record so that what is downloaded matches what the
// table shows.
package export

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/yurifrl/cockpit/pkg/models"
)

// ErrUnknownFormat is returned for export formats other than csv and xlsx.
var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

type FilterFunc[T any] func(T) bool

// Header lists the exported columns in order.
var Header = []string{
	"id",
	"payment_date",
	"original_payment_date",
	"transaction_id",
	"type",
	"movement_type",
	"kind",
	"installment",
	"source_id",
	"target_id",
	"outcoming",
	"outgoing",
	"net",
}

// Record is the flat export shape of a formatted row. Outcoming and
// Outgoing are blank when the side cannot be displayed.
type Record struct {
	ID                  string
	PaymentDate         string
	OriginalPaymentDate string
	TransactionID       string
	Type                string
	MovementType        string
	Kind                string
	Installment         string
	SourceID            string
	TargetID            string
	Outcoming           string
	Outgoing            string
	Net                 string
}

// Values returns the record in Header order.
func (r Record) Values() []string {
	return []string{
		r.ID,
		r.PaymentDate,
		r.OriginalPaymentDate,
		r.TransactionID,
		r.Type,
		r.MovementType,
		r.Kind,
		r.Installment,
		r.SourceID,
		r.TargetID,
		r.Outcoming,
		r.Outgoing,
		r.Net,
	}
}

// NewRecord flattens a single row.
func NewRecord(row models.FormattedRow) Record {
	rec := Record{
		ID:                  row.ID,
		PaymentDate:         row.PaymentDate.Actual,
		OriginalPaymentDate: row.PaymentDate.Original,
		TransactionID:       row.TransactionID,
		Type:                row.Type,
		MovementType:        row.MovementType,
		Kind:                string(row.Kind),
		SourceID:            row.SourceID,
		TargetID:            row.TargetID,
		Outcoming:           sideTotal(row.Outcoming),
		Outgoing:            sideTotal(row.Outgoing),
		Net:                 amount(row.Net),
	}
	if row.Installment != nil {
		rec.Installment = strconv.Itoa(*row.Installment)
	}
	return rec
}

// Records flattens rows, keeping only those accepted by filter.
func Records(rows []models.FormattedRow, filter FilterFunc[models.FormattedRow]) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		if filter == nil || filter(r) {
			out = append(out, NewRecord(r))
		}
	}
	return out
}

func sideTotal(legs models.Legs) string {
	total, ok := legs.Total()
	if !ok {
		return ""
	}
	return amount(total)
}

func amount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
