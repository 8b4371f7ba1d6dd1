package main

import (
	"strings"
	"time"

	"github.com/yurifrl/cockpit/pkg/export"
	"github.com/yurifrl/cockpit/pkg/models"
)

type filters struct {
	startDate string
	endDate   string
	minAmount float64
	maxAmount float64
	kind      string
}

var paymentDateLayouts = []string{time.RFC3339Nano, "2006-01-02"}

func parsePaymentDate(value string) (time.Time, bool) {
	for _, layout := range paymentDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// toFilterFunc filters on payment date (YYYY/MM/DD, inclusive), net amount
// in reais and kind. Rows whose date cannot be read are dropped only when
// a date bound is set.
func (f *filters) toFilterFunc() export.FilterFunc[models.FormattedRow] {
	return func(r models.FormattedRow) bool {
		if f.startDate != "" || f.endDate != "" {
			date, ok := parsePaymentDate(r.PaymentDate.Actual)
			if !ok {
				return false
			}
			day := date.Format("2006/01/02")
			if f.startDate != "" && day < f.startDate {
				return false
			}
			if f.endDate != "" && day > f.endDate {
				return false
			}
		}
		net := float64(r.Net) / 100
		if f.minAmount != 0 && net < f.minAmount {
			return false
		}
		if f.maxAmount != 0 && net > f.maxAmount {
			return false
		}
		if f.kind != "" && !strings.EqualFold(string(r.Kind), f.kind) {
			return false
		}
		return true
	}
}

func (f *filters) apply(rows []models.FormattedRow) []models.FormattedRow {
	keep := f.toFilterFunc()
	out := make([]models.FormattedRow, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
