package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurifrl/cockpit/pkg/models"
)

func row(id, date string, net int64, kind models.Kind) models.FormattedRow {
	return models.FormattedRow{ID: id, Net: net, Kind: kind, PaymentDate: models.PaymentDate{Actual: date}}
}

func ids(rows []models.FormattedRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestFiltersApply(t *testing.T) {
	rows := []models.FormattedRow{
		row("1", "2018-03-01T03:00:00.000Z", 28860, models.KindCredit),
		row("2", "2018-03-05", -10367, models.KindTED),
		row("3", "2018-03-06", -2500, models.KindInterRecipient),
		row("4", "not a date", 0, models.KindOther),
	}

	tests := []struct {
		name    string
		filters filters
		want    []string
	}{
		{"no filters", filters{}, []string{"1", "2", "3", "4"}},
		{"date range is inclusive", filters{startDate: "2018/03/05", endDate: "2018/03/06"}, []string{"2", "3"}},
		{"minimum net", filters{minAmount: -50}, []string{"1", "3", "4"}},
		{"maximum net", filters{maxAmount: -50}, []string{"2"}},
		{"kind ignores case", filters{kind: "TED"}, []string{"2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filters.apply(rows)))
		})
	}
}
