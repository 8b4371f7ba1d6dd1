// Package summary aggregates formatted rows the way the balance page totals
// them. It is pure: build it from rows, read it, throw it away.
package summary

import (
	"github.com/yurifrl/cockpit/pkg/models"
)

// Summary holds per-kind counts and cash-flow totals. Sides that cannot be
// displayed are counted in Suppressed and left out of the totals.
type Summary struct {
	Rows       int                 `json:"rows"`
	ByKind     map[models.Kind]int `json:"byKind"`
	Outcoming  int64               `json:"outcoming"`
	Outgoing   int64               `json:"outgoing"`
	Net        int64               `json:"net"`
	Suppressed int                 `json:"suppressed"`
}

// Build walks rows once and accumulates the totals.
func Build(rows []models.FormattedRow) *Summary {
	s := &Summary{ByKind: make(map[models.Kind]int, len(models.Kinds))}

	for _, r := range rows {
		s.Rows++
		s.ByKind[r.Kind]++
		s.Net += r.Net

		if total, ok := r.Outcoming.Total(); ok {
			s.Outcoming += total
		} else {
			s.Suppressed++
		}
		if total, ok := r.Outgoing.Total(); ok {
			s.Outgoing += total
		} else {
			s.Suppressed++
		}
	}

	return s
}

// Count returns how many rows resolved to kind.
func (s *Summary) Count(kind models.Kind) int {
	return s.ByKind[kind]
}

// Kinds returns the kinds present in the summary, in classification order.
func (s *Summary) Kinds() []models.Kind {
	out := make([]models.Kind, 0, len(s.ByKind))
	for _, k := range models.Kinds {
		if s.ByKind[k] > 0 {
			out = append(out, k)
		}
	}
	return out
}
