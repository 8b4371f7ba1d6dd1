// Package render turns formatted rows into the text shown in the operations
// table: one function per column, plus a lipgloss table for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/yurifrl/cockpit/pkg/labels"
	"github.com/yurifrl/cockpit/pkg/models"
)

// Sign classifies a value for styling.
type Sign int

const (
	Zero Sign = iota
	Positive
	Negative
)

func SignOf(v int64) Sign {
	switch {
	case v > 0:
		return Positive
	case v < 0:
		return Negative
	}
	return Zero
}

func operator(v int64) string {
	switch SignOf(v) {
	case Positive:
		return "+"
	case Negative:
		return "-"
	}
	return ""
}

// Column is one column of the operations table.
type Column struct {
	Title  string
	Render func(models.FormattedRow, *labels.Labels) string
}

// Columns lists the table columns in display order.
func Columns() []Column {
	return []Column{
		{"Payment date", func(r models.FormattedRow, l *labels.Labels) string { return PaymentDate(r.PaymentDate, l) }},
		{"ID", func(r models.FormattedRow, _ *labels.Labels) string { return r.ID }},
		{"Transaction", func(r models.FormattedRow, _ *labels.Labels) string { return r.TransactionID }},
		{"Description", Description},
		{"Outcoming", func(r models.FormattedRow, l *labels.Labels) string { return Outcoming(r.Outcoming, l) }},
		{"Outgoing", func(r models.FormattedRow, l *labels.Labels) string { return Outgoing(r.Outgoing, l) }},
		{"Net", func(r models.FormattedRow, _ *labels.Labels) string { return Net(r.Net) }},
	}
}

// Cells renders every column of row.
func Cells(row models.FormattedRow, l *labels.Labels) []string {
	cols := Columns()
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = c.Render(row, l)
	}
	return cells
}

// typeLabel hides the label for plain payables.
func typeLabel(t string, l *labels.Labels) string {
	if t == "" || t == string(models.LegPayable) {
		return ""
	}
	return l.Type(t)
}

// PaymentDate shows anticipated payables as "actual ↺ original", followed
// by the anticipation message when the label set has one.
func PaymentDate(d models.PaymentDate, l *labels.Labels) string {
	if !d.Anticipated() {
		return Date(d.Actual)
	}
	out := fmt.Sprintf("%s ↺ %s", Date(d.Actual), Date(d.Original))
	if msg := l.AnticipationMessage(); msg != "" {
		out += "\n" + msg
	}
	return out
}

// Description stacks the type label, the installment and, for
// inter-recipient transfers, the counterpart.
func Description(r models.FormattedRow, l *labels.Labels) string {
	t := r.MovementType
	if t == "" {
		t = r.Type
	}

	var lines []string
	if label := typeLabel(t, l); label != "" {
		lines = append(lines, label)
	}
	if r.Installment != nil {
		lines = append(lines, fmt.Sprintf("%s %d", l.Installment(), *r.Installment))
	}
	if line := counterpart(r, l); line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// counterpart follows the transfer direction of the classifier: a
// non-negative net means this recipient sent the funds.
func counterpart(r models.FormattedRow, l *labels.Labels) string {
	if r.MovementType != models.MovementInterRecipient {
		return ""
	}
	if r.Net >= 0 {
		return fmt.Sprintf("%s %s", l.To(), r.TargetID)
	}
	return fmt.Sprintf("%s %s", l.From(), r.SourceID)
}

func amount(leg models.CashFlowLeg, l *labels.Labels, negative bool) string {
	if leg.Value() == 0 {
		return ""
	}
	value := abs(leg.Value())
	signed := value
	if negative {
		signed = -value
	}

	out := operator(signed) + Currency(value)
	if label := typeLabel(string(leg.Type), l); label != "" {
		out = fmt.Sprintf("(%s) %s", label, out)
	}
	return out
}

// Amounts renders one side. A side holding any leg without an amount is
// dropped entirely; zero legs are skipped and an empty result renders as
// the no-data label.
func Amounts(legs models.Legs, l *labels.Labels, negative bool) string {
	if !legs.Valid() {
		return l.NoData()
	}

	var lines []string
	for _, leg := range legs {
		if s := amount(leg, l, negative); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) == 0 {
		return l.NoData()
	}
	return strings.Join(lines, "\n")
}

func Outcoming(legs models.Legs, l *labels.Labels) string {
	return Amounts(legs, l, false)
}

func Outgoing(legs models.Legs, l *labels.Labels) string {
	return Amounts(legs, l, true)
}

// Net renders the signed net amount, e.g. "+R$ 288,60".
func Net(net int64) string {
	return operator(net) + Currency(abs(net))
}
