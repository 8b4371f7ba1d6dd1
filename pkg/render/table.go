package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yurifrl/cockpit/pkg/labels"
	"github.com/yurifrl/cockpit/pkg/models"
)

var (
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	positiveStyle = cellStyle.Foreground(lipgloss.Color("10")) // green
	negativeStyle = cellStyle.Foreground(lipgloss.Color("9"))  // red
	zeroStyle     = cellStyle.Foreground(lipgloss.Color("8"))  // gray
)

const (
	outcomingColumn = 4
	outgoingColumn  = 5
	netColumn       = 6
)

// Table renders rows as a bordered terminal table.
func Table(rows []models.FormattedRow, l *labels.Labels) string {
	cols := Columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Title
	}

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = Cells(r, l)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(zeroStyle).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || row >= len(rows) {
				return cellStyle.Bold(true)
			}
			switch col {
			case outcomingColumn:
				return positiveStyle
			case outgoingColumn:
				return negativeStyle
			case netColumn:
				return netStyle(rows[row].Net)
			}
			return cellStyle
		})
	return t.String()
}

func netStyle(net int64) lipgloss.Style {
	switch SignOf(net) {
	case Positive:
		return positiveStyle
	case Negative:
		return negativeStyle
	}
	return zeroStyle
}
