package render

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var brl = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats minor units as BRL, e.g. 123456 -> "R$ 1.234,56".
func Currency(cents int64) string {
	d := decimal.New(cents, -2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "R$ " + brl.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

// Date renders an API timestamp as DD/MM/YYYY in UTC. Values that do not
// parse are returned unchanged.
func Date(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format("02/01/2006")
		}
	}
	return value
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
