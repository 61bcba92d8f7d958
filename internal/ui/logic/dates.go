package logic

import (
	"strings"
	"time"
)

// Placeholder is shown for missing values
const Placeholder = "—"

// dayMonthYear is the pt-BR short date layout
const dayMonthYear = "02/01/2006"

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// FormatDate renders an API date for display.
//
// ISO date-times ("2024-03-01T00:00:00") become "01/03/2024". Anything else is
// assumed to be "dd/mm/yyyy hh:mm" and is cut at the first space. Values that
// cannot be parsed are returned unchanged.
func FormatDate(s string) string {
	if s == "" {
		return Placeholder
	}
	if strings.Contains(s, "T") {
		for _, layout := range isoLayouts {
			// the wall-clock date is kept as sent; no zone conversion
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(dayMonthYear)
			}
		}
		return s
	}
	date, _, _ := strings.Cut(s, " ")
	return date
}
