package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"complaintscope/domain/table"
)

// dateLayouts are tried in order against date-like cells. Day-first forms
// come before month-first forms: the complaint registers this ingests use
// day-first dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2/1/2006",
	"2006/01/02",
	"02-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"01-02-06",
	"1/2/06 15:04",
}

// coerceDate parses a date-like cell. Excel serial numbers are converted
// through excelize; everything unparseable collapses to Absent.
func coerceDate(cell string) table.Value {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return table.Absent()
	}

	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil && t.Year() > 1900 {
			return table.Date(t)
		}
		return table.Absent()
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return table.Date(t)
		}
	}
	return table.Absent()
}
