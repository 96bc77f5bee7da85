// Package testkit builds workbook and table fixtures for package tests.
package testkit

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"complaintscope/domain/table"
)

// SheetFixture describes one worksheet to synthesize.
type SheetFixture struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// WorkbookBytes serializes the fixtures into an xlsx payload, sheets in
// the given order.
func WorkbookBytes(sheets ...SheetFixture) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, err
			}
		}

		if len(sheet.Header) > 0 {
			header := make([]interface{}, len(sheet.Header))
			for j, h := range sheet.Header {
				header[j] = h
			}
			if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
				return nil, err
			}
		}
		for r, row := range sheet.Rows {
			addr, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet.Name, addr, &row); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize fixture workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ComplaintSheet returns a canned complaint register with repeated sites,
// repeated faults, open and closed calls, and one row without a date.
func ComplaintSheet(name string) SheetFixture {
	return SheetFixture{
		Name: name,
		Header: []string{
			table.ColComplaintNo, table.ColSOLID, table.ColBranch, table.ColState,
			table.ColCallStatus, table.ColNatureOfFault, table.ColReceivedDate,
		},
		Rows: [][]interface{}{
			{"C-001", "S100", "Central", "MH", "Open", "ATM Jam", "2025-01-10"},
			{"C-002", "S100", "Central", "MH", "Closed", "ATM Jam", "2025-01-18"},
			{"C-003", "S200", "North", "DL", "Open", "Printer", "2025-02-05"},
			{"C-004", "S300", "South", "TN", "Call Closed", "ATM Jam", "2025-02-20"},
			{"C-005", "S100", "Central", "MH", "Open", "ATM Jam", "2025-03-02"},
			{"C-006", "S300", "South", "TN", "Open", "Network", ""},
		},
	}
}

// ComplaintTable builds a typed in-memory table equivalent to
// ComplaintSheet, for tests that bypass ingestion.
func ComplaintTable() *table.Table {
	t := table.New([]string{
		table.ColComplaintNo, table.ColSOLID, table.ColBranch, table.ColState,
		table.ColCallStatus, table.ColNatureOfFault, table.ColReceivedDate,
	})
	add := func(no, sol, branch, state, status, fault string, received time.Time) {
		row := table.Row{
			table.ColComplaintNo:   table.String(no),
			table.ColSOLID:         table.String(sol),
			table.ColBranch:        table.String(branch),
			table.ColState:         table.String(state),
			table.ColCallStatus:    table.String(status),
			table.ColNatureOfFault: table.String(fault),
		}
		if !received.IsZero() {
			row[table.ColReceivedDate] = table.Date(received)
		}
		t.Append(row)
	}
	add("C-001", "S100", "Central", "MH", "Open", "ATM Jam", date(2025, 1, 10))
	add("C-002", "S100", "Central", "MH", "Closed", "ATM Jam", date(2025, 1, 18))
	add("C-003", "S200", "North", "DL", "Open", "Printer", date(2025, 2, 5))
	add("C-004", "S300", "South", "TN", "Call Closed", "ATM Jam", date(2025, 2, 20))
	add("C-005", "S100", "Central", "MH", "Open", "ATM Jam", date(2025, 3, 2))
	add("C-006", "S300", "South", "TN", "Open", "Network", time.Time{})
	return t
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
