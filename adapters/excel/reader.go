// Package excel reads uploaded workbook payloads into raw string grids.
// Only OOXML workbooks (xlsx/xlsm) are supported; legacy binary .xls is
// rejected as unreadable.
package excel

import (
	"bytes"
	"log"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "complaintscope/internal/errors"
)

// WorkbookReader parses an in-memory workbook payload.
type WorkbookReader struct {
	payload []byte
}

// NewWorkbookReader creates a reader over the raw upload bytes. The payload
// is borrowed read-only; ownership stays with the caller.
func NewWorkbookReader(payload []byte) *WorkbookReader {
	return &WorkbookReader{payload: payload}
}

// Read parses every sheet in workbook order. Returns UNREADABLE_WORKBOOK
// when the payload is not a parseable workbook and NO_SHEETS when the
// workbook declares zero sheets.
func (r *WorkbookReader) Read() (*Workbook, error) {
	start := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(r.payload))
	if err != nil {
		return nil, apperrors.UnreadableWorkbook(err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, apperrors.NoSheets()
	}

	wb := &Workbook{Sheets: make([]Sheet, 0, len(names))}
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.UnreadableWorkbook(err), "failed to read sheet %q", name)
		}
		wb.Sheets = append(wb.Sheets, buildSheet(name, rows))
	}

	log.Printf("[WorkbookReader] workbook parsed in %.2fms (%d sheets)",
		float64(time.Since(start).Nanoseconds())/1e6, len(wb.Sheets))
	return wb, nil
}

// buildSheet splits raw rows into a trimmed header row and data rows. A
// sheet without rows yields empty headers and no data.
func buildSheet(name string, rows [][]string) Sheet {
	sheet := Sheet{Name: name}
	if len(rows) == 0 {
		return sheet
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	sheet.Headers = headers

	for i := 1; i < len(rows); i++ {
		row := make([]string, len(rows[i]))
		for j, cell := range rows[i] {
			row[j] = strings.TrimSpace(cell)
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}
