// Package normalize turns a raw workbook into the canonical record table:
// one sheet or a merge of several, trimmed headers, typed cells, and
// designated date columns coerced with unparseable text collapsing to
// absent rather than failing the ingest.
package normalize

import (
	"log"
	"strconv"
	"strings"

	"complaintscope/adapters/excel"
	"complaintscope/domain/table"
	apperrors "complaintscope/internal/errors"
)

// CombineKind selects how sheets are combined into one table.
type CombineKind int

const (
	CombineSingle CombineKind = iota
	CombineAll
	CombineSelected
)

// CombineMode carries the sheet-combination choice for one normalization.
type CombineMode struct {
	Kind   CombineKind
	Sheet  string   // CombineSingle
	Sheets []string // CombineSelected, in caller order
}

// SingleSheet uses exactly one sheet; no provenance column is added.
func SingleSheet(name string) CombineMode {
	return CombineMode{Kind: CombineSingle, Sheet: name}
}

// AllSheets concatenates every sheet in workbook order and appends a
// provenance column with each row's source sheet name.
func AllSheets() CombineMode {
	return CombineMode{Kind: CombineAll}
}

// SelectedSheets behaves like AllSheets restricted to the given subset.
func SelectedSheets(names ...string) CombineMode {
	return CombineMode{Kind: CombineSelected, Sheets: names}
}

// Normalize produces the analysis-ready record table for one workbook.
func Normalize(wb *excel.Workbook, mode CombineMode) (*table.Table, error) {
	sheets, withProvenance, err := selectSheets(wb, mode)
	if err != nil {
		return nil, err
	}

	columns := unionColumns(sheets)
	if withProvenance {
		columns = append(columns, table.ColSourceSheet)
	}

	t := table.New(columns)
	for _, sheet := range sheets {
		for _, raw := range sheet.Rows {
			row := make(table.Row, len(columns))
			for j, header := range sheet.Headers {
				if header == "" {
					continue
				}
				cell := ""
				if j < len(raw) {
					cell = raw[j]
				}
				row[header] = parseCell(header, cell)
			}
			if withProvenance {
				row[table.ColSourceSheet] = table.String(sheet.Name)
			}
			t.Append(row)
		}
	}

	log.Printf("[Normalizer] normalized %d sheet(s) into %d rows, %d columns",
		len(sheets), t.Len(), len(t.Columns))
	return t, nil
}

// selectSheets resolves the combine mode to the sheets to stack and whether
// a provenance column applies.
func selectSheets(wb *excel.Workbook, mode CombineMode) ([]excel.Sheet, bool, error) {
	switch mode.Kind {
	case CombineSingle:
		sheet, ok := wb.Sheet(mode.Sheet)
		if !ok {
			return nil, false, apperrors.SheetNotFound(mode.Sheet)
		}
		return []excel.Sheet{*sheet}, false, nil
	case CombineAll:
		return wb.Sheets, true, nil
	case CombineSelected:
		if len(mode.Sheets) == 0 {
			return nil, false, apperrors.EmptySelection()
		}
		selected := make([]excel.Sheet, 0, len(mode.Sheets))
		for _, name := range mode.Sheets {
			sheet, ok := wb.Sheet(name)
			if !ok {
				return nil, false, apperrors.SheetNotFound(name)
			}
			selected = append(selected, *sheet)
		}
		return selected, true, nil
	default:
		return nil, false, apperrors.InvalidInput("unknown combine mode")
	}
}

// unionColumns returns the union of all sheet headers in first-seen order,
// skipping blank headers.
func unionColumns(sheets []excel.Sheet) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, sheet := range sheets {
		for _, h := range sheet.Headers {
			if h == "" || seen[h] {
				continue
			}
			seen[h] = true
			columns = append(columns, h)
		}
	}
	return columns
}

// parseCell converts one raw cell into a typed value. Date-like columns go
// through the date coercion path; elsewhere numeric-looking text becomes a
// number and the rest stays a string.
func parseCell(column, cell string) table.Value {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return table.Absent()
	}
	if table.IsDateColumn(column) {
		return coerceDate(cell)
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return table.Number(f)
	}
	return table.String(cell)
}
