// Package filters applies the operator's filter predicates over the
// normalized table. The pipeline is pure: every run returns a fresh table
// and never mutates its input.
package filters

import (
	"time"

	"complaintscope/domain/table"
)

type predicateKind int

const (
	kindEquals predicateKind = iota
	kindDateRange
)

// Predicate is one row-keep condition. A predicate naming a column the
// table does not have is a no-op: optional filters only apply when the
// corresponding data is present.
type Predicate struct {
	kind   predicateKind
	column string
	value  string
	start  time.Time
	end    time.Time
}

// Equals keeps rows whose column text equals value exactly.
func Equals(column, value string) Predicate {
	return Predicate{kind: kindEquals, column: column, value: value}
}

// DateRange keeps rows whose date column falls within [start, end]
// inclusive. Rows without a parsed date in the column are dropped.
func DateRange(column string, start, end time.Time) Predicate {
	return Predicate{kind: kindDateRange, column: column, start: start, end: end}
}

// Column returns the column this predicate inspects.
func (p Predicate) Column() string { return p.column }

func (p Predicate) keep(row table.Row) bool {
	v, ok := row[p.column]
	if !ok {
		v = table.Absent()
	}
	switch p.kind {
	case kindEquals:
		return !v.IsAbsent() && v.Text() == p.value
	case kindDateRange:
		d, ok := v.DateValue()
		if !ok {
			return false
		}
		return !d.Before(p.start) && !d.After(p.end)
	default:
		return false
	}
}

// Apply runs the predicates left to right and returns the surviving rows as
// a new table with the same column order.
func Apply(t *table.Table, preds []Predicate) *table.Table {
	rows := t.Rows
	for _, p := range preds {
		if !t.HasColumn(p.column) {
			continue
		}
		var kept []table.Row
		for _, row := range rows {
			if p.keep(row) {
				kept = append(kept, row)
			}
		}
		rows = kept
	}
	return t.Slice(rows)
}
