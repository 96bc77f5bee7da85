// Package table holds the normalized record table every analysis runs against:
// rows of typed cells under a fixed, ordered column set.
package table

// Row maps a column name to its cell value. Columns missing from the map are
// treated as Absent.
type Row map[string]Value

// Table is a rectangular collection of rows. The column list fixes both the
// column set and its display order; every row shares it.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Append adds a row to the table.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Cell returns the value at (row, column), Absent when the column is not set.
func (t *Table) Cell(row int, column string) Value {
	if row < 0 || row >= len(t.Rows) {
		return Absent()
	}
	if v, ok := t.Rows[row][column]; ok {
		return v
	}
	return Absent()
}

// ColumnValues returns the column's values in row order, Absent where unset.
func (t *Table) ColumnValues(name string) []Value {
	out := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		if v, ok := row[name]; ok {
			out[i] = v
		} else {
			out[i] = Absent()
		}
	}
	return out
}

// Slice returns a new table with the same column order and the given rows.
// Rows are shared, not copied; derived tables are read-only snapshots.
func (t *Table) Slice(rows []Row) *Table {
	nt := New(t.Columns)
	nt.Rows = rows
	return nt
}
