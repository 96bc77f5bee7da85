package excel

// Sheet is one worksheet as a trimmed header row plus raw string cells.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Workbook is the full uploaded workbook with sheets in workbook order.
type Workbook struct {
	Sheets []Sheet
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}

// Sheet returns the named sheet, or false when absent.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}
