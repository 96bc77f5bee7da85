package table

import "strings"

// Well-known complaint register columns, matched by exact name after header
// trimming. Absence of any of them only disables the analyses that need it.
const (
	ColComplaintNo   = "Complaint No."
	ColBranch        = "Branch"
	ColState         = "State"
	ColCallStatus    = "Call Status"
	ColNatureOfFault = "Nature Of Fault"
	ColSOLID         = "SOL ID"
	ColReceivedDate  = "Call Received Date"
	ColVisitDate     = "Engineer Visit Date"
	ColCloseDate     = "Call Close Date"
	ColQuoteSent     = "Quote Sent"
	ColTentativeDate = "Tentative Date"

	// ColSourceSheet is the provenance column appended when sheets are merged.
	ColSourceSheet = "Source Sheet"
)

// DetectKeyColumn probes the table for a usable site-key column: the exact
// "SOL ID" header first, then any column whose name contains "sol"
// case-insensitively. Returns false when no candidate exists.
func DetectKeyColumn(t *Table) (string, bool) {
	if t.HasColumn(ColSOLID) {
		return ColSOLID, true
	}
	for _, c := range t.Columns {
		if strings.Contains(strings.ToLower(c), "sol") {
			return c, true
		}
	}
	return "", false
}

// DateColumns lists the designated date-like columns the normalizer coerces.
func DateColumns() []string {
	return []string{ColReceivedDate, ColVisitDate, ColCloseDate, ColTentativeDate}
}

// IsDateColumn reports whether the named column should be parsed as dates:
// either one of the designated columns or any trimmed header ending in "Date".
func IsDateColumn(name string) bool {
	for _, c := range DateColumns() {
		if name == c {
			return true
		}
	}
	return strings.HasSuffix(name, "Date")
}
