// Package insights computes the headline metrics for the current filtered
// view: totals and the open/closed split.
package insights

import (
	"complaintscope/domain/table"
	"complaintscope/internal/recurrence"
)

// Summary is the headline-metrics view. When the status column is missing
// only the total is populated and HasStatus is false.
type Summary struct {
	Total     int                       `json:"total"`
	Closed    int                       `json:"closed"`
	Open      int                       `json:"open"`
	HasStatus bool                      `json:"has_status"`
	ByStatus  recurrence.FrequencyTable `json:"by_status,omitempty"`
}

// Summarize counts total rows and, when the status column exists, the
// closed/open split using the engine's closed-synonym predicate plus a
// per-status frequency breakdown.
func Summarize(t *table.Table, engine *recurrence.Engine, statusColumn string) Summary {
	summary := Summary{Total: t.Len()}
	if !t.HasColumn(statusColumn) {
		return summary
	}
	summary.HasStatus = true

	for _, row := range t.Rows {
		v, ok := row[statusColumn]
		if !ok {
			v = table.Absent()
		}
		if engine.IsOpen(v) {
			summary.Open++
		} else {
			summary.Closed++
		}
	}

	if byStatus, err := engine.Frequency(t, statusColumn); err == nil {
		summary.ByStatus = byStatus
	}
	return summary
}
