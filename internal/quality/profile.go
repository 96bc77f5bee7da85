// Package quality profiles the filtered table: per-column missing counts
// and summary statistics for numeric columns.
package quality

import (
	"github.com/montanaflynn/stats"

	"complaintscope/domain/table"
)

// ColumnMissing is one column with a non-zero missing-cell count.
type ColumnMissing struct {
	Column  string `json:"column"`
	Missing int    `json:"missing"`
}

// Profile is the missing-data view of a table.
type Profile struct {
	Columns            []ColumnMissing `json:"columns"`
	OverallMissingRate float64         `json:"overall_missing_rate"`
}

// ColumnSummary carries summary statistics for one numeric column.
type ColumnSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// MissingProfile counts absent cells per column, reporting only columns
// with at least one missing value, plus the overall missing rate.
func MissingProfile(t *table.Table) Profile {
	profile := Profile{}
	totalCells := t.Len() * len(t.Columns)
	missingCells := 0

	for _, column := range t.Columns {
		missing := 0
		for _, row := range t.Rows {
			if v, ok := row[column]; !ok || v.IsAbsent() {
				missing++
			}
		}
		missingCells += missing
		if missing > 0 {
			profile.Columns = append(profile.Columns, ColumnMissing{Column: column, Missing: missing})
		}
	}

	if totalCells > 0 {
		profile.OverallMissingRate = float64(missingCells) / float64(totalCells)
	}
	return profile
}

// numericShare is the fraction of non-absent cells that must be numeric for
// a column to count as numeric.
const numericShare = 0.8

// NumericSummaries computes mean/median/stddev/min/max for each numeric
// column, in table column order.
func NumericSummaries(t *table.Table) []ColumnSummary {
	var summaries []ColumnSummary
	for _, column := range t.Columns {
		var values []float64
		present := 0
		for _, row := range t.Rows {
			v, ok := row[column]
			if !ok || v.IsAbsent() {
				continue
			}
			present++
			if f, ok := v.NumberValue(); ok {
				values = append(values, f)
			}
		}
		if present == 0 || float64(len(values))/float64(present) < numericShare {
			continue
		}

		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		median, _ := stats.Median(values)
		stdDev, _ := stats.StandardDeviation(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)

		summaries = append(summaries, ColumnSummary{
			Column: column,
			Count:  len(values),
			Mean:   mean,
			Median: median,
			StdDev: stdDev,
			Min:    min,
			Max:    max,
		})
	}
	return summaries
}
