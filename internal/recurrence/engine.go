// Package recurrence computes the repeat-pattern analytics: frequency
// tables, the count>1 "repeated" classification, two-dimensional hotspot
// cross-tabulations, and the open-and-repeated risk join.
package recurrence

import (
	"sort"
	"strings"

	"complaintscope/domain/table"
	apperrors "complaintscope/internal/errors"
)

// FrequencyEntry is one key with its occurrence count.
type FrequencyEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// FrequencyTable is ordered by descending count, ties broken by first-seen
// order in the source table.
type FrequencyTable []FrequencyEntry

// Keys returns the key set of the table.
func (f FrequencyTable) Keys() map[string]bool {
	keys := make(map[string]bool, len(f))
	for _, e := range f {
		keys[e.Key] = true
	}
	return keys
}

// HotspotEntry is one (key A, key B) pair with its co-occurrence count.
type HotspotEntry struct {
	KeyA  string `json:"key_a"`
	KeyB  string `json:"key_b"`
	Count int    `json:"count"`
}

// HotspotTable is filtered to count>1 and ordered by descending count.
type HotspotTable []HotspotEntry

// Engine runs recurrence analytics with a configured closed-status
// synonym list.
type Engine struct {
	closedSynonyms []string
}

// NewEngine creates an engine. An empty synonym list falls back to the
// default single synonym "close".
func NewEngine(closedSynonyms []string) *Engine {
	if len(closedSynonyms) == 0 {
		closedSynonyms = []string{"close"}
	}
	return &Engine{closedSynonyms: closedSynonyms}
}

// Frequency groups the non-absent values of column by their trimmed string
// form (case-sensitive) and counts occurrences. Absent and empty cells are
// excluded entirely, so the counts sum to the number of rows with a value.
func (e *Engine) Frequency(t *table.Table, column string) (FrequencyTable, error) {
	if !t.HasColumn(column) {
		return nil, apperrors.MissingColumn(column)
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, row := range t.Rows {
		key := keyOf(row, column)
		if key == "" {
			continue
		}
		if _, ok := counts[key]; !ok {
			firstSeen[key] = i
		}
		counts[key]++
	}

	freq := make(FrequencyTable, 0, len(counts))
	for key, count := range counts {
		freq = append(freq, FrequencyEntry{Key: key, Count: count})
	}
	sort.SliceStable(freq, func(i, j int) bool {
		if freq[i].Count != freq[j].Count {
			return freq[i].Count > freq[j].Count
		}
		return firstSeen[freq[i].Key] < firstSeen[freq[j].Key]
	})
	return freq, nil
}

// Repeated sub-selects entries observed more than once. Count > 1 is the
// operational definition of "recurring"; a single observation never
// qualifies.
func (e *Engine) Repeated(freq FrequencyTable) FrequencyTable {
	out := make(FrequencyTable, 0, len(freq))
	for _, entry := range freq {
		if entry.Count > 1 {
			out = append(out, entry)
		}
	}
	return out
}

// Hotspot cross-tabulates two key columns: rows where either key is absent
// are dropped, pairs occurring once are filtered out, and the result is
// sorted by descending count with first-seen tiebreak. A cap <= 0 means
// uncapped.
func (e *Engine) Hotspot(t *table.Table, columnA, columnB string, cap int) (HotspotTable, error) {
	if !t.HasColumn(columnA) {
		return nil, apperrors.MissingColumn(columnA)
	}
	if !t.HasColumn(columnB) {
		return nil, apperrors.MissingColumn(columnB)
	}

	type pair struct{ a, b string }
	counts := make(map[pair]int)
	firstSeen := make(map[pair]int)
	for i, row := range t.Rows {
		a := keyOf(row, columnA)
		b := keyOf(row, columnB)
		if a == "" || b == "" {
			continue
		}
		p := pair{a, b}
		if _, ok := counts[p]; !ok {
			firstSeen[p] = i
		}
		counts[p]++
	}

	hotspots := make(HotspotTable, 0, len(counts))
	for p, count := range counts {
		if count > 1 {
			hotspots = append(hotspots, HotspotEntry{KeyA: p.a, KeyB: p.b, Count: count})
		}
	}
	sort.SliceStable(hotspots, func(i, j int) bool {
		if hotspots[i].Count != hotspots[j].Count {
			return hotspots[i].Count > hotspots[j].Count
		}
		return firstSeen[pair{hotspots[i].KeyA, hotspots[i].KeyB}] < firstSeen[pair{hotspots[j].KeyA, hotspots[j].KeyB}]
	})

	if cap > 0 && len(hotspots) > cap {
		hotspots = hotspots[:cap]
	}
	return hotspots, nil
}

// RiskJoin intersects open rows with rows whose key column value belongs to
// the repeated set. Open means the status text does not contain any closed
// synonym case-insensitively; an absent status is treated as open — an
// unknown status is never assumed resolved. When the received-date column
// exists the result is ordered oldest first so the longest-unresolved
// complaints at chronically failing sites surface at the top.
func (e *Engine) RiskJoin(t *table.Table, statusColumn string, repeated FrequencyTable, keyColumn string) (*table.Table, error) {
	if !t.HasColumn(statusColumn) {
		return nil, apperrors.MissingColumn(statusColumn)
	}
	if !t.HasColumn(keyColumn) {
		return nil, apperrors.MissingColumn(keyColumn)
	}

	repeatedKeys := repeated.Keys()
	var rows []table.Row
	for _, row := range t.Rows {
		key := keyOf(row, keyColumn)
		if key == "" || !repeatedKeys[key] {
			continue
		}
		if !e.IsOpen(row[statusColumn]) {
			continue
		}
		rows = append(rows, row)
	}

	if t.HasColumn(table.ColReceivedDate) {
		sort.SliceStable(rows, func(i, j int) bool {
			di, iok := rows[i][table.ColReceivedDate].DateValue()
			dj, jok := rows[j][table.ColReceivedDate].DateValue()
			if iok && jok {
				return di.Before(dj)
			}
			// Dated rows sort before undated ones.
			return iok && !jok
		})
	}
	return t.Slice(rows), nil
}

// IsOpen reports whether a status cell counts as open: the text contains
// none of the closed synonyms, or the cell is absent.
func (e *Engine) IsOpen(status table.Value) bool {
	if status.IsAbsent() {
		return true
	}
	text := strings.ToLower(status.Text())
	for _, syn := range e.closedSynonyms {
		if strings.Contains(text, strings.ToLower(syn)) {
			return false
		}
	}
	return true
}

// keyOf returns the trimmed grouping form of a cell, "" for absent.
func keyOf(row table.Row, column string) string {
	v, ok := row[column]
	if !ok {
		return ""
	}
	return strings.TrimSpace(v.Text())
}
