package app

import (
	"complaintscope/domain/session"
	"complaintscope/internal/forecast"
	"complaintscope/internal/insights"
	"complaintscope/internal/quality"
	"complaintscope/internal/recurrence"
)

// Report bundles every analysis view for one pipeline pass. Views carry
// their own availability so a missing column degrades one view without
// touching the others.
type Report struct {
	Upload           session.UploadInfo      `json:"upload"`
	SheetNames       []string                `json:"sheet_names"`
	RowCount         int                     `json:"row_count"`
	KeyColumn        string                  `json:"key_column,omitempty"`
	Summary          insights.Summary        `json:"summary"`
	SiteFrequency    FrequencyView           `json:"site_frequency"`
	SiteRepeated     FrequencyView           `json:"site_repeated"`
	FaultFrequency   FrequencyView           `json:"fault_frequency"`
	Hotspots         HotspotView             `json:"hotspots"`
	Risk             RiskView                `json:"risk"`
	Forecast         ForecastView            `json:"forecast"`
	Quality          quality.Profile         `json:"quality"`
	NumericSummaries []quality.ColumnSummary `json:"numeric_summaries,omitempty"`
}

// FrequencyView is a frequency table with availability. Entries are capped
// for display; Total carries the uncapped entry count.
type FrequencyView struct {
	Available bool                      `json:"available"`
	Reason    string                    `json:"reason,omitempty"`
	Total     int                       `json:"total"`
	Entries   recurrence.FrequencyTable `json:"entries,omitempty"`
}

// HotspotView is the capped hotspot cross-tabulation with availability.
type HotspotView struct {
	Available bool                    `json:"available"`
	Reason    string                  `json:"reason,omitempty"`
	Entries   recurrence.HotspotTable `json:"entries,omitempty"`
}

// RiskView is the open-and-repeated row subset, rendered as plain text
// rows for the output boundary.
type RiskView struct {
	Available bool                `json:"available"`
	Reason    string              `json:"reason,omitempty"`
	Columns   []string            `json:"columns,omitempty"`
	Rows      []map[string]string `json:"rows,omitempty"`
}

// ForecastView is the monthly series with availability.
type ForecastView struct {
	Available bool            `json:"available"`
	Reason    string          `json:"reason,omitempty"`
	Series    forecast.Series `json:"series"`
}

func availableFrequency(freq recurrence.FrequencyTable, cap int) FrequencyView {
	view := FrequencyView{Available: true, Total: len(freq), Entries: freq}
	if cap > 0 && len(freq) > cap {
		view.Entries = freq[:cap]
	}
	return view
}

func unavailableFrequency(reason string) FrequencyView {
	return FrequencyView{Reason: reason}
}
