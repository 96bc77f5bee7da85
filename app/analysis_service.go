// Package app orchestrates the analysis pipeline: one explicit
// normalize -> filter -> analyze pass over the registry's current upload
// per request. There is no implicit re-run; callers invoke BuildReport
// after every operator action.
package app

import (
	"log"

	"complaintscope/adapters/excel"
	"complaintscope/domain/session"
	"complaintscope/domain/table"
	"complaintscope/internal/config"
	apperrors "complaintscope/internal/errors"
	"complaintscope/internal/filters"
	"complaintscope/internal/forecast"
	"complaintscope/internal/insights"
	"complaintscope/internal/normalize"
	"complaintscope/internal/quality"
	"complaintscope/internal/recurrence"
)

// AnalysisService owns one session's registry and runs the pipeline over
// its current upload.
type AnalysisService struct {
	cfg        *config.Config
	registry   *session.Registry
	engine     *recurrence.Engine
	forecaster *forecast.Forecaster
}

// NewAnalysisService creates a service with a fresh session registry.
func NewAnalysisService(cfg *config.Config) *AnalysisService {
	if cfg == nil {
		cfg = config.Default()
	}
	return &AnalysisService{
		cfg:        cfg,
		registry:   session.NewRegistry(),
		engine:     recurrence.NewEngine(cfg.ClosedSynonyms),
		forecaster: forecast.NewForecaster(),
	}
}

// Registry exposes the session's upload registry.
func (s *AnalysisService) Registry() *session.Registry {
	return s.registry
}

// SubmitUpload validates that the payload parses as a workbook before
// touching the registry, so a broken upload leaves the previous current
// selection unaffected. On success the upload is recorded (replacing any
// entry with the same name) and becomes current.
func (s *AnalysisService) SubmitUpload(name string, payload []byte) (int, error) {
	if name == "" {
		return 0, apperrors.InvalidInput("upload name must not be empty")
	}
	if _, err := excel.NewWorkbookReader(payload).Read(); err != nil {
		return 0, err
	}
	index := s.registry.Submit(name, payload)
	log.Printf("[AnalysisService] upload %q stored at index %d (%d bytes)", name, index, len(payload))
	return index, nil
}

// AnalysisRequest selects the sheet-combination mode and filter predicates
// for one pipeline pass.
type AnalysisRequest struct {
	Mode    normalize.CombineMode
	Filters []filters.Predicate
}

// BuildReport runs the full pipeline over the current upload. Analyses
// whose columns are missing degrade to unavailable views; they never fail
// the report.
func (s *AnalysisService) BuildReport(req AnalysisRequest) (*Report, error) {
	rec, ok := s.registry.Current()
	if !ok {
		return nil, apperrors.NoUpload()
	}

	wb, err := excel.NewWorkbookReader(rec.Payload).Read()
	if err != nil {
		return nil, err
	}
	normalized, err := normalize.Normalize(wb, req.Mode)
	if err != nil {
		return nil, err
	}
	view := filters.Apply(normalized, req.Filters)

	report := &Report{
		Upload: session.UploadInfo{
			Name:       rec.Name,
			ByteSize:   rec.ByteSize,
			ReceivedAt: rec.ReceivedAt,
			Current:    true,
		},
		SheetNames:       wb.SheetNames(),
		RowCount:         view.Len(),
		Summary:          insights.Summarize(view, s.engine, table.ColCallStatus),
		Quality:          quality.MissingProfile(view),
		NumericSummaries: quality.NumericSummaries(view),
	}

	s.fillRecurrence(report, view)
	s.fillForecast(report, view)
	return report, nil
}

// fillRecurrence computes the site/fault frequency, hotspot, and risk
// views, degrading each independently when its columns are missing.
func (s *AnalysisService) fillRecurrence(report *Report, view *table.Table) {
	keyColumn, hasKey := table.DetectKeyColumn(view)
	if hasKey {
		report.KeyColumn = keyColumn
	}

	var repeated recurrence.FrequencyTable
	if !hasKey {
		report.SiteFrequency = unavailableFrequency("no site key column detected")
		report.SiteRepeated = unavailableFrequency("no site key column detected")
	} else {
		freq, err := s.engine.Frequency(view, keyColumn)
		if err != nil {
			report.SiteFrequency = unavailableFrequency(err.Error())
			report.SiteRepeated = unavailableFrequency(err.Error())
		} else {
			repeated = s.engine.Repeated(freq)
			report.SiteFrequency = availableFrequency(freq, s.cfg.FrequencyCap)
			report.SiteRepeated = availableFrequency(repeated, s.cfg.FrequencyCap)
		}
	}

	faultFreq, err := s.engine.Frequency(view, table.ColNatureOfFault)
	if err != nil {
		report.FaultFrequency = unavailableFrequency(err.Error())
	} else {
		report.FaultFrequency = availableFrequency(faultFreq, s.cfg.FrequencyCap)
	}

	if !hasKey {
		report.Hotspots = HotspotView{Reason: "no site key column detected"}
	} else if hotspots, err := s.engine.Hotspot(view, keyColumn, table.ColNatureOfFault, s.cfg.HotspotCap); err != nil {
		report.Hotspots = HotspotView{Reason: err.Error()}
	} else {
		report.Hotspots = HotspotView{Available: true, Entries: hotspots}
	}

	// The risk join uses the full repeated set, not the capped display view.
	if !hasKey {
		report.Risk = RiskView{Reason: "no site key column detected"}
	} else if risk, err := s.engine.RiskJoin(view, table.ColCallStatus, repeated, keyColumn); err != nil {
		report.Risk = RiskView{Reason: err.Error()}
	} else {
		report.Risk = RiskView{Available: true, Columns: risk.Columns, Rows: rowsDTO(risk)}
	}
}

func (s *AnalysisService) fillForecast(report *Report, view *table.Table) {
	buckets, err := forecast.MonthlyBuckets(view, table.ColReceivedDate)
	if err != nil {
		report.Forecast = ForecastView{Reason: err.Error()}
		return
	}
	report.Forecast = ForecastView{Available: true, Series: s.forecaster.Project(buckets)}
}

// rowsDTO renders table rows as plain text maps for the output boundary.
func rowsDTO(t *table.Table) []map[string]string {
	rows := make([]map[string]string, t.Len())
	for i, row := range t.Rows {
		out := make(map[string]string, len(t.Columns))
		for _, column := range t.Columns {
			if v, ok := row[column]; ok && !v.IsAbsent() {
				out[column] = v.Text()
			} else {
				out[column] = ""
			}
		}
		rows[i] = out
	}
	return rows
}
