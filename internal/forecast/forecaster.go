// Package forecast buckets complaints into calendar months and extrapolates
// a short horizon. The projection is intentionally a linear-trend-on-recent-
// average heuristic, not a statistical model: no confidence intervals are
// implied.
package forecast

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"complaintscope/domain/table"
	apperrors "complaintscope/internal/errors"
)

// Flag marks a point as observed history or projected future.
type Flag string

const (
	FlagObserved  Flag = "observed"
	FlagPredicted Flag = "predicted"
)

// Point is one monthly value in the output series.
type Point struct {
	Period string  `json:"period"` // YYYY-MM
	Value  float64 `json:"value"`
	Flag   Flag    `json:"flag"`
}

// Series is the forecaster output. Insufficient is true when fewer than
// three observed months exist; the observed points are still returned and
// no predicted points are appended.
type Series struct {
	Points       []Point `json:"points"`
	Insufficient bool    `json:"insufficient"`
	Slope        float64 `json:"slope"` // least-squares complaints/month over the observed series
}

// Bucket is one calendar month with its complaint count.
type Bucket struct {
	Month time.Time // first day of the month, UTC
	Count int
}

// Period returns the bucket's YYYY-MM label.
func (b Bucket) Period() string { return b.Month.Format("2006-01") }

// Forecaster projects a fixed horizon beyond the observed months.
type Forecaster struct {
	horizon int
}

// NewForecaster returns a forecaster with the standard three-month horizon.
func NewForecaster() *Forecaster {
	return &Forecaster{horizon: 3}
}

// MonthlyBuckets groups rows by calendar month of the date column. Rows
// with an absent date are excluded. Buckets come back sorted by period.
func MonthlyBuckets(t *table.Table, dateColumn string) ([]Bucket, error) {
	if !t.HasColumn(dateColumn) {
		return nil, apperrors.MissingColumn(dateColumn)
	}

	counts := make(map[time.Time]int)
	for _, row := range t.Rows {
		d, ok := row[dateColumn].DateValue()
		if !ok {
			continue
		}
		month := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		counts[month]++
	}

	buckets := make([]Bucket, 0, len(counts))
	for month, count := range counts {
		buckets = append(buckets, Bucket{Month: month, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month.Before(buckets[j].Month)
	})
	return buckets, nil
}

// Project extrapolates the next three months from the most recent window.
// With fewer than three observed months it returns the observed series and
// the insufficient-history signal instead.
//
// Rule: with the last three chronological counts c0, c1, c2,
// trend = (c2-c0)/2 and predicted = mean(c0,c1,c2) + trend. Each emitted
// future month carries the same predicted value.
func (f *Forecaster) Project(buckets []Bucket) Series {
	series := Series{Points: make([]Point, 0, len(buckets)+f.horizon)}
	for _, b := range buckets {
		series.Points = append(series.Points, Point{
			Period: b.Period(),
			Value:  float64(b.Count),
			Flag:   FlagObserved,
		})
	}
	series.Slope = observedSlope(buckets)

	if len(buckets) < 3 {
		series.Insufficient = true
		return series
	}

	last := buckets[len(buckets)-3:]
	window := []float64{float64(last[0].Count), float64(last[1].Count), float64(last[2].Count)}
	mean, err := stats.Mean(window)
	if err != nil {
		series.Insufficient = true
		return series
	}
	trend := (window[2] - window[0]) / 2
	predicted := mean + trend

	month := buckets[len(buckets)-1].Month
	for i := 0; i < f.horizon; i++ {
		month = month.AddDate(0, 1, 0)
		series.Points = append(series.Points, Point{
			Period: month.Format("2006-01"),
			Value:  predicted,
			Flag:   FlagPredicted,
		})
	}
	return series
}

// observedSlope fits count against month index by least squares. Reported
// as a diagnostic alongside the projection.
func observedSlope(buckets []Bucket) float64 {
	if len(buckets) < 2 {
		return 0
	}
	xs := make([]float64, len(buckets))
	ys := make([]float64, len(buckets))
	for i, b := range buckets {
		xs[i] = float64(i)
		ys[i] = float64(b.Count)
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}
