package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jgoulah/utilityview/pkg/models"
)

// ErrUnknownMetric is returned when a record type has no such metric field
var ErrUnknownMetric = errors.New("unknown metric")

// Record is implemented by the record types that can be aggregated
type Record interface {
	Year() int
	Month() int
	Value(models.Metric) (float64, bool)
}

// WithDerivedFields returns a copy of records with Consumption set to the
// sum of the three time band usages
func WithDerivedFields(records []models.ElectricityRecord) []models.ElectricityRecord {
	out := make([]models.ElectricityRecord, len(records))
	for i, r := range records {
		r.Consumption = r.Daytime + r.MorningEvening + r.Nighttime
		out[i] = r
	}
	return out
}

// WithDerivedWaterFields returns a copy of records. Water has no derived fields.
func WithDerivedWaterFields(records []models.WaterRecord) []models.WaterRecord {
	out := make([]models.WaterRecord, len(records))
	copy(out, records)
	return out
}

// checkMetric reports whether R has the given metric field
func checkMetric[R Record](metric models.Metric) error {
	var zero R
	if _, ok := zero.Value(metric); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	return nil
}

// SummarizeByYear sums metric per year. Only years present in records are
// returned, in ascending order.
func SummarizeByYear[R Record](records []R, metric models.Metric) ([]models.AnnualSummary, error) {
	if err := checkMetric[R](metric); err != nil {
		return nil, err
	}

	totals := make(map[int]float64)
	for _, r := range records {
		v, _ := r.Value(metric)
		totals[r.Year()] += v
	}

	summaries := make([]models.AnnualSummary, 0, len(totals))
	for year, total := range totals {
		summaries = append(summaries, models.AnnualSummary{Year: year, Total: total})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Year < summaries[j].Year
	})
	return summaries, nil
}

// SummarizeTimeBandsByYear sums each time band per year, in ascending year order
func SummarizeTimeBandsByYear(records []models.ElectricityRecord) []models.TimeBandSummary {
	byYear := make(map[int]*models.TimeBandSummary)
	for _, r := range records {
		s, ok := byYear[r.Year()]
		if !ok {
			s = &models.TimeBandSummary{Year: r.Year()}
			byYear[r.Year()] = s
		}
		s.Daytime += r.Daytime
		s.MorningEvening += r.MorningEvening
		s.Nighttime += r.Nighttime
	}

	summaries := make([]models.TimeBandSummary, 0, len(byYear))
	for _, s := range byYear {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Year < summaries[j].Year
	})
	return summaries
}

// SummarizeByMonth sums metric per month of the given year. Months without
// records are left out.
func SummarizeByMonth[R Record](records []R, metric models.Metric, year int) ([]models.MonthlySummary, error) {
	if err := checkMetric[R](metric); err != nil {
		return nil, err
	}

	totals := make(map[int]float64)
	for _, r := range records {
		if r.Year() != year {
			continue
		}
		v, _ := r.Value(metric)
		totals[r.Month()] += v
	}

	summaries := make([]models.MonthlySummary, 0, len(totals))
	for month, total := range totals {
		summaries = append(summaries, models.MonthlySummary{Year: year, Month: month, Total: total})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month < summaries[j].Month
	})
	return summaries, nil
}

// FilterYears keeps records whose year is within [from, to]. A zero bound
// is open.
func FilterYears[R Record](records []R, from, to int) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if from != 0 && r.Year() < from {
			continue
		}
		if to != 0 && r.Year() > to {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Years returns the distinct years present in records, ascending
func Years[R Record](records []R) []int {
	seen := make(map[int]bool)
	years := []int{}
	for _, r := range records {
		if !seen[r.Year()] {
			seen[r.Year()] = true
			years = append(years, r.Year())
		}
	}
	sort.Ints(years)
	return years
}
