package dataset

import (
	"fmt"
	"strings"

	"github.com/jgoulah/utilityview/pkg/models"
)

// View selects one of the annual series the dataset can produce
type View int

const (
	ViewConsumption View = iota // annual electricity consumption
	ViewGeneration              // annual electricity sold back to the grid
	ViewTimeBands               // annual electricity usage per time band
	ViewWater                   // annual water usage
)

var viewNames = map[View]string{
	ViewConsumption: "consumption",
	ViewGeneration:  "generation",
	ViewTimeBands:   "timeband",
	ViewWater:       "water",
}

// Views lists every view in display order
func Views() []View {
	return []View{ViewConsumption, ViewGeneration, ViewTimeBands, ViewWater}
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// ParseView maps a selector name to a View
func ParseView(name string) (View, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, n := range viewNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown view: %s (available: consumption, generation, timeband, water)", name)
}

// Domain returns the utility the view is computed from
func (v View) Domain() models.Domain {
	if v == ViewWater {
		return models.DomainWater
	}
	return models.DomainElectricity
}

// SeriesRow is one year of a Series
type SeriesRow struct {
	Year   int       `json:"year"`
	Values []float64 `json:"values"` // parallel to Series.Columns
}

// Series is a view ready for display: one row per year, one value per column
type Series struct {
	View    View        `json:"-"`
	Name    string      `json:"view"`
	Columns []string    `json:"columns"`
	Rows    []SeriesRow `json:"rows"`
}

// Series computes a view over the records whose year lies in [from, to].
// A zero bound is open.
func (d *Dataset) Series(view View, from, to int) (Series, error) {
	series := Series{View: view, Name: view.String()}

	switch view {
	case ViewConsumption:
		return annualSeries(series, FilterYears(d.electricity, from, to), models.MetricConsumption)
	case ViewGeneration:
		return annualSeries(series, FilterYears(d.electricity, from, to), models.MetricSale)
	case ViewWater:
		return annualSeries(series, FilterYears(d.water, from, to), models.MetricUsage)
	case ViewTimeBands:
		series.Columns = []string{
			string(models.MetricDaytime),
			string(models.MetricMorningEvening),
			string(models.MetricNighttime),
		}
		series.Rows = []SeriesRow{}
		for _, s := range SummarizeTimeBandsByYear(FilterYears(d.electricity, from, to)) {
			series.Rows = append(series.Rows, SeriesRow{
				Year:   s.Year,
				Values: []float64{s.Daytime, s.MorningEvening, s.Nighttime},
			})
		}
		return series, nil
	default:
		return Series{}, fmt.Errorf("unknown view: %s", view)
	}
}

func annualSeries[R Record](series Series, records []R, metric models.Metric) (Series, error) {
	summaries, err := SummarizeByYear(records, metric)
	if err != nil {
		return Series{}, err
	}

	series.Columns = []string{string(metric)}
	series.Rows = make([]SeriesRow, 0, len(summaries))
	for _, s := range summaries {
		series.Rows = append(series.Rows, SeriesRow{Year: s.Year, Values: []float64{s.Total}})
	}
	return series, nil
}
