package dataset

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/utilityview/pkg/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func elec(date time.Time, daytime, morev, night float64) models.ElectricityRecord {
	return models.ElectricityRecord{
		Date:           date,
		Daytime:        daytime,
		MorningEvening: morev,
		Nighttime:      night,
	}
}

func sampleElectricity() []models.ElectricityRecord {
	return []models.ElectricityRecord{
		{Date: day(2021, time.March, 1), Daytime: 90, MorningEvening: 60, Nighttime: 20, Payment: 6000, Generation: 400, Sale: 210},
		{Date: day(2019, time.December, 20), Daytime: 120, MorningEvening: 70, Nighttime: 45, Payment: 7100, Generation: 150, Sale: 60},
		{Date: day(2021, time.April, 2), Daytime: 80, MorningEvening: 40, Nighttime: 10, Payment: 5100, Generation: 450, Sale: 260},
		{Date: day(2019, time.November, 21), Daytime: 110, MorningEvening: 65, Nighttime: 40, Payment: 6900, Generation: 200, Sale: 90},
	}
}

func TestWithDerivedFields(t *testing.T) {
	records := []models.ElectricityRecord{
		elec(day(2020, time.January, 20), 100, 50, 30),
		elec(day(2020, time.February, 19), 200, 80, 40),
		elec(day(2020, time.March, 18), 0, 0, 0),
	}

	derived := WithDerivedFields(records)
	require.Len(t, derived, 3)
	assert.Equal(t, 180.0, derived[0].Consumption)
	assert.Equal(t, 320.0, derived[1].Consumption)
	assert.Equal(t, 0.0, derived[2].Consumption)

	// input untouched
	assert.Equal(t, 0.0, records[0].Consumption)

	// deterministic
	assert.Equal(t, derived, WithDerivedFields(records))
}

func TestWithDerivedWaterFields(t *testing.T) {
	records := []models.WaterRecord{
		{Date: day(2020, time.February, 10), Usage: 21, Payment: 4800},
		{Date: day(2020, time.April, 12), Usage: 19, Payment: 4500},
	}

	once := WithDerivedWaterFields(records)
	assert.Equal(t, records, once)
	assert.Equal(t, once, WithDerivedWaterFields(once))
}

func TestSummarizeByYear_Example(t *testing.T) {
	records := WithDerivedFields([]models.ElectricityRecord{
		elec(day(2020, time.January, 20), 100, 50, 30),
		elec(day(2020, time.February, 19), 200, 80, 40),
	})

	got, err := SummarizeByYear(records, models.MetricConsumption)
	require.NoError(t, err)
	assert.Equal(t, []models.AnnualSummary{{Year: 2020, Total: 500}}, got)
}

func TestSummarizeByYear(t *testing.T) {
	records := WithDerivedFields(sampleElectricity())

	tests := []struct {
		name   string
		metric models.Metric
		want   []models.AnnualSummary
	}{
		{
			name:   "consumption",
			metric: models.MetricConsumption,
			want:   []models.AnnualSummary{{Year: 2019, Total: 450}, {Year: 2021, Total: 300}},
		},
		{
			name:   "sale",
			metric: models.MetricSale,
			want:   []models.AnnualSummary{{Year: 2019, Total: 150}, {Year: 2021, Total: 470}},
		},
		{
			name:   "payment",
			metric: models.MetricPayment,
			want:   []models.AnnualSummary{{Year: 2019, Total: 14000}, {Year: 2021, Total: 11100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SummarizeByYear(records, tt.metric)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "no 2020 row is synthesized")
		})
	}
}

func TestSummarizeByYear_ConservesTotals(t *testing.T) {
	records := WithDerivedFields(sampleElectricity())

	for _, metric := range []models.Metric{
		models.MetricDaytime,
		models.MetricMorningEvening,
		models.MetricNighttime,
		models.MetricPayment,
		models.MetricGeneration,
		models.MetricSale,
		models.MetricConsumption,
	} {
		t.Run(string(metric), func(t *testing.T) {
			summaries, err := SummarizeByYear(records, metric)
			require.NoError(t, err)

			var want, got float64
			for _, r := range records {
				v, _ := r.Value(metric)
				want += v
			}
			years := []int{}
			for _, s := range summaries {
				got += s.Total
				years = append(years, s.Year)
			}
			assert.Equal(t, want, got)
			assert.Equal(t, Years(records), years)
		})
	}
}

func TestSummarizeByYear_Empty(t *testing.T) {
	got, err := SummarizeByYear([]models.WaterRecord{}, models.MetricUsage)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = SummarizeByYear[models.ElectricityRecord](nil, models.MetricConsumption)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSummarizeByYear_UnknownMetric(t *testing.T) {
	_, err := SummarizeByYear([]models.WaterRecord{}, models.MetricConsumption)
	assert.True(t, errors.Is(err, ErrUnknownMetric))

	_, err = SummarizeByYear(sampleElectricity(), models.MetricUsage)
	assert.True(t, errors.Is(err, ErrUnknownMetric))
}

func TestSummarizeTimeBandsByYear(t *testing.T) {
	got := SummarizeTimeBandsByYear(sampleElectricity())
	assert.Equal(t, []models.TimeBandSummary{
		{Year: 2019, Daytime: 230, MorningEvening: 135, Nighttime: 85},
		{Year: 2021, Daytime: 170, MorningEvening: 100, Nighttime: 30},
	}, got)

	empty := SummarizeTimeBandsByYear(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSummarizeByMonth(t *testing.T) {
	records := []models.WaterRecord{
		{Date: day(2020, time.June, 8), Usage: 23},
		{Date: day(2020, time.February, 10), Usage: 21},
		{Date: day(2021, time.February, 9), Usage: 99},
		{Date: day(2020, time.February, 25), Usage: 2},
	}

	got, err := SummarizeByMonth(records, models.MetricUsage, 2020)
	require.NoError(t, err)
	assert.Equal(t, []models.MonthlySummary{
		{Year: 2020, Month: 2, Total: 23},
		{Year: 2020, Month: 6, Total: 23},
	}, got)

	got, err = SummarizeByMonth(records, models.MetricUsage, 2018)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = SummarizeByMonth(records, models.MetricSale, 2020)
	assert.True(t, errors.Is(err, ErrUnknownMetric))
}

func TestFilterYears(t *testing.T) {
	records := sampleElectricity()

	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{name: "open", want: []int{2019, 2021}},
		{name: "from only", from: 2020, want: []int{2021}},
		{name: "to only", to: 2020, want: []int{2019}},
		{name: "closed", from: 2019, to: 2019, want: []int{2019}},
		{name: "none", from: 2022, to: 2023, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Years(FilterYears(records, tt.from, tt.to)))
		})
	}
}

func TestYears(t *testing.T) {
	assert.Equal(t, []int{2019, 2021}, Years(sampleElectricity()))
	assert.Equal(t, []int{}, Years([]models.WaterRecord{}))
}
