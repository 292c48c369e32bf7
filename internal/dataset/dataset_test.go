package dataset

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jgoulah/utilityview/internal/workbook"
	"github.com/jgoulah/utilityview/pkg/models"
)

// buildWorkbook writes a workbook with the given sheets and returns its path
func buildWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	for sheet, rows := range sheets {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		for r, row := range rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sheet, cell, v))
			}
		}
	}

	path := filepath.Join(t.TempDir(), "utility.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func electricitySheet() [][]interface{} {
	return [][]interface{}{
		{"電気料金/発電量"},
		{"", "", "", "使用量"},
		{"日付", "期間", "合計", "昼間", "朝晩", "夜間", "料金", "発電量", "売電"},
		{day(2020, time.January, 20), "", 180, 100, 50, 30, 5200, 310, 150},
		{day(2020, time.February, 19), "", 320, 200, 80, 40, 7400, 280, 120},
		{day(2021, time.January, 19), "", 200, 110, 60, 30, 5600, 300, 140},
		{nil, "検針なし"},
		{"合計", "", 700, 410, 190, 100, 18200, 890, 410},
	}
}

func waterSheet() [][]interface{} {
	return [][]interface{}{
		{"水道料金"},
		{"検針日", "期間", "使用量", "料金"},
		{day(2019, time.December, 10), "", 20, 4700},
		{day(2020, time.February, 10), "", 21, 4800},
		{day(2020, time.April, 12), "", 19, 4500},
	}
}

func TestLoad(t *testing.T) {
	path := buildWorkbook(t, map[string][][]interface{}{
		"電気": electricitySheet(),
		"水道": waterSheet(),
	})

	ds, err := Load(path, DefaultRegions(), nil)
	require.NoError(t, err)

	assert.Equal(t, path, ds.Path())
	assert.Equal(t, []int{2020, 2021}, ds.ElectricityYears())
	assert.Equal(t, []int{2019, 2020}, ds.WaterYears())
	assert.Equal(t, LoadStats{
		Electricity: workbook.Stats{Rows: 3, Skipped: 2},
		Water:       workbook.Stats{Rows: 3, Skipped: 0},
	}, ds.Stats())

	elecRecords := ds.Electricity()
	require.Len(t, elecRecords, 3)
	assert.Equal(t, 180.0, elecRecords[0].Consumption)
	assert.Equal(t, 320.0, elecRecords[1].Consumption)
	assert.Equal(t, 310.0, elecRecords[0].Generation)
	assert.Equal(t, 150.0, elecRecords[0].Sale)

	waterRecords := ds.Water()
	require.Len(t, waterRecords, 3)
	assert.Equal(t, day(2019, time.December, 10), waterRecords[0].Date)
	assert.Equal(t, 4800.0, waterRecords[1].Payment)

	consumption, err := SummarizeByYear(elecRecords, models.MetricConsumption)
	require.NoError(t, err)
	assert.Equal(t, []models.AnnualSummary{
		{Year: 2020, Total: 500},
		{Year: 2021, Total: 200},
	}, consumption)
}

func TestLoad_MissingWaterSheet(t *testing.T) {
	path := buildWorkbook(t, map[string][][]interface{}{
		"電気": electricitySheet(),
	})

	ds, err := Load(path, DefaultRegions(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, workbook.ErrSourceNotFound))
	assert.Nil(t, ds)
}

func TestLoad_NarrowElectricitySheet(t *testing.T) {
	path := buildWorkbook(t, map[string][][]interface{}{
		"電気": {
			{"電気料金"},
			{""},
			{"日付", "期間", "合計", "昼間"},
			{day(2020, time.January, 20), "", 180, 100},
		},
		"水道": waterSheet(),
	})

	ds, err := Load(path, DefaultRegions(), nil)
	assert.True(t, errors.Is(err, workbook.ErrSchemaMismatch))
	assert.Nil(t, ds)
}

func TestLoad_MissingFile(t *testing.T) {
	ds, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultRegions(), nil)
	assert.True(t, errors.Is(err, workbook.ErrSourceNotFound))
	assert.Nil(t, ds)
}

func TestLoad_HeaderOnlySheets(t *testing.T) {
	path := buildWorkbook(t, map[string][][]interface{}{
		"電気": electricitySheet()[:3],
		"水道": waterSheet()[:2],
	})

	ds, err := Load(path, DefaultRegions(), nil)
	require.NoError(t, err)
	assert.Empty(t, ds.Electricity())
	assert.Empty(t, ds.ElectricityYears())

	for _, v := range Views() {
		series, err := ds.Series(v, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, series.Rows, v.String())
	}
}

func TestDataset_ReturnsCopies(t *testing.T) {
	ds := New(sampleElectricity(), []models.WaterRecord{
		{Date: day(2020, time.February, 10), Usage: 21, Payment: 4800},
	})

	records := ds.Electricity()
	records[0].Daytime = 9999
	years := ds.ElectricityYears()
	years[0] = 1900
	water := ds.Water()
	water[0].Usage = 0

	assert.Equal(t, 90.0, ds.Electricity()[0].Daytime)
	assert.Equal(t, []int{2019, 2021}, ds.ElectricityYears())
	assert.Equal(t, 21.0, ds.Water()[0].Usage)
}

func TestDataset_PaymentsAndMonthly(t *testing.T) {
	ds := New(sampleElectricity(), []models.WaterRecord{
		{Date: day(2020, time.February, 10), Usage: 21, Payment: 4800},
		{Date: day(2020, time.April, 12), Usage: 19, Payment: 4500},
	})

	payments, err := ds.Payments(models.DomainWater)
	require.NoError(t, err)
	assert.Equal(t, []models.AnnualSummary{{Year: 2020, Total: 9300}}, payments)

	payments, err = ds.Payments(models.DomainElectricity)
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	monthly, err := ds.Monthly(models.DomainElectricity, models.MetricConsumption, 2021)
	require.NoError(t, err)
	assert.Equal(t, []models.MonthlySummary{
		{Year: 2021, Month: 3, Total: 170},
		{Year: 2021, Month: 4, Total: 130},
	}, monthly)

	_, err = ds.Payments(models.Domain("gas"))
	assert.Error(t, err)
}
