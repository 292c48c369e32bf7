package dataset

import (
	"fmt"
	"log/slog"

	"github.com/jgoulah/utilityview/internal/workbook"
	"github.com/jgoulah/utilityview/pkg/models"
)

// Regions holds the sheet layouts for both utilities
type Regions struct {
	Electricity workbook.RegionSpec
	Water       workbook.RegionSpec
}

// DefaultRegions returns the standard workbook layout
func DefaultRegions() Regions {
	return Regions{
		Electricity: workbook.ElectricityRegion(),
		Water:       workbook.WaterRegion(),
	}
}

// LoadStats reports per sheet parse counts
type LoadStats struct {
	Electricity workbook.Stats
	Water       workbook.Stats
}

// Dataset is the fully loaded, read-only record set of one workbook
type Dataset struct {
	path             string
	electricity      []models.ElectricityRecord
	water            []models.WaterRecord
	electricityYears []int
	waterYears       []int
	stats            LoadStats
}

// Load reads both sheets of the workbook at path. Either both load or
// an error is returned and no dataset is built.
func Load(path string, regions Regions, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	wb, err := workbook.Open(path, logger)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	elecRows, elecStats, err := wb.Parse(regions.Electricity)
	if err != nil {
		return nil, fmt.Errorf("loading electricity: %w", err)
	}

	waterRows, waterStats, err := wb.Parse(regions.Water)
	if err != nil {
		return nil, fmt.Errorf("loading water: %w", err)
	}

	ds := New(ParseElectricity(elecRows), ParseWater(waterRows))
	ds.path = path
	ds.stats = LoadStats{Electricity: elecStats, Water: waterStats}

	logger.Info("loaded workbook",
		slog.String("file", path),
		slog.Int("electricity_rows", elecStats.Rows),
		slog.Int("water_rows", waterStats.Rows),
		slog.Int("skipped_rows", elecStats.Skipped+waterStats.Skipped))

	return ds, nil
}

// New builds a dataset from already parsed records, deriving computed
// fields and the year lists
func New(electricity []models.ElectricityRecord, water []models.WaterRecord) *Dataset {
	elec := WithDerivedFields(electricity)
	wat := WithDerivedWaterFields(water)
	return &Dataset{
		electricity:      elec,
		water:            wat,
		electricityYears: Years(elec),
		waterYears:       Years(wat),
		stats: LoadStats{
			Electricity: workbook.Stats{Rows: len(elec)},
			Water:       workbook.Stats{Rows: len(wat)},
		},
	}
}

// Path returns the workbook the dataset was loaded from
func (d *Dataset) Path() string {
	return d.path
}

// Electricity returns a copy of the electricity records
func (d *Dataset) Electricity() []models.ElectricityRecord {
	return append([]models.ElectricityRecord(nil), d.electricity...)
}

// Water returns a copy of the water records
func (d *Dataset) Water() []models.WaterRecord {
	return append([]models.WaterRecord(nil), d.water...)
}

// ElectricityYears returns the distinct electricity years, ascending
func (d *Dataset) ElectricityYears() []int {
	return append([]int(nil), d.electricityYears...)
}

// WaterYears returns the distinct water years, ascending
func (d *Dataset) WaterYears() []int {
	return append([]int(nil), d.waterYears...)
}

// Stats returns the parse counts from Load
func (d *Dataset) Stats() LoadStats {
	return d.stats
}

// Payments returns the annual payment totals for a domain
func (d *Dataset) Payments(domain models.Domain) ([]models.AnnualSummary, error) {
	switch domain {
	case models.DomainElectricity:
		return SummarizeByYear(d.electricity, models.MetricPayment)
	case models.DomainWater:
		return SummarizeByYear(d.water, models.MetricPayment)
	default:
		return nil, fmt.Errorf("unknown domain: %s", domain)
	}
}

// Monthly returns the per month totals of metric for one year of a domain
func (d *Dataset) Monthly(domain models.Domain, metric models.Metric, year int) ([]models.MonthlySummary, error) {
	switch domain {
	case models.DomainElectricity:
		return SummarizeByMonth(d.electricity, metric, year)
	case models.DomainWater:
		return SummarizeByMonth(d.water, metric, year)
	default:
		return nil, fmt.Errorf("unknown domain: %s", domain)
	}
}
