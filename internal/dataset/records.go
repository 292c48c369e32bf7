package dataset

import (
	"github.com/jgoulah/utilityview/internal/workbook"
	"github.com/jgoulah/utilityview/pkg/models"
)

// ParseElectricity converts parsed electricity rows into records.
// Consumption is not set here; see WithDerivedFields.
func ParseElectricity(rows []workbook.Row) []models.ElectricityRecord {
	records := make([]models.ElectricityRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.ElectricityRecord{
			Date:           row.Date,
			Daytime:        row.Values[workbook.ColDaytime],
			MorningEvening: row.Values[workbook.ColMorningEvening],
			Nighttime:      row.Values[workbook.ColNighttime],
			Payment:        row.Values[workbook.ColPayment],
			Generation:     row.Values[workbook.ColGeneration],
			Sale:           row.Values[workbook.ColSale],
		})
	}
	return records
}

// ParseWater converts parsed water rows into records
func ParseWater(rows []workbook.Row) []models.WaterRecord {
	records := make([]models.WaterRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.WaterRecord{
			Date:    row.Date,
			Usage:   row.Values[workbook.ColUsage],
			Payment: row.Values[workbook.ColPayment],
		})
	}
	return records
}
