package models

import "time"

// ImportRecord describes one successful load of a workbook
type ImportRecord struct {
	ID                 int       `json:"id"`
	File               string    `json:"file"`
	LoadedAt           time.Time `json:"loaded_at"`
	ElectricityRows    int       `json:"electricity_rows"`
	ElectricitySkipped int       `json:"electricity_skipped"`
	WaterRows          int       `json:"water_rows"`
	WaterSkipped       int       `json:"water_skipped"`
}
