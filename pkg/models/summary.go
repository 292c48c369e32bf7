package models

// AnnualSummary is the total of one metric for one year
type AnnualSummary struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// TimeBandSummary holds the per-band electricity usage totals for one year
type TimeBandSummary struct {
	Year           int     `json:"year"`
	Daytime        float64 `json:"daytime"`
	MorningEvening float64 `json:"morning_evening"`
	Nighttime      float64 `json:"nighttime"`
}

// MonthlySummary is the total of one metric for one month of a year
type MonthlySummary struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}
