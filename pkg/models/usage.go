package models

import "time"

// ElectricityRecord represents one billing row from the electricity sheet
type ElectricityRecord struct {
	Date           time.Time `json:"date"`
	Daytime        float64   `json:"daytime"`         // Daytime band usage
	MorningEvening float64   `json:"morning_evening"` // Morning/evening band usage
	Nighttime      float64   `json:"nighttime"`       // Nighttime band usage
	Payment        float64   `json:"payment"`
	Generation     float64   `json:"generation"`  // Solar generation amount
	Sale           float64   `json:"sale"`        // Amount sold back to the grid
	Consumption    float64   `json:"consumption"` // Derived, see dataset.WithDerivedFields
}

// Year returns the calendar year of the record
func (r ElectricityRecord) Year() int { return r.Date.Year() }

// Month returns the calendar month (1-12) of the record
func (r ElectricityRecord) Month() int { return int(r.Date.Month()) }

// Value returns the value of the given metric field
func (r ElectricityRecord) Value(m Metric) (float64, bool) {
	switch m {
	case MetricDaytime:
		return r.Daytime, true
	case MetricMorningEvening:
		return r.MorningEvening, true
	case MetricNighttime:
		return r.Nighttime, true
	case MetricPayment:
		return r.Payment, true
	case MetricGeneration:
		return r.Generation, true
	case MetricSale:
		return r.Sale, true
	case MetricConsumption:
		return r.Consumption, true
	default:
		return 0, false
	}
}

// WaterRecord represents one billing row from the water sheet
type WaterRecord struct {
	Date    time.Time `json:"date"`
	Usage   float64   `json:"usage"`
	Payment float64   `json:"payment"`
}

// Year returns the calendar year of the record
func (r WaterRecord) Year() int { return r.Date.Year() }

// Month returns the calendar month (1-12) of the record
func (r WaterRecord) Month() int { return int(r.Date.Month()) }

// Value returns the value of the given metric field
func (r WaterRecord) Value(m Metric) (float64, bool) {
	switch m {
	case MetricUsage:
		return r.Usage, true
	case MetricPayment:
		return r.Payment, true
	default:
		return 0, false
	}
}
