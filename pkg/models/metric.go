package models

// Metric names a numeric field that can be summed in an aggregation
type Metric string

const (
	MetricDaytime        Metric = "daytime"
	MetricMorningEvening Metric = "morning_evening"
	MetricNighttime      Metric = "nighttime"
	MetricPayment        Metric = "payment"
	MetricGeneration     Metric = "generation"
	MetricSale           Metric = "sale"
	MetricConsumption    Metric = "consumption"
	MetricUsage          Metric = "usage"
)

// Domain identifies which utility a record set belongs to
type Domain string

const (
	DomainElectricity Domain = "electricity"
	DomainWater       Domain = "water"
)
