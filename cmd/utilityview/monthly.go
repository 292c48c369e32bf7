package main

import (
	"fmt"

	"github.com/jgoulah/utilityview/pkg/models"
	"github.com/spf13/cobra"
)

var (
	monthlyYear   int
	monthlyMetric string
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly [electricity|water]",
	Short: "Show month-by-month totals for one year",
	Long: `Prints the monthly totals of a metric for a single year.

Electricity metrics: consumption, daytime, morning_evening, nighttime, payment, generation, sale
Water metrics: usage, payment`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"electricity", "water"},
	RunE:      runMonthly,
}

func init() {
	monthlyCmd.Flags().IntVar(&monthlyYear, "year", 0, "year to show (default: latest in the sheet)")
	monthlyCmd.Flags().StringVar(&monthlyMetric, "metric", "", "metric to sum (default: consumption or usage)")
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(cmd *cobra.Command, args []string) error {
	domain := models.Domain(args[0])
	metric := models.Metric(monthlyMetric)
	switch domain {
	case models.DomainElectricity:
		if metric == "" {
			metric = models.MetricConsumption
		}
	case models.DomainWater:
		if metric == "" {
			metric = models.MetricUsage
		}
	default:
		return fmt.Errorf("unknown domain: %s (available: electricity, water)", domain)
	}

	ds, err := loadDataset()
	if err != nil {
		return err
	}

	year := monthlyYear
	if year == 0 {
		years := ds.ElectricityYears()
		if domain == models.DomainWater {
			years = ds.WaterYears()
		}
		if len(years) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No data found for %s\n", domain)
			return nil
		}
		year = years[len(years)-1]
	}

	summaries, err := ds.Monthly(domain, metric, year)
	if err != nil {
		return err
	}

	printMonthly(cmd.OutOrStdout(), fmt.Sprintf("%s %s in %d", domain, metric, year), summaries)
	return nil
}
