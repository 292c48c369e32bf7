package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jgoulah/utilityview/internal/dataset"
	"github.com/jgoulah/utilityview/pkg/models"
)

const colWidth = 16

var viewTitles = map[dataset.View]string{
	dataset.ViewConsumption: "Annual electricity consumption",
	dataset.ViewGeneration:  "Annual electricity sold (generation)",
	dataset.ViewTimeBands:   "Annual electricity usage by time band",
	dataset.ViewWater:       "Annual water usage",
}

func rule(columns int) string {
	return strings.Repeat("-", 6+columns*(colWidth+2))
}

// printSeries writes one view as a year-by-column table
func printSeries(w io.Writer, series dataset.Series) {
	fmt.Fprintf(w, "\n%s:\n", viewTitles[series.View])
	fmt.Fprintln(w, rule(len(series.Columns)))
	fmt.Fprintf(w, "%-6s", "Year")
	for _, col := range series.Columns {
		fmt.Fprintf(w, "  %*s", colWidth, col)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule(len(series.Columns)))

	if len(series.Rows) == 0 {
		fmt.Fprintln(w, "No data")
		return
	}

	totals := make([]float64, len(series.Columns))
	for _, row := range series.Rows {
		fmt.Fprintf(w, "%-6d", row.Year)
		for i, v := range row.Values {
			fmt.Fprintf(w, "  %*s", colWidth, humanize.Commaf(v))
			totals[i] += v
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, rule(len(series.Columns)))
	fmt.Fprintf(w, "%-6s", "Total")
	for _, v := range totals {
		fmt.Fprintf(w, "  %*s", colWidth, humanize.Commaf(v))
	}
	fmt.Fprintf(w, "\n(%d years)\n", len(series.Rows))
}

// printAnnual writes a single-metric annual table
func printAnnual(w io.Writer, title string, summaries []models.AnnualSummary) {
	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintln(w, rule(1))
	fmt.Fprintf(w, "%-6s  %*s\n", "Year", colWidth, "Total")
	fmt.Fprintln(w, rule(1))

	if len(summaries) == 0 {
		fmt.Fprintln(w, "No data")
		return
	}
	for _, s := range summaries {
		fmt.Fprintf(w, "%-6d  %*s\n", s.Year, colWidth, humanize.Commaf(s.Total))
	}
}

// printMonthly writes a month-by-month table for one year
func printMonthly(w io.Writer, title string, summaries []models.MonthlySummary) {
	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintln(w, rule(1))
	fmt.Fprintf(w, "%-6s  %*s\n", "Month", colWidth, "Total")
	fmt.Fprintln(w, rule(1))

	if len(summaries) == 0 {
		fmt.Fprintln(w, "No data")
		return
	}

	var total float64
	for _, s := range summaries {
		fmt.Fprintf(w, "%-6d  %*s\n", s.Month, colWidth, humanize.Commaf(s.Total))
		total += s.Total
	}
	fmt.Fprintln(w, rule(1))
	fmt.Fprintf(w, "%-6s  %*s\n", "Total", colWidth, humanize.Commaf(total))
}
