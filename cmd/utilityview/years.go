package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the years present in each sheet",
	RunE:  runYears,
}

func init() {
	rootCmd.AddCommand(yearsCmd)
}

func runYears(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s  %s\n", "electricity", joinYears(ds.ElectricityYears()))
	fmt.Fprintf(out, "%-12s  %s\n", "water", joinYears(ds.WaterYears()))
	return nil
}

func joinYears(years []int) string {
	if len(years) == 0 {
		return "(none)"
	}
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, " ")
}
