package main

import (
	"fmt"

	"github.com/jgoulah/utilityview/pkg/models"
	"github.com/spf13/cobra"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Show annual payment totals for electricity and water",
	RunE:  runPayments,
}

func init() {
	rootCmd.AddCommand(paymentsCmd)
}

func runPayments(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	for _, domain := range []models.Domain{models.DomainElectricity, models.DomainWater} {
		summaries, err := ds.Payments(domain)
		if err != nil {
			return fmt.Errorf("computing %s payments: %w", domain, err)
		}
		printAnnual(cmd.OutOrStdout(), fmt.Sprintf("Annual %s payments", domain), summaries)
	}
	return nil
}
